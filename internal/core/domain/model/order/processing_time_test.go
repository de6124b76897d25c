package order_test

import (
	"testing"
	"time"

	"orderboard/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessingTime(t *testing.T) {
	t.Run("should create from non-negative duration", func(t *testing.T) {
		pt, err := order.NewProcessingTime(90 * time.Second)

		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, pt.Duration())
	})

	t.Run("should reject negative duration", func(t *testing.T) {
		_, err := order.NewProcessingTime(-time.Second)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "processing time is invalid")
	})
}

func TestProcessingTime_String(t *testing.T) {
	t.Run("should format as MM:SS", func(t *testing.T) {
		testCases := []struct {
			duration time.Duration
			expected string
		}{
			{0, "00:00"},
			{9 * time.Second, "00:09"},
			{90 * time.Second, "01:30"},
			{10*time.Minute + 5*time.Second, "10:05"},
		}

		for _, tc := range testCases {
			pt, err := order.NewProcessingTime(tc.duration)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, pt.String())
		}
	})

	t.Run("should not roll minutes over into hours", func(t *testing.T) {
		pt, err := order.NewProcessingTime(75*time.Minute + 3*time.Second)

		require.NoError(t, err)
		assert.Equal(t, "75:03", pt.String())
	})

	t.Run("should truncate sub-second precision", func(t *testing.T) {
		pt, err := order.NewProcessingTime(61*time.Second + 900*time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "01:01", pt.String())
	})
}

func TestProcessingTimeBetween(t *testing.T) {
	t.Run("should compute elapsed time between two instants", func(t *testing.T) {
		start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		end := start.Add(2*time.Minute + 15*time.Second)

		pt, err := order.ProcessingTimeBetween(start, end)

		require.NoError(t, err)
		assert.Equal(t, "02:15", pt.String())
	})

	t.Run("should reject end before start", func(t *testing.T) {
		start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		_, err := order.ProcessingTimeBetween(start, start.Add(-time.Minute))

		require.Error(t, err)
	})
}

func TestProcessingTimeFromString(t *testing.T) {
	t.Run("should parse valid MM:SS values", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected time.Duration
		}{
			{"00:00", 0},
			{"01:30", 90 * time.Second},
			{"75:03", 75*time.Minute + 3*time.Second},
		}

		for _, tc := range testCases {
			pt, err := order.ProcessingTimeFromString(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, pt.Duration())
		}
	})

	t.Run("should round-trip through String", func(t *testing.T) {
		pt, err := order.ProcessingTimeFromString("12:34")

		require.NoError(t, err)
		assert.Equal(t, "12:34", pt.String())
	})

	t.Run("should reject malformed values", func(t *testing.T) {
		for _, input := range []string{"", "130", "1:60", "-1:00", "aa:bb", "01:2x"} {
			_, err := order.ProcessingTimeFromString(input)

			require.Error(t, err, "input %q should be rejected", input)
		}
	})
}
