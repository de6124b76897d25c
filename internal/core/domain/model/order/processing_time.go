package order

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"orderboard/internal/pkg/errs"
)

// ProcessingTime is the elapsed time between an order's creation and the
// moment it was confirmed, rendered as "MM:SS". Minutes may exceed 59;
// there is no hour rollover. The value is computed exactly once per order
// and never changes afterwards.
type ProcessingTime struct {
	d time.Duration
}

// NewProcessingTime creates a ProcessingTime from a duration.
// Negative durations are rejected.
func NewProcessingTime(d time.Duration) (ProcessingTime, error) {
	if d < 0 {
		return ProcessingTime{}, errs.NewValueIsInvalidErrorWithCause("processing time is invalid",
			fmt.Errorf("duration %s is negative", d))
	}
	return ProcessingTime{d: d}, nil
}

// ProcessingTimeBetween computes the processing time elapsed from start to
// end. Used at the pending-to-confirmed transition with the order's
// creation time and the confirmation time.
func ProcessingTimeBetween(start, end time.Time) (ProcessingTime, error) {
	return NewProcessingTime(end.Sub(start))
}

// ProcessingTimeFromString parses the "MM:SS" wire form. Used when
// reconstructing orders from persistence.
func ProcessingTimeFromString(s string) (ProcessingTime, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return ProcessingTime{}, errs.NewValueIsInvalidErrorWithCause("processing time is invalid",
			fmt.Errorf("%q is not in MM:SS form", s))
	}

	minutes, err := strconv.Atoi(parts[0])
	if err != nil || minutes < 0 {
		return ProcessingTime{}, errs.NewValueIsInvalidErrorWithCause("processing time is invalid",
			fmt.Errorf("%q has invalid minutes", s))
	}

	seconds, err := strconv.Atoi(parts[1])
	if err != nil || seconds < 0 || seconds > 59 {
		return ProcessingTime{}, errs.NewValueIsInvalidErrorWithCause("processing time is invalid",
			fmt.Errorf("%q has invalid seconds", s))
	}

	return ProcessingTime{d: time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second}, nil
}

// Duration returns the underlying elapsed duration, truncated to seconds.
func (p ProcessingTime) Duration() time.Duration {
	return p.d.Truncate(time.Second)
}

// String renders the value as zero-padded "MM:SS". Durations of an hour or
// more keep accumulating minutes ("75:03").
func (p ProcessingTime) String() string {
	total := int(p.d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
