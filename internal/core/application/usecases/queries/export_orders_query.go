package queries

import (
	"errors"
	"time"

	"orderboard/internal/pkg/guard"
)

var ErrExportOrdersQueryIsNotConstructed = errors.New(
	"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
)

// ExportOrdersQuery produces a CSV report of the orders confirmed on the
// day containing the given instant (UTC). Used by the front of house to
// pull the day's sales before closing.
type ExportOrdersQuery struct { //nolint:recvcheck //using for validation
	day time.Time

	guard guard.ConstructorGuard
}

// NewExportOrdersQuery creates an export query for the day of the given
// instant. The instant must not be the zero time.
func NewExportOrdersQuery(day time.Time) (ExportOrdersQuery, error) {
	exportQuery := ExportOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := exportQuery.setDay(day); err != nil {
		return ExportOrdersQuery{}, err
	}

	return exportQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrExportOrdersQueryIsNotConstructed if validation fails.
func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}

// Day returns the UTC midnight opening the export window.
func (q ExportOrdersQuery) Day() time.Time {
	return q.day
}

func (q *ExportOrdersQuery) setDay(day time.Time) error {
	if day.IsZero() {
		return errors.New("day is required")
	}

	utc := day.UTC()
	q.day = time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}
