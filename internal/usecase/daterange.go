package usecase

import (
	"errors"
	"fmt"
	"time"

	"hotel-reservation/pkg/utils"
)

var ErrInvalidDateRange = errors.New("invalid date range: start date must not be after end date")

// ExpandDateRange returns every calendar date from start to end inclusive,
// normalized to UTC midnight.
func ExpandDateRange(start, end time.Time) ([]time.Time, error) {
	start = truncateDay(start)
	end = truncateDay(end)

	if start.After(end) {
		return nil, fmt.Errorf("%w (%s > %s)", ErrInvalidDateRange,
			start.Format(utils.DateLayout), end.Format(utils.DateLayout))
	}

	dates := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
