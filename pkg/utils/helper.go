package utils

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseID parses a positive numeric identifier from a path or query value.
func ParseID(value, name string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return id, nil
}

// ParseDate parses a YYYY-MM-DD value into a UTC midnight time.
func ParseDate(value, name string) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, expected YYYY-MM-DD", name, value)
	}
	return date, nil
}
