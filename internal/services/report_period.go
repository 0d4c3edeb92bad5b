package services

import "time"

// MonthStart returns the first instant of now's month in the given
// location; budget spending is always measured from this point.
func MonthStart(now time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	local := now.In(location)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, location)
}
