package entity

import "time"

type Room struct {
	Base
	HotelID     int64       `db:"hotel_id"`
	CategoryID  int64       `db:"category_id"`
	BookedDates []time.Time `db:"-"` // room_booked_dates
}

// IsAvailable reports whether none of dates is already booked.
func (r *Room) IsAvailable(dates []time.Time) bool {
	booked := make(map[time.Time]struct{}, len(r.BookedDates))
	for _, d := range r.BookedDates {
		booked[d.UTC().Truncate(24*time.Hour)] = struct{}{}
	}
	for _, d := range dates {
		if _, ok := booked[d.UTC().Truncate(24*time.Hour)]; ok {
			return false
		}
	}
	return true
}
