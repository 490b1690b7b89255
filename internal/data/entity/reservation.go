package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation is immutable once persisted. OfferID, RoomID and GuestID are 0
// when the matching collaborator could not provide a value.
type Reservation struct {
	ID         int64           `db:"id"`
	GuestID    int64           `db:"guest_id"`
	HotelID    int64           `db:"hotel_id"`
	RoomID     int64           `db:"room_id"`
	CategoryID int64           `db:"category_id"`
	OfferID    int64           `db:"offer_id"`
	Charges    decimal.Decimal `db:"charges"`
	StartDate  time.Time       `db:"start_date"`
	EndDate    time.Time       `db:"end_date"`
	CreatedAt  time.Time       `db:"created_at"`
}
