package request

import "github.com/shopspring/decimal"

type HotelRequest struct {
	Address string `json:"address" validate:"required,max=500"`
	Contact int64  `json:"contact" validate:"gte=0"`
}

type CategoryRequest struct {
	Description string          `json:"description" validate:"max=255"`
	Charges     decimal.Decimal `json:"charges"`
}

type OfferRequest struct {
	CategoryID int64           `json:"category_id" validate:"required,gt=0"`
	Value      decimal.Decimal `json:"value"`
}

type CreateRoomRequest struct {
	CategoryID  int64    `json:"category_id" validate:"required,gt=0"`
	BookedDates []string `json:"booked_dates" validate:"omitempty,dive,datetime=2006-01-02"`
}

// CommitBookingRequest adds dates to a room's booked set.
type CommitBookingRequest struct {
	CategoryID  int64    `json:"category_id" validate:"gte=0"`
	BookedDates []string `json:"booked_dates" validate:"required,min=1,dive,datetime=2006-01-02"`
}

type AvailabilityRequest struct {
	From       string `validate:"required,datetime=2006-01-02"`
	To         string `validate:"required,datetime=2006-01-02"`
	CategoryID int64  `validate:"gte=0"`
}
