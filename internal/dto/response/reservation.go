package response

import (
	"time"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/pkg/utils"

	"github.com/shopspring/decimal"
)

type ReservationResponse struct {
	ID         int64           `json:"id"`
	GuestID    int64           `json:"guest_id"`
	HotelID    int64           `json:"hotel_id"`
	RoomID     int64           `json:"room_id"`
	CategoryID int64           `json:"category_id"`
	OfferID    int64           `json:"offer_id"`
	Charges    decimal.Decimal `json:"charges"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	CreatedAt  time.Time       `json:"created_at"`
}

func ReservationToResponse(r *entity.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID,
		GuestID:    r.GuestID,
		HotelID:    r.HotelID,
		RoomID:     r.RoomID,
		CategoryID: r.CategoryID,
		OfferID:    r.OfferID,
		Charges:    r.Charges,
		StartDate:  r.StartDate.Format(utils.DateLayout),
		EndDate:    r.EndDate.Format(utils.DateLayout),
		CreatedAt:  r.CreatedAt,
	}
}
