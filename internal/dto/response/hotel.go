package response

import (
	"time"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/pkg/utils"

	"github.com/shopspring/decimal"
)

type HotelResponse struct {
	ID      int64  `json:"id"`
	Address string `json:"address"`
	Contact int64  `json:"contact"`
}

type CategoryResponse struct {
	ID          int64           `json:"id"`
	HotelID     int64           `json:"hotel_id"`
	Description string          `json:"description"`
	Charges     decimal.Decimal `json:"charges"`
}

type OfferResponse struct {
	ID         int64           `json:"id"`
	HotelID    int64           `json:"hotel_id"`
	CategoryID int64           `json:"category_id"`
	Value      decimal.Decimal `json:"value"`
}

type RoomResponse struct {
	ID          int64    `json:"id"`
	HotelID     int64    `json:"hotel_id"`
	CategoryID  int64    `json:"category_id"`
	BookedDates []string `json:"booked_dates"`
}

func HotelToResponse(h *entity.Hotel) HotelResponse {
	return HotelResponse{ID: h.ID, Address: h.Address, Contact: h.Contact}
}

func CategoryToResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		HotelID:     c.HotelID,
		Description: c.Description,
		Charges:     c.Charges,
	}
}

func OfferToResponse(o *entity.Offer) OfferResponse {
	return OfferResponse{
		ID:         o.ID,
		HotelID:    o.HotelID,
		CategoryID: o.CategoryID,
		Value:      o.Value,
	}
}

func RoomToResponse(r *entity.Room) RoomResponse {
	return RoomResponse{
		ID:          r.ID,
		HotelID:     r.HotelID,
		CategoryID:  r.CategoryID,
		BookedDates: FormatDates(r.BookedDates),
	}
}

func FormatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(utils.DateLayout)
	}
	return out
}
