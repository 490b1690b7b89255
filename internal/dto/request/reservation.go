package request

// CreateReservationRequest is the booking request. GuestID is accepted for
// compatibility but the guest is always resolved from the caller's identity.
type CreateReservationRequest struct {
	GuestID    int64  `json:"guest_id,omitempty"`
	HotelID    int64  `json:"hotel_id" validate:"required,gt=0"`
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
	OfferID    int64  `json:"offer_id" validate:"gte=0"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
}
