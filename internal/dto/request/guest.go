package request

type CreateGuestRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Contact int64  `json:"contact" validate:"gte=0"`
}

type UpdateGuestRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Contact int64  `json:"contact" validate:"gte=0"`
}
