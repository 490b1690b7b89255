package response

import "hotel-reservation/internal/data/entity"

type GuestResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Contact int64  `json:"contact,omitempty"`
}

func GuestToResponse(g *entity.Guest) GuestResponse {
	return GuestResponse{
		ID:      g.ID,
		Name:    g.Name,
		Email:   g.Email,
		Contact: g.Contact,
	}
}
