package client

import (
	"context"
	"net/http"
	"net/url"

	"hotel-reservation/internal/dto/response"

	"go.uber.org/zap"
)

type GuestClient struct {
	rest restClient
}

func NewGuestClient(baseURL string, httpClient *http.Client, log *zap.Logger) *GuestClient {
	return &GuestClient{
		rest: newRestClient(baseURL, httpClient, log.With(zap.String("client", "guest"))),
	}
}

// GetGuestByName returns the guest registered under name, or the zero guest
// when none exists.
func (c *GuestClient) GetGuestByName(ctx context.Context, name string) (response.GuestResponse, error) {
	var guest response.GuestResponse
	err := c.rest.do(ctx, http.MethodGet, "/api/v1/guests", url.Values{"guest_name": {name}}, nil, &guest)
	return guest, err
}
