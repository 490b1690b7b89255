package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/dto/response"
	"hotel-reservation/pkg/utils"

	"go.uber.org/zap"
)

type HotelClient struct {
	rest restClient
}

func NewHotelClient(baseURL string, httpClient *http.Client, log *zap.Logger) *HotelClient {
	return &HotelClient{
		rest: newRestClient(baseURL, httpClient, log.With(zap.String("client", "hotel"))),
	}
}

func (c *HotelClient) GetAvailableRooms(ctx context.Context, hotelID int64, from, to time.Time, categoryID int64) ([]response.RoomResponse, error) {
	query := url.Values{
		"from":        {from.Format(utils.DateLayout)},
		"to":          {to.Format(utils.DateLayout)},
		"category_id": {strconv.FormatInt(categoryID, 10)},
	}

	var rooms []response.RoomResponse
	err := c.rest.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/hotels/%d/rooms/availability", hotelID), query, nil, &rooms)
	return rooms, err
}

// CommitBooking adds dates to the booked set of the room.
func (c *HotelClient) CommitBooking(ctx context.Context, hotelID, roomID, categoryID int64, dates []time.Time) (response.RoomResponse, error) {
	body := request.CommitBookingRequest{
		CategoryID:  categoryID,
		BookedDates: response.FormatDates(dates),
	}

	var room response.RoomResponse
	err := c.rest.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/hotels/%d/rooms/%d", hotelID, roomID), nil, body, &room)
	return room, err
}

func (c *HotelClient) GetCategory(ctx context.Context, hotelID, categoryID int64) (response.CategoryResponse, error) {
	var category response.CategoryResponse
	err := c.rest.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/hotels/%d/categories/%d", hotelID, categoryID), nil, nil, &category)
	return category, err
}

// GetOffer returns the zero offer without a round trip when no offer was requested.
func (c *HotelClient) GetOffer(ctx context.Context, hotelID, offerID, categoryID int64) (response.OfferResponse, error) {
	if offerID <= 0 {
		return response.OfferResponse{}, nil
	}
	query := url.Values{"category_id": {strconv.FormatInt(categoryID, 10)}}

	var offer response.OfferResponse
	err := c.rest.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/hotels/%d/offers/%d", hotelID, offerID), query, nil, &offer)
	return offer, err
}
