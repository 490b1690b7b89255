package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// CreateRoom handles POST /api/v1/hotels/{hotel_id}/rooms (ADMIN)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(w, r, "hotel_id")
	if !ok {
		return
	}

	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), hotelID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "Room created", room)
}

// CommitBooking handles PUT /api/v1/hotels/{hotel_id}/rooms/{room_id} (USER, ADMIN)
func (h *RoomHandler) CommitBooking(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(w, r, "hotel_id")
	if !ok {
		return
	}
	// room 0 is what the reservation service sends when nothing was free
	roomID, err := utils.ParseID(chi.URLParam(r, "room_id"), "room_id")
	if err != nil {
		utils.ResponseNotFound(w, "room not found")
		return
	}

	var req request.CommitBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	room, err := h.service.CommitBooking(r.Context(), hotelID, roomID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "commit booking")
		return
	}

	utils.ResponseSuccess(w, "Booking committed", room)
}

// GetRooms handles GET /api/v1/hotels/{hotel_id}/rooms (USER, ADMIN)
func (h *RoomHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(w, r, "hotel_id")
	if !ok {
		return
	}

	rooms, err := h.service.GetRooms(r.Context(), hotelID)
	if err != nil {
		handleServiceError(w, h.log, err, "get rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetAvailableRooms handles GET /api/v1/hotels/{hotel_id}/rooms/availability?from&to&category_id (USER, ADMIN)
func (h *RoomHandler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(w, r, "hotel_id")
	if !ok {
		return
	}
	categoryID, ok := queryID(w, r, "category_id")
	if !ok {
		return
	}

	query := r.URL.Query()
	req := request.AvailabilityRequest{
		From:       query.Get("from"),
		To:         query.Get("to"),
		CategoryID: categoryID,
	}

	rooms, err := h.service.GetAvailableRooms(r.Context(), hotelID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "get available rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}
