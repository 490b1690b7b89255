package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/pkg/utils"

	"go.uber.org/zap"
)

type OfferHandler struct {
	service usecase.OfferService
	log     *zap.Logger
}

func NewOfferHandler(service usecase.OfferService, log *zap.Logger) *OfferHandler {
	return &OfferHandler{
		service: service,
		log:     log.With(zap.String("handler", "offer")),
	}
}

// CreateOffer handles POST /api/v1/hotels/{hotel_id}/offers (ADMIN)
func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(w, r, "hotel_id")
	if !ok {
		return
	}

	var req request.OfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	offer, err := h.service.CreateOffer(r.Context(), hotelID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create offer")
		return
	}

	utils.ResponseCreated(w, "Offer created", offer)
}

// UpdateOffer handles PUT /api/v1/hotels/{hotel_id}/offers/{offer_id} (ADMIN)
func (h *OfferHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(w, r, "hotel_id")
	if !ok {
		return
	}
	offerID, ok := pathID(w, r, "offer_id")
	if !ok {
		return
	}

	var req request.OfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// category_id may come from the query string like on the read path
	if req.CategoryID == 0 {
		categoryID, ok := queryID(w, r, "category_id")
		if !ok {
			return
		}
		req.CategoryID = categoryID
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	offer, err := h.service.UpdateOffer(r.Context(), hotelID, offerID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update offer")
		return
	}

	utils.ResponseSuccess(w, "Offer updated", offer)
}

// GetOffers handles GET /api/v1/hotels/{hotel_id}/offers?category_id= (USER, ADMIN)
func (h *OfferHandler) GetOffers(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(w, r, "hotel_id")
	if !ok {
		return
	}
	categoryID, ok := queryID(w, r, "category_id")
	if !ok {
		return
	}

	offers, err := h.service.GetOffers(r.Context(), hotelID, categoryID)
	if err != nil {
		handleServiceError(w, h.log, err, "get offers")
		return
	}

	utils.ResponseSuccess(w, "success", offers)
}

// GetOffer handles GET /api/v1/hotels/{hotel_id}/offers/{offer_id}?category_id= (USER, ADMIN)
func (h *OfferHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(w, r, "hotel_id")
	if !ok {
		return
	}
	offerID, ok := pathID(w, r, "offer_id")
	if !ok {
		return
	}
	categoryID, ok := queryID(w, r, "category_id")
	if !ok {
		return
	}

	offer, err := h.service.GetOffer(r.Context(), hotelID, offerID, categoryID)
	if err != nil {
		handleServiceError(w, h.log, err, "get offer")
		return
	}

	utils.ResponseSuccess(w, "success", offer)
}

// DeleteOffer handles DELETE /api/v1/hotels/{hotel_id}/offers/{offer_id} (ADMIN)
func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(w, r, "hotel_id")
	if !ok {
		return
	}
	offerID, ok := pathID(w, r, "offer_id")
	if !ok {
		return
	}

	if err := h.service.DeleteOffer(r.Context(), hotelID, offerID); err != nil {
		handleServiceError(w, h.log, err, "delete offer")
		return
	}

	utils.ResponseSuccess(w, "Offer deleted", nil)
}
