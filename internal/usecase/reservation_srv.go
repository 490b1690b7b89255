package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/internal/data/repository"
	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/dto/response"
	"hotel-reservation/pkg/messaging"
	"hotel-reservation/pkg/resilience"
	"hotel-reservation/pkg/utils"

	"go.uber.org/zap"
)

// HotelCatalog is the hotel service as seen by the reservation workflow.
type HotelCatalog interface {
	GetAvailableRooms(ctx context.Context, hotelID int64, from, to time.Time, categoryID int64) ([]response.RoomResponse, error)
	GetOffer(ctx context.Context, hotelID, offerID, categoryID int64) (response.OfferResponse, error)
	GetCategory(ctx context.Context, hotelID, categoryID int64) (response.CategoryResponse, error)
	CommitBooking(ctx context.Context, hotelID, roomID, categoryID int64, dates []time.Time) (response.RoomResponse, error)
}

// GuestDirectory resolves login names to guests.
type GuestDirectory interface {
	GetGuestByName(ctx context.Context, name string) (response.GuestResponse, error)
}

// ReservationState names a step of CreateReservation in debug logs.
type ReservationState string

const (
	StateReceived          ReservationState = "received"
	StateDatesValidated    ReservationState = "dates_validated"
	StateRoomResolved      ReservationState = "room_resolved"
	StatePricingResolved   ReservationState = "pricing_resolved"
	StateBookingCommitted  ReservationState = "booking_committed"
	StatePrincipalResolved ReservationState = "principal_resolved"
	StatePersisted         ReservationState = "persisted"
	StateRejected          ReservationState = "rejected"
)

const (
	EventReservationCreated = "reservation.created"
	FallbackGuestName       = "Fallback"
)

// ReservationGuards holds one breaker per remote operation of the workflow.
type ReservationGuards struct {
	Rooms    *resilience.Guard
	Offer    *resilience.Guard
	Category *resilience.Guard
	Booking  *resilience.Guard
	Guest    *resilience.Guard
}

func NewReservationGuards(policy resilience.Policy, log *zap.Logger) ReservationGuards {
	return ReservationGuards{
		Rooms:    resilience.NewGuard("hotel.available_rooms", policy, log),
		Offer:    resilience.NewGuard("hotel.offer", policy, log),
		Category: resilience.NewGuard("hotel.category", policy, log),
		Booking:  resilience.NewGuard("hotel.commit_booking", policy, log),
		Guest:    resilience.NewGuard("guest.by_name", policy, log),
	}
}

type ReservationService interface {
	CreateReservation(ctx context.Context, principal utils.Principal, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	GetReservation(ctx context.Context, id int64) (*response.ReservationResponse, error)
}

type reservationService struct {
	repo      repository.ReservationRepository
	hotels    HotelCatalog
	guests    GuestDirectory
	guards    ReservationGuards
	publisher messaging.Publisher
	log       *zap.Logger
}

func NewReservationService(
	repo repository.ReservationRepository,
	hotels HotelCatalog,
	guests GuestDirectory,
	guards ReservationGuards,
	publisher messaging.Publisher,
	log *zap.Logger,
) ReservationService {
	if publisher == nil {
		publisher = messaging.NoopPublisher{}
	}
	return &reservationService{
		repo:      repo,
		hotels:    hotels,
		guests:    guests,
		guards:    guards,
		publisher: publisher,
		log:       log.With(zap.String("service", "reservation")),
	}
}

// CreateReservation books a room for the caller. Only an invalid request or a
// failed write of the reservation itself is reported; every remote failure
// degrades to a zero value and the workflow carries on. The booking commit
// is not undone if a later step fails.
func (s *reservationService) CreateReservation(ctx context.Context, principal utils.Principal, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	log := s.log.With(
		zap.String("username", principal.Username),
		zap.Int64("hotel_id", req.HotelID),
		zap.Int64("category_id", req.CategoryID),
	)
	s.transition(log, StateReceived)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.transition(log, StateRejected)
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	startDate, err := utils.ParseDate(req.StartDate, "start_date")
	if err != nil {
		s.transition(log, StateRejected)
		return nil, err
	}
	endDate, err := utils.ParseDate(req.EndDate, "end_date")
	if err != nil {
		s.transition(log, StateRejected)
		return nil, err
	}

	dates, err := ExpandDateRange(startDate, endDate)
	if err != nil {
		log.Warn("Reservation rejected", zap.Error(err))
		s.transition(log, StateRejected)
		return nil, err
	}
	s.transition(log, StateDatesValidated)

	// Downstream services authorize with the caller's own token
	if principal.Token != "" {
		ctx = utils.SetTokenContext(ctx, principal.Token)
	}

	room := s.firstAvailableRoom(ctx, req, startDate, endDate)
	s.transition(log, StateRoomResolved, zap.Int64("room_id", room.ID))

	offer := s.offer(ctx, req)
	category := s.category(ctx, req)
	charges := ComputeCharge(category.Charges, offer.Value, len(dates))
	s.transition(log, StatePricingResolved,
		zap.Int64("offer_id", offer.ID),
		zap.String("charges", charges.String()))

	s.commitBooking(ctx, req, room.ID, dates)
	s.transition(log, StateBookingCommitted)

	guest := s.resolvePrincipal(ctx, principal)
	s.transition(log, StatePrincipalResolved, zap.Int64("guest_id", guest.ID))

	reservation := &entity.Reservation{
		GuestID:    guest.ID,
		HotelID:    req.HotelID,
		RoomID:     room.ID,
		CategoryID: req.CategoryID,
		OfferID:    offer.ID,
		Charges:    charges,
		StartDate:  startDate,
		EndDate:    endDate,
	}
	if err := s.repo.Create(ctx, reservation); err != nil {
		log.Error("Failed to persist reservation", zap.Error(err), zap.Int64("room_id", room.ID))
		return nil, fmt.Errorf("persist reservation: %w", err)
	}
	s.transition(log, StatePersisted, zap.Int64("reservation_id", reservation.ID))

	log.Info("Reservation created",
		zap.Int64("reservation_id", reservation.ID),
		zap.Int64("room_id", reservation.RoomID),
		zap.Int64("guest_id", reservation.GuestID),
		zap.Int64("offer_id", reservation.OfferID),
		zap.String("charges", charges.String()),
		zap.Int("nights", len(dates)),
	)

	resp := response.ReservationToResponse(reservation)
	s.publishCreated(ctx, resp)
	return resp, nil
}

func (s *reservationService) GetReservation(ctx context.Context, id int64) (*response.ReservationResponse, error) {
	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation %d: %w", id, err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %d not found", id)
	}
	return response.ReservationToResponse(reservation), nil
}

func (s *reservationService) transition(log *zap.Logger, state ReservationState, fields ...zap.Field) {
	log.Debug("Reservation state", append(fields, zap.String("state", string(state)))...)
}

// ==================== REMOTE CALLS AND FALLBACKS ====================

func (s *reservationService) firstAvailableRoom(ctx context.Context, req *request.CreateReservationRequest, from, to time.Time) response.RoomResponse {
	rooms := resilience.CallWithFallback(ctx, s.guards.Rooms,
		func(ctx context.Context) ([]response.RoomResponse, error) {
			return s.hotels.GetAvailableRooms(ctx, req.HotelID, from, to, req.CategoryID)
		},
		noAvailableRooms,
	)
	if len(rooms) == 0 {
		return response.RoomResponse{}
	}
	return rooms[0]
}

func noAvailableRooms(error) []response.RoomResponse { return nil }

func (s *reservationService) offer(ctx context.Context, req *request.CreateReservationRequest) response.OfferResponse {
	return resilience.CallWithFallback(ctx, s.guards.Offer,
		func(ctx context.Context) (response.OfferResponse, error) {
			return s.hotels.GetOffer(ctx, req.HotelID, req.OfferID, req.CategoryID)
		},
		noOffer,
	)
}

func noOffer(error) response.OfferResponse { return response.OfferResponse{} }

func (s *reservationService) category(ctx context.Context, req *request.CreateReservationRequest) response.CategoryResponse {
	return resilience.CallWithFallback(ctx, s.guards.Category,
		func(ctx context.Context) (response.CategoryResponse, error) {
			return s.hotels.GetCategory(ctx, req.HotelID, req.CategoryID)
		},
		noCategory,
	)
}

func noCategory(error) response.CategoryResponse { return response.CategoryResponse{} }

func (s *reservationService) commitBooking(ctx context.Context, req *request.CreateReservationRequest, roomID int64, dates []time.Time) response.RoomResponse {
	return resilience.CallWithFallback(ctx, s.guards.Booking,
		func(ctx context.Context) (response.RoomResponse, error) {
			return s.hotels.CommitBooking(ctx, req.HotelID, roomID, req.CategoryID, dates)
		},
		bookingNotCommitted,
	)
}

func bookingNotCommitted(error) response.RoomResponse { return response.RoomResponse{} }

func (s *reservationService) resolvePrincipal(ctx context.Context, principal utils.Principal) response.GuestResponse {
	return resilience.CallWithFallback(ctx, s.guards.Guest,
		func(ctx context.Context) (response.GuestResponse, error) {
			return s.guests.GetGuestByName(ctx, principal.Username)
		},
		fallbackGuest,
	)
}

func fallbackGuest(error) response.GuestResponse {
	return response.GuestResponse{ID: 0, Name: FallbackGuestName}
}

func (s *reservationService) publishCreated(ctx context.Context, reservation *response.ReservationResponse) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	event := messaging.NewEvent(EventReservationCreated, reservation)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("Failed to publish reservation event",
			zap.Error(err),
			zap.String("event_id", event.ID),
			zap.Int64("reservation_id", reservation.ID))
	}
}
