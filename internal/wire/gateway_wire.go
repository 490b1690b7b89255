package wire

import (
	"context"
	"fmt"
	"time"

	"hotel-reservation/internal/adaptor"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/pkg/middleware"
	"hotel-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// WiringGateway builds the edge service: token issuance, per-IP rate
// limiting and reverse proxying to the other services.
func WiringGateway(config *utils.Config, logger *zap.Logger) (*App, error) {
	app := &App{}

	authService, err := usecase.NewAuthService(config.Gateway, config.JWT, logger)
	if err != nil {
		return nil, fmt.Errorf("init auth: %w", err)
	}

	gateway, err := adaptor.NewGatewayHandler(map[string]string{
		"/api/v1/guests":       config.Services.GuestURL,
		"/api/v1/hotels":       config.Services.HotelURL,
		"/api/v1/reservations": config.Services.ReservationURL,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("init gateway routes: %w", err)
	}

	rdb := connectRedis(config.Redis, logger)
	if rdb != nil {
		app.onClose(rdb.Close)
	}
	limiter := middleware.NewLimiter(rdb, config.RateLimit, logger)

	app.Router = setupRouter(logger)
	wireGateway(app.Router, adaptor.NewAuthHandler(authService, logger), gateway, limiter, config, logger)

	return app, nil
}

// connectRedis returns nil when Redis is not configured or not reachable.
func connectRedis(cfg utils.RedisConfig, logger *zap.Logger) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable, rate limiting per instance",
			zap.Error(err),
			zap.String("addr", cfg.Addr))
		rdb.Close()
		return nil
	}

	logger.Info("Redis connected", zap.String("addr", cfg.Addr))
	return rdb
}

func wireGateway(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	gateway *adaptor.GatewayHandler,
	limiter middleware.Limiter,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(limiter, config.RateLimit, log))

		// ==================== PUBLIC ROUTES ====================
		// POST /api/v1/authenticate - Exchange credentials for a bearer token
		r.Post("/api/v1/authenticate", authHandler.Authenticate)

		// ==================== PROTECTED ROUTES (proxied) ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(config.JWT.Secret, log))

			for _, prefix := range gateway.Prefixes() {
				r.Handle(prefix, gateway)
				r.Handle(prefix+"/*", gateway)
			}
		})
	})
}
