// internal/wire/wire.go
package wire

import (
	"net/http"

	"hotel-reservation/pkg/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Service names accepted by --service.
const (
	ServiceGateway     = "gateway"
	ServiceGuest       = "guest"
	ServiceHotel       = "hotel"
	ServiceReservation = "reservation"
	ServiceConfig      = "config"
)

// NeedsDatabase reports whether the service owns tables.
func NeedsDatabase(service string) bool {
	switch service {
	case ServiceGuest, ServiceHotel, ServiceReservation:
		return true
	}
	return false
}

// App holds the router of one service and the resources to release on shutdown.
type App struct {
	Router  *chi.Mux
	closers []func() error
}

func (a *App) onClose(fn func() error) {
	a.closers = append(a.closers, fn)
}

// Close releases resources in reverse acquisition order.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// setupRouter builds the router shared by every service.
func setupRouter(logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
