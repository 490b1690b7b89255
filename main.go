// main.go
package main

import (
	"log"
	"os"

	"hotel-reservation/cmd"
	"hotel-reservation/internal/data/repository"
	"hotel-reservation/internal/wire"
	"hotel-reservation/pkg/database"
	"hotel-reservation/pkg/utils"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	flags := pflag.NewFlagSet("hotel-reservation", pflag.ExitOnError)
	flags.String("service", wire.ServiceReservation, "service to run: gateway, guest, hotel, reservation or config")
	flags.Parse(os.Args[1:])

	if err := utils.BindFlags(flags); err != nil {
		log.Fatalf("Failed to bind flags: %v", err)
	}

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Service, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("service", config.App.Service),
		zap.String("profile", config.App.Profile),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	var repos *repository.Repository
	if wire.NeedsDatabase(config.App.Service) {
		// Connect to database
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")

		repos = repository.NewRepository(db, logger)
	}

	// Wire the selected service
	var app *wire.App
	switch config.App.Service {
	case wire.ServiceGateway:
		app, err = wire.WiringGateway(config, logger)
		if err != nil {
			logger.Fatal("Failed to wire gateway", zap.Error(err))
		}
	case wire.ServiceGuest:
		app = wire.WiringGuest(repos, config, logger)
	case wire.ServiceHotel:
		app = wire.WiringHotel(repos, config, logger)
	case wire.ServiceReservation:
		app = wire.WiringReservation(repos, config, logger)
	case wire.ServiceConfig:
		app = wire.WiringConfig(config, logger)
	default:
		logger.Fatal("Unknown service", zap.String("service", config.App.Service))
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("Failed to release resources", zap.Error(err))
		}
	}()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
