package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pad-config/internal/config"
	httpHandler "github.com/MKhiriev/go-pad-config/internal/handler/http"
	"github.com/MKhiriev/go-pad-config/internal/logger"
	"github.com/MKhiriev/go-pad-config/internal/server"
	"github.com/MKhiriev/go-pad-config/internal/service"
	"github.com/MKhiriev/go-pad-config/internal/store"
	"github.com/MKhiriev/go-pad-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "server"

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger(role)
	cfg, err := config.GetConfig(os.Args[1:])
	if err != nil {
		for _, fe := range config.FieldErrors(err) {
			log.Error().Str("field", fe.Field).Str("reason", fe.Reason).Err(fe.Err).Msg("invalid config field")
		}
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = store.NewDirectoryPreparer(log).Prepare(context.Background(), cfg.Directories()...); err != nil {
		log.Fatal().Err(err).Msg("error preparing directories")
	}

	log, err = logger.NewFromConfig(role, cfg.Logging())
	if err != nil {
		logger.NewLogger(role).Fatal().Err(err).Msg("error creating logger")
	}
	defer log.Close()

	log.Debug().Any("config", cfg).Msg("received configs")
	if cfg.BlockDailyCheck() {
		log.Info().Msg("daily telemetry check is disabled")
	}

	services, err := service.NewServices(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	srv, err := server.NewServer(httpHandler.NewHandler(services, log).Init(), cfg.HTTP(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		log.Close()
		os.Exit(1)
	}
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).OrUnknown()
	fmt.Print(info.Banner())
	return info
}
