package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-room-chat/internal/config"
	"github.com/MKhiriev/go-room-chat/internal/handler"
	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/internal/server"
	"github.com/MKhiriev/go-room-chat/internal/service"
	"github.com/MKhiriev/go-room-chat/internal/store"
	"github.com/MKhiriev/go-room-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("go-room-chat-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("address", cfg.HTTPAddress).
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("starting chat server")

	srv.RunServer()
}
