// Package main starts the merchant payouts API server.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-petr/merchant-payouts/cmd/httpserver"
	"github.com/go-petr/merchant-payouts/internal/middleware"
	"github.com/go-petr/merchant-payouts/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	server, err := httpserver.New(logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Msg("MERCHANT PAYOUTS API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
