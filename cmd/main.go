// Package main is the entry point for the packlist-service application.
//
// @title           Packlist Service API
// @version         1.0.0
// @description     API for generating personal travel packing lists.
//
//	The service derives a categorized, bag-assigned packing list from trip
//	segments and trip-wide flags, with optional weather-based adjustments.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/packlist-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Packlists
// @tag.description Packing list generation and export
//
// @tag.name        Overrides
// @tag.description Persistent bag-assignment overrides
//
// @tag.name        Packed
// @tag.description Packed-state tracking
//
// @tag.name        Weather
// @tag.description Weather lookups for trip segments
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/packlist-service/docs" // swagger docs

	"github.com/guttosm/packlist-service/config"
	"github.com/guttosm/packlist-service/internal/app"
	"github.com/guttosm/packlist-service/internal/middleware"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	defer middleware.StopAsyncLogger()

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
