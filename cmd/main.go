// Package main is the entry point for the colis-service application.
//
// @title           Colis Service API
// @version         1.0.0
// @description     API for managing parcels, prepaid stamp inventory and product stock
//
//	for a small shipping operation. Parcel writes reconcile stock and stamp
//	bindings in a single transaction.
//
// @contact.name   API Support
// @contact.url    https://github.com/expedibox/colis-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Timbres
// @tag.description Prepaid stamp pool operations
//
// @tag.name        Categories
// @tag.description Weight-category registry
//
// @tag.name        Colis
// @tag.description Parcel lifecycle and reconciliation
//
// @tag.name        Clients
// @tag.description Client directory
//
// @tag.name        Produits
// @tag.description Product catalog
//
// @tag.name        Dimensions
// @tag.description Carton dimension presets
//
// @tag.name        Stats
// @tag.description Dashboard counters
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	_ "github.com/expedibox/colis-service/docs" // swagger docs

	"github.com/expedibox/colis-service/config"
	"github.com/expedibox/colis-service/internal/app"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization error")
	}
	defer application.Close()

	server := app.NewServer(application.Router, cfg.Server.Port)
	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
