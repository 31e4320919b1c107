// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-draw/cliparse"
	"github.com/danielhkuo/quickly-draw/handlers"
	"github.com/danielhkuo/quickly-draw/middleware"
	"github.com/danielhkuo/quickly-draw/raffle"
	"github.com/danielhkuo/quickly-draw/registry"
)

// NewRouter wires the registry and raffle engine to the HTTP routes.
// drawOpts are passed to the raffle engine.
func NewRouter(db *sql.DB, cfg cliparse.Config, drawOpts ...raffle.Option) *http.ServeMux {
	mux := http.NewServeMux()

	reg := registry.New(db, cfg.DatabaseType)
	engine := raffle.NewEngine(reg, drawOpts...)

	// Initialize handlers
	registrationHandler := handlers.NewRegistrationHandler(reg, cfg)
	messageHandler := handlers.NewMessageHandler(reg)
	drawHandler := handlers.NewDrawHandler(engine)
	adminHandler := handlers.NewAdminHandler(cfg)

	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(cfg.AdminKeySalt, next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public
	mux.HandleFunc("GET /message", middleware.WithLogging(messageHandler.Get))
	mux.HandleFunc("POST /registrations", middleware.WithLogging(registrationHandler.Register))

	// Admin
	mux.HandleFunc("POST /admin/login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("GET /admin/registrations", admin(registrationHandler.List))
	mux.HandleFunc("GET /admin/registrations/export", admin(registrationHandler.Export))
	mux.HandleFunc("DELETE /admin/registrations", admin(registrationHandler.Clear))
	mux.HandleFunc("POST /admin/draws", admin(drawHandler.Draw))
	mux.HandleFunc("PUT /admin/message", admin(messageHandler.Set))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-draw API v1"))
	})

	return mux
}
