// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Draw API.

# Route Registration

NewRouter builds one registry and one raffle engine over the database and
returns a configured http.ServeMux:

	mux := router.NewRouter(db, cfg)

Tests can pin the draw with raffle options:

	mux := router.NewRouter(db, cfg, raffle.WithSeed(42))

# Endpoints

Public:

	GET  /health        - Liveness
	GET  /message       - Current public message
	POST /registrations - Register a name with numbers

Admin (POST /admin/login returns the key, others require X-Admin-Key):

	POST   /admin/login                - Exchange password for admin key
	GET    /admin/registrations        - List registrations
	GET    /admin/registrations/export - Download registros.csv
	DELETE /admin/registrations        - Remove all registrations
	POST   /admin/draws                - Draw winning numbers
	PUT    /admin/message              - Replace the public message
*/
package router
