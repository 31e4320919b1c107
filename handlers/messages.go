// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-draw/middleware"
	"github.com/danielhkuo/quickly-draw/models"
	"github.com/danielhkuo/quickly-draw/registry"
)

type MessageHandler struct {
	reg *registry.Registry
}

func NewMessageHandler(reg *registry.Registry) *MessageHandler {
	return &MessageHandler{reg: reg}
}

// Get handles GET /message
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	text, err := h.reg.PublicMessage()
	if err != nil {
		slog.Error("failed to read public message", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: text})
}

// Set handles PUT /admin/message
// Empty text is stored as is.
func (h *MessageHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req models.SetMessageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.reg.SetPublicMessage(req.Text); err != nil {
		slog.Error("failed to save public message", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save public message")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		OK:      true,
		Message: "Public message updated.",
	})
}
