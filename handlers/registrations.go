// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-draw/auth"
	"github.com/danielhkuo/quickly-draw/cliparse"
	"github.com/danielhkuo/quickly-draw/export"
	"github.com/danielhkuo/quickly-draw/middleware"
	"github.com/danielhkuo/quickly-draw/models"
	"github.com/danielhkuo/quickly-draw/registry"
)

type RegistrationHandler struct {
	reg *registry.Registry
	cfg cliparse.Config
}

func NewRegistrationHandler(reg *registry.Registry, cfg cliparse.Config) *RegistrationHandler {
	return &RegistrationHandler{reg: reg, cfg: cfg}
}

// Register handles POST /registrations
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	created, err := h.reg.Register(req.Name, req.Numbers)
	if registry.IsValidation(err) {
		slog.Info("registration rejected", "reason", err)
	}

	var taken *registry.NumbersTakenError
	switch {
	case err == nil:
	case errors.Is(err, registry.ErrEmptyFields):
		middleware.JSONResponse(w, http.StatusBadRequest, models.RegisterResponse{
			Message: "Please fill in all fields.",
		})
		return
	case errors.Is(err, registry.ErrEmptyNumbers):
		middleware.JSONResponse(w, http.StatusBadRequest, models.RegisterResponse{
			Message: "Enter at least one valid number, e.g. 1,2,3.",
		})
		return
	case errors.As(err, &taken):
		middleware.JSONResponse(w, http.StatusConflict, models.RegisterResponse{
			Message: fmt.Sprintf("Number(s) %s already taken. Choose others.", displayNumbers(taken.Numbers)),
			Taken:   taken.Numbers,
		})
		return
	default:
		slog.Error("failed to register", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save registration")
		return
	}

	out := toOutput(created)
	slog.Info("participant registered",
		"registration_id", created.ID,
		"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		OK:           true,
		Message:      fmt.Sprintf("Registration successful!\nName: %s\nNumbers: %s", out.Name, out.Numbers),
		Registration: &out,
	})
}

// List handles GET /admin/registrations
func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.reg.ListAll()
	if err != nil {
		slog.Error("failed to list registrations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	out := make([]models.RegistrationOutput, 0, len(all))
	for _, reg := range all {
		out = append(out, toOutput(reg))
	}

	middleware.JSONResponse(w, http.StatusOK, out)
}

// Export handles GET /admin/registrations/export
func (h *RegistrationHandler) Export(w http.ResponseWriter, r *http.Request) {
	all, err := h.reg.ListAll()
	if err != nil {
		slog.Error("failed to list registrations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Buffer so a write failure can still become a 500
	var buf bytes.Buffer
	if err := export.WriteRegistrationsCSV(&buf, all); err != nil {
		slog.Error("failed to write CSV", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export registrations")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="registros.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Clear handles DELETE /admin/registrations
func (h *RegistrationHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.reg.ClearAll(); err != nil {
		slog.Error("failed to clear registrations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clear registrations")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		OK:      true,
		Message: "All registrations cleared.",
	})
}

func toOutput(reg models.Registration) models.RegistrationOutput {
	return models.RegistrationOutput{
		Timestamp: reg.Timestamp,
		Name:      reg.Name,
		Numbers:   registry.JoinNumbers(reg.Numbers),
	}
}
