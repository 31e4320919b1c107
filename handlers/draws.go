// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/quickly-draw/middleware"
	"github.com/danielhkuo/quickly-draw/models"
	"github.com/danielhkuo/quickly-draw/raffle"
)

type DrawHandler struct {
	engine *raffle.Engine
}

func NewDrawHandler(engine *raffle.Engine) *DrawHandler {
	return &DrawHandler{engine: engine}
}

// Draw handles POST /admin/draws
func (h *DrawHandler) Draw(w http.ResponseWriter, r *http.Request) {
	var req models.DrawRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result, err := h.engine.Draw(req.Quantity)

	var insufficient *raffle.InsufficientPoolError
	switch {
	case err == nil:
	case errors.Is(err, raffle.ErrInvalidQuantity):
		middleware.JSONResponse(w, http.StatusBadRequest, models.DrawResponse{
			Message: "Invalid quantity.",
		})
		return
	case errors.Is(err, raffle.ErrEmptyPool):
		middleware.JSONResponse(w, http.StatusConflict, models.DrawResponse{
			Message: "No numbers registered.",
		})
		return
	case errors.As(err, &insufficient):
		middleware.JSONResponse(w, http.StatusConflict, models.DrawResponse{
			Message:  fmt.Sprintf("Only %d unique numbers registered.", insufficient.PoolSize),
			PoolSize: insufficient.PoolSize,
		})
		return
	default:
		slog.Error("failed to draw", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var msg strings.Builder
	msg.WriteString("Drawn numbers:\n\n")
	for _, entry := range result.Entries {
		fmt.Fprintf(&msg, "Number %d - %s\n", entry.Number, entry.Winner)
	}

	middleware.JSONResponse(w, http.StatusOK, models.DrawResponse{
		OK:           true,
		Message:      msg.String(),
		DrawnNumbers: displayNumbers(result.Numbers),
		ResultsTable: result.Entries,
	})
}

// displayNumbers joins numbers for people to read, e.g. "1, 4, 9"
func displayNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
