// Package handlers wires the menu board to the HTTP surface.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/saffronlabs/menuboard/internal/menu"
	"github.com/saffronlabs/menuboard/internal/render"
)

type Handler struct {
	board    *menu.Board
	renderer *render.Renderer
}

func New(board *menu.Board, renderer *render.Renderer) *Handler {
	return &Handler{
		board:    board,
		renderer: renderer,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}
