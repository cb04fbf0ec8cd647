package handlers

import (
	"context"
	"net/http"

	"github.com/saffronlabs/menuboard/internal/menu"
)

type menuResponse struct {
	Error string      `json:"error,omitempty"`
	Cards []menu.Card `json:"cards"`
}

// HandleMenu returns the current card states. The page polls this route
// and patches each card in place as its states leave pending.
func (h *Handler) HandleMenu(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		h.writeJSON(w, menuResponse{
			Error: h.board.PageError(),
			Cards: h.board.Cards(),
		})
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleRender re-runs menu generation, fully replacing the card set.
func (h *Handler) HandleRender(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		// Requests run to completion regardless of this HTTP request's
		// lifetime, so the render gets a background context.
		h.board.Render(context.Background())
		w.WriteHeader(http.StatusAccepted)
		h.writeJSON(w, map[string]string{"status": "rendering"})
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
