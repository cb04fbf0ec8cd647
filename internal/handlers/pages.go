package handlers

import (
	"log/slog"
	"net/http"

	"github.com/saffronlabs/menuboard/internal/render"
)

// HandleIndex serves the menu page with whatever card states exist right
// now; the in-page script backfills the rest.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	page := render.PageData{
		Cards:     h.board.Cards(),
		PageError: h.board.PageError(),
		Live:      true,
	}
	if err := h.renderer.RenderPage(w, page); err != nil {
		slog.Error("Unable to render menu page", "err", err)
	}
}
