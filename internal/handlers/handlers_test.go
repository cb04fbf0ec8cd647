package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saffronlabs/menuboard/internal/catalog"
	"github.com/saffronlabs/menuboard/internal/menu"
	"github.com/saffronlabs/menuboard/internal/render"
)

type fakeGenerator struct{}

func (fakeGenerator) Describe(ctx context.Context, name string) (string, error) {
	return "Tasting notes for " + name, nil
}

func (fakeGenerator) Illustrate(ctx context.Context, name string) ([]byte, string, error) {
	return []byte("img"), "image/png", nil
}

func testHandler(t *testing.T, gen menu.Generator) (*Handler, *menu.Board) {
	t.Helper()
	board := menu.NewBoard(gen, catalog.Default())
	if gen != nil {
		board.Render(context.Background())
		board.Wait()
	}
	return New(board, render.New()), board
}

func TestHandleMenu(t *testing.T) {
	handler, _ := testHandler(t, fakeGenerator{})

	req := httptest.NewRequest("GET", "/api/menu", nil)
	w := httptest.NewRecorder()
	handler.HandleMenu(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %s", ct)
	}

	var resp menuResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error != "" {
		t.Errorf("Expected no error, got %q", resp.Error)
	}
	if len(resp.Cards) != 6 {
		t.Fatalf("Expected 6 cards, got %d", len(resp.Cards))
	}
	if resp.Cards[0].Description != "Tasting notes for Hyderabadi Chicken Biryani" {
		t.Errorf("Unexpected first card description: %q", resp.Cards[0].Description)
	}
}

func TestHandleMenuMethodNotAllowed(t *testing.T) {
	handler, _ := testHandler(t, fakeGenerator{})

	req := httptest.NewRequest("POST", "/api/menu", nil)
	w := httptest.NewRecorder()
	handler.HandleMenu(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestHandleRender(t *testing.T) {
	handler, board := testHandler(t, fakeGenerator{})

	req := httptest.NewRequest("POST", "/api/render", nil)
	w := httptest.NewRecorder()
	handler.HandleRender(w, req)

	if w.Code != http.StatusAccepted {
		t.Errorf("Expected status 202, got %d", w.Code)
	}

	board.Wait()
	if got := len(board.Cards()); got != 6 {
		t.Errorf("Expected exactly 6 cards after re-render, got %d", got)
	}
}

func TestHandleRenderMethodNotAllowed(t *testing.T) {
	handler, _ := testHandler(t, fakeGenerator{})

	req := httptest.NewRequest("GET", "/api/render", nil)
	w := httptest.NewRecorder()
	handler.HandleRender(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestHandleIndex(t *testing.T) {
	handler, _ := testHandler(t, fakeGenerator{})

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.HandleIndex(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, `id="menu-grid"`) {
		t.Error("Expected the menu grid mount point")
	}
	for _, e := range catalog.Default() {
		if !strings.Contains(body, `aria-label="`+e.Name+`"`) {
			t.Errorf("Expected a card labeled %q", e.Name)
		}
	}
	if !strings.Contains(body, "/api/menu") {
		t.Error("Expected the live polling script")
	}
}

func TestHandleIndexUnknownPath(t *testing.T) {
	handler, _ := testHandler(t, fakeGenerator{})

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()
	handler.HandleIndex(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestHandleIndexWithoutGenerationClient(t *testing.T) {
	handler, board := testHandler(t, nil)
	board.Render(context.Background())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.HandleIndex(w, req)

	body := w.Body.String()
	if !strings.Contains(body, `role="alert"`) {
		t.Error("Expected a page-level error message")
	}
	if strings.Contains(body, "Hyderabadi Chicken Biryani") {
		t.Error("Expected no cards without a generation client")
	}

	req = httptest.NewRequest("GET", "/api/menu", nil)
	w = httptest.NewRecorder()
	handler.HandleMenu(w, req)

	var resp menuResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error == "" {
		t.Error("Expected an error in the menu response")
	}
	if len(resp.Cards) != 0 {
		t.Errorf("Expected no cards, got %d", len(resp.Cards))
	}
}
