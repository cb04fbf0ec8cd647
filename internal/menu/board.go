// Package menu holds the menu board: one card per catalog entry, each
// backfilled by two independent generation requests.
package menu

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sync"

	"github.com/saffronlabs/menuboard/internal/catalog"
)

// Generator produces a description and a photo for a menu item. Satisfied
// by *gemini.Client; tests substitute fakes.
type Generator interface {
	Describe(ctx context.Context, name string) (string, error)
	Illustrate(ctx context.Context, name string) (data []byte, mimeType string, err error)
}

// unavailableMessage is the single page-level error shown when the
// generation client could not be constructed at all.
const unavailableMessage = "The menu is currently unavailable. Please check back soon."

// Board owns the card list. All card mutation happens under mu: the two
// goroutines launched per entry write only their own card, and readers
// take value snapshots.
type Board struct {
	gen     Generator
	entries []catalog.Entry

	mu      sync.RWMutex
	cards   []*Card
	pageErr string

	wg sync.WaitGroup
}

// NewBoard creates a board for the given entries. A nil generator puts the
// board into its page-level error state: no per-entry requests are ever
// issued and the page shows a single message instead of cards.
func NewBoard(gen Generator, entries []catalog.Entry) *Board {
	b := &Board{gen: gen, entries: entries}
	if gen == nil {
		b.pageErr = unavailableMessage
	}
	return b
}

// Render replaces all cards with fresh placeholder cards in catalog order,
// then launches the two generation requests for every entry without
// waiting on any of them. Calling it again fully replaces the previous
// card set; late completions from an earlier render write to orphaned
// cards and are never observable.
func (b *Board) Render(ctx context.Context) {
	if b.gen == nil {
		return
	}

	fresh := make([]*Card, 0, len(b.entries))
	for _, e := range b.entries {
		fresh = append(fresh, &Card{
			ID:               e.ID,
			Name:             e.Name,
			Description:      DescriptionPlaceholder,
			DescriptionState: StatePending,
			ImageAlt:         e.Name,
			ImageState:       StatePending,
		})
	}

	b.mu.Lock()
	b.cards = fresh
	b.mu.Unlock()

	for _, card := range fresh {
		b.wg.Add(2)
		go func(c *Card) {
			defer b.wg.Done()
			b.describe(ctx, c)
		}(card)
		go func(c *Card) {
			defer b.wg.Done()
			b.illustrate(ctx, c)
		}(card)
	}
}

func (b *Board) describe(ctx context.Context, c *Card) {
	text, err := b.gen.Describe(ctx, c.Name)

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		slog.Error("Description generation failed", "item", c.Name, "err", err)
		c.Description = DescriptionFallback
		c.DescriptionState = StateFallback
		return
	}
	c.Description = text
	c.DescriptionState = StateResolved
}

func (b *Board) illustrate(ctx context.Context, c *Card) {
	data, mimeType, err := b.gen.Illustrate(ctx, c.Name)

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		slog.Error("Image generation failed", "item", c.Name, "err", err)
		c.ImageAlt = fmt.Sprintf("Image of %s could not be generated", c.Name)
		c.ImageState = StateFailed
		return
	}
	c.ImageSrc = dataURI(mimeType, data)
	c.ImageState = StateResolved
}

func dataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Wait blocks until every launched generation request has completed. Used
// by the one-shot generate command and by tests; the server never waits.
func (b *Board) Wait() {
	b.wg.Wait()
}

// Cards returns a value snapshot of the current cards in catalog order.
func (b *Board) Cards() []Card {
	b.mu.RLock()
	defer b.mu.RUnlock()

	cards := make([]Card, 0, len(b.cards))
	for _, c := range b.cards {
		cards = append(cards, *c)
	}
	return cards
}

// PageError returns the page-level error message, or "" when the board is
// operational.
func (b *Board) PageError() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pageErr
}
