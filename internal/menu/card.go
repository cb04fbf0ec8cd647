package menu

// State is the lifecycle state of one generated facet of a card. The
// description moves pending -> resolved | fallback, the image moves
// pending -> resolved | failed. No further transitions happen.
type State string

const (
	StatePending  State = "pending"
	StateResolved State = "resolved"
	StateFallback State = "fallback"
	StateFailed   State = "failed"
)

// DescriptionPlaceholder is shown while the description request is in flight.
const DescriptionPlaceholder = "Generating description…"

// DescriptionFallback replaces the description when its request fails for
// any reason. Description failures are never surfaced to the user.
const DescriptionFallback = "A delightful choice for any occasion."

// Card is the explicit per-item state the page is rendered from. Its two
// facets resolve independently; neither ever blocks or corrupts the other.
type Card struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	DescriptionState State  `json:"description_state"`
	ImageSrc         string `json:"image_src,omitempty"`
	ImageAlt         string `json:"image_alt"`
	ImageState       State  `json:"image_state"`
}
