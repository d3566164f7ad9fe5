// Package typography provides a Go client for the Gemini-typography
// suggestion service. It resolves a display-font suggestion for a piece
// of title text and tracks the request lifecycle so callers can render
// loading, error, and result surfaces from a single state snapshot.
package typography

// SDKVersion is the current version of the typography client.
const SDKVersion = "0.1.0"

// Suggestion is a resolved font recommendation for a title.
// A suggestion is never partial: both fields are always populated,
// whether it came from the live service or from the offline fallback.
type Suggestion struct {
	// FontName is the display name of the recommended font family
	// (e.g., "Playfair Display")
	FontName string `json:"font_name"`

	// Reason explains in a sentence or two why the font suits the title
	Reason string `json:"reason"`
}

// Fallback suggestion substituted when the suggestion service is
// unreachable, so the caller always has something to render.
const (
	FallbackFontName = "Press Start 2P"
	FallbackReason   = "This retro pixel font gives your title a bold arcade presence. " +
		"(Offline suggestion: the live service could not be reached.)"
)

// suggestionRequest is the request body for the suggestion endpoint.
type suggestionRequest struct {
	Prompt string `json:"prompt"`
}
