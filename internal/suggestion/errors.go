package suggestion

import "errors"

var (
	// ErrEmptyTitle means the request carried nothing to analyze.
	ErrEmptyTitle = errors.New("suggestion: title is empty")

	// ErrProvider means the AI provider call failed.
	ErrProvider = errors.New("suggestion: provider request failed")

	// ErrBadReply means the provider reply did not contain a complete
	// suggestion.
	ErrBadReply = errors.New("suggestion: provider reply missing a usable suggestion")
)
