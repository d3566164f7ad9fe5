package provider

import "errors"

var (
	// ErrMissingAPIKey means the selected provider has no API key configured.
	ErrMissingAPIKey = errors.New("provider: API key not set")

	// ErrEmptyReply means the provider answered without any usable text.
	ErrEmptyReply = errors.New("provider: empty reply")
)
