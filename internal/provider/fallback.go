package provider

import "context"

// Fallback tries Primary first; if it returns an error, tries Secondary.
// Use it to keep suggestions flowing when the hosted model is down or no
// API key is configured in development.
type Fallback struct {
	Primary   Client
	Secondary Client

	// OnFallback, when set, is called with the primary error each time
	// the secondary provider is consulted.
	OnFallback func(primaryErr error)
}

// Generate calls Primary.Generate; on any error, calls Secondary.Generate.
func (f *Fallback) Generate(ctx context.Context, prompt string) (string, error) {
	s, err := f.Primary.Generate(ctx, prompt)
	if err != nil && f.Secondary != nil {
		if f.OnFallback != nil {
			f.OnFallback(err)
		}
		return f.Secondary.Generate(ctx, prompt)
	}
	return s, err
}

// Name identifies the chain in logs and errors.
func (f *Fallback) Name() string {
	if f.Secondary == nil {
		return f.Primary.Name()
	}
	return f.Primary.Name() + "+" + f.Secondary.Name()
}
