package provider

import (
	"context"
	"encoding/json"
	"hash/fnv"
)

// Static implements Client without any network access. It picks from a
// small curated list, keyed by a hash of the prompt so the same title
// always gets the same answer. It serves keyless development and tests.
type Static struct{}

// NewStatic returns the offline provider.
func NewStatic() *Static {
	return &Static{}
}

// Name identifies this provider in logs and errors.
func (s *Static) Name() string { return KindStatic }

var staticSuggestions = []struct {
	font   string
	reason string
}{
	{"Playfair Display", "An elegant high-contrast serif that gives a title an editorial voice."},
	{"Oswald", "A condensed sans serif with enough weight to carry short, punchy titles."},
	{"Lora", "A contemporary serif with calligraphic roots that reads warmly at display sizes."},
	{"Monoton", "A retro display face that turns a title into a glowing marquee."},
	{"Space Grotesk", "A techy grotesque that fits modern digital products."},
}

// Generate returns a deterministic suggestion for the prompt, shaped like
// a model reply so the extraction path above it stays identical.
func (s *Static) Generate(ctx context.Context, prompt string) (string, error) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(prompt))
	pick := staticSuggestions[int(h.Sum32())%len(staticSuggestions)]

	reply, err := json.Marshal(map[string]string{
		"font_name": pick.font,
		"reason":    pick.reason,
	})
	if err != nil {
		return "", err
	}
	return string(reply), nil
}
