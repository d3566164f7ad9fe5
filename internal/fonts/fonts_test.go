// Package fonts tests family normalization and stylesheet URLs.
package fonts

import (
	"reflect"
	"testing"
)

// TestNormalizeFamily verifies folder-name candidates.
func TestNormalizeFamily(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"Inter", []string{"inter"}},
		{"Open Sans", []string{"opensans", "open-sans"}},
		{"Press Start 2P", []string{"pressstart2p", "press-start-2p"}},
		{"  Lora  ", []string{"lora"}},
		{"", nil},
		{"   ", nil},
	}

	for _, tc := range tests {
		if got := NormalizeFamily(tc.name); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("NormalizeFamily(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// TestLinkURL verifies the stylesheet URL shape.
func TestLinkURL(t *testing.T) {
	tests := []struct {
		family string
		want   string
	}{
		{
			"Press Start 2P",
			"https://fonts.googleapis.com/css2?family=Press+Start+2P&display=swap",
		},
		{
			"Lora",
			"https://fonts.googleapis.com/css2?family=Lora&display=swap",
		},
		{
			"  Open Sans  ",
			"https://fonts.googleapis.com/css2?family=Open+Sans&display=swap",
		},
	}

	for _, tc := range tests {
		if got := LinkURL(tc.family); got != tc.want {
			t.Errorf("LinkURL(%q) = %q, want %q", tc.family, got, tc.want)
		}
	}
}
