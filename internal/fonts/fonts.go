// Package fonts resolves font family names into assets: the Google Fonts
// stylesheet URL for web clients, and locally cached font files for
// terminal and native ones. The cache stores font binaries only.
package fonts

import "strings"

// googleFontsCSSBase is the stylesheet endpoint web clients link against.
const googleFontsCSSBase = "https://fonts.googleapis.com/css2"

// NormalizeFamily converts a display name into candidate folder names in
// the google/fonts repository ("Open Sans" -> "opensans", "open-sans").
func NormalizeFamily(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	lower := strings.ToLower(name)
	noSpaces := strings.ReplaceAll(lower, " ", "")
	withHyphens := strings.ReplaceAll(lower, " ", "-")

	out := []string{noSpaces}
	if withHyphens != noSpaces {
		out = append(out, withHyphens)
	}
	return out
}

// LinkURL returns the Google Fonts stylesheet URL for the family, the
// same URL a web page would put in a <link> tag.
func LinkURL(family string) string {
	escaped := strings.ReplaceAll(strings.TrimSpace(family), " ", "+")
	return googleFontsCSSBase + "?family=" + escaped + "&display=swap"
}
