package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// themeReplacer replaces filesystem-unsafe characters with safe alternatives.
var themeReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeTheme prepares a meeting theme for use inside a filename. The theme
// is NFC-normalized so visually identical spreadsheet values produce the same
// canonical name, unsafe characters are replaced, control runes are dropped,
// and runs of whitespace collapse to a single space.
func SanitizeTheme(theme string) string {
	theme = norm.NFC.String(strings.TrimSpace(theme))
	if theme == "" {
		return ""
	}
	theme = themeReplacer.Replace(theme)

	var b strings.Builder
	b.Grow(len(theme))
	space := false
	for _, r := range theme {
		switch {
		case unicode.IsControl(r):
			// drop
		case unicode.IsSpace(r):
			if !space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = true
		default:
			b.WriteRune(r)
			space = false
		}
	}
	return strings.TrimSpace(b.String())
}
