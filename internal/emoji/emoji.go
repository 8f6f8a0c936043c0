// Package emoji holds the emoji catalog: the record type, the live search
// filter, and the provider that serves a cached catalog and refreshes it from
// a remote source on demand.
package emoji

import (
	"strings"

	"github.com/Spiderpig86/gittr/internal/config"
)

// Emoji is one catalog record. Field names follow the gitmoji document.
type Emoji struct {
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Render returns the text inserted into a commit message: the shortcode for
// markdown, the glyph for unicode.
func (e Emoji) Render(format config.EmojiFormat) string {
	if format == config.EmojiFormatUnicode {
		return e.Emoji
	}
	return e.Code
}

// Filter keeps the records whose name+description contains input, ignoring
// case. An empty input returns the whole catalog in its original order.
func Filter(catalog []Emoji, input string) []Emoji {
	if input == "" {
		out := make([]Emoji, len(catalog))
		copy(out, catalog)
		return out
	}

	needle := strings.ToLower(input)
	out := make([]Emoji, 0, len(catalog))
	for _, e := range catalog {
		if strings.Contains(strings.ToLower(e.Name+e.Description), needle) {
			out = append(out, e)
		}
	}
	return out
}
