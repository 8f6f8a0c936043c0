package prompt

import (
	"fmt"
	"strings"

	"github.com/Spiderpig86/gittr/internal/config"
	"github.com/Spiderpig86/gittr/internal/emoji"
	"github.com/fatih/color"
)

var shortcode = color.New(color.FgBlue)

// emojiSource filters catalog on every keystroke and renders each match as
// "glyph :name: - description" whose value follows format.
func emojiSource(catalog []emoji.Emoji, format config.EmojiFormat) SourceFunc {
	return func(input string) []Choice {
		matches := emoji.Filter(catalog, input)
		choices := make([]Choice, 0, len(matches))
		for _, e := range matches {
			choices = append(choices, Choice{
				Label: fmt.Sprintf("%s %s - %s", e.Emoji, shortcode.Sprintf(":%s:", e.Name), e.Description),
				Value: e.Render(format),
			})
		}
		return choices
	}
}

func yesNo(yes, no string, value bool) ([]Choice, int) {
	choices := []Choice{{Label: yes, Value: "true"}, {Label: no, Value: "false"}}
	if value {
		return choices, 0
	}
	return choices, 1
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
