package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/Spiderpig86/gittr/internal/logger"
)

// SearchPrompter filters the catalog live and prints the chosen rendering,
// optionally copying it to the clipboard.
type SearchPrompter struct {
	args Args
	copy bool
}

func NewSearchPrompter(args Args, copyToClipboard bool) *SearchPrompter {
	return &SearchPrompter{args: args, copy: copyToClipboard}
}

func (p *SearchPrompter) Prompt(ctx context.Context) error {
	catalog, err := p.args.Catalog.Catalog(ctx, false)
	if err != nil {
		return err
	}

	format := p.args.Store.Preferences().Format()
	choice, err := p.args.UI.Select(ctx, p.args.T.GetMessage("search.question", 0, nil), emojiSource(catalog, format))
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(p.args.Out, p.args.T.GetMessage("search.result", 0, map[string]interface{}{
		"Emoji": choice.Value,
	}))

	if p.copy {
		p.copyChoice(ctx, choice.Value)
	}
	return nil
}

// copyChoice never fails the search; the emoji is already on screen.
func (p *SearchPrompter) copyChoice(ctx context.Context, value string) {
	err := errors.New("clipboard not configured")
	if p.args.Clipboard != nil {
		err = p.args.Clipboard.WriteAll(value)
	}
	if err != nil {
		logger.Warn(ctx, "could not copy to clipboard", "error", err)
		_, _ = fmt.Fprintln(p.args.Out, p.args.T.GetMessage("search.copy_failed", 0, map[string]interface{}{
			"Error": err.Error(),
		}))
		return
	}
	_, _ = fmt.Fprintln(p.args.Out, p.args.T.GetMessage("search.copied", 0, nil))
}
