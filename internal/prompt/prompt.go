// Package prompt implements the interactive round-trips behind each command.
// A Prompter collects typed answers through a UI and then applies them; the
// UI itself is swappable so the flows can run without a terminal.
package prompt

import (
	"context"
	"io"

	"github.com/Spiderpig86/gittr/internal/config"
	"github.com/Spiderpig86/gittr/internal/domain/ports"
	"github.com/Spiderpig86/gittr/internal/emoji"
	"github.com/Spiderpig86/gittr/internal/i18n"
)

// Choice is one selectable option. Label is what the user sees, Value is
// what the prompt returns.
type Choice struct {
	Label string
	Value string
}

// FormField is one question of a batched form, preselected at Selected.
type FormField struct {
	Key      string
	Question string
	Choices  []Choice
	Selected int
}

// SourceFunc returns the choices matching the current filter input.
type SourceFunc func(input string) []Choice

// UI presents questions and returns the answers. Every method returns
// errors.ErrPromptCancelled when the user aborts.
type UI interface {
	// Form shows every field at once and returns the chosen index per field.
	Form(ctx context.Context, title string, fields []FormField) ([]int, error)
	// Select shows a list that is re-filtered through source on each keystroke.
	Select(ctx context.Context, question string, source SourceFunc) (Choice, error)
	Input(ctx context.Context, question string, required bool) (string, error)
}

// Prompter runs one interaction to completion.
type Prompter interface {
	Prompt(ctx context.Context) error
}

type PreferenceStore interface {
	Preferences() config.Preferences
	Update(fn func(p *config.Preferences)) error
}

type CatalogProvider interface {
	Catalog(ctx context.Context, forceRefresh bool) ([]emoji.Emoji, error)
}

type Clipboard interface {
	WriteAll(text string) error
}

// Args is what the dispatcher hands to every prompter. Clipboard may be nil.
type Args struct {
	Store     PreferenceStore
	Catalog   CatalogProvider
	Git       ports.GitService
	UI        UI
	Clipboard Clipboard
	T         *i18n.Translations
	Out       io.Writer
}
