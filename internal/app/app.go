// Package app wires one configuration store and one catalog provider into
// the prompters, and exposes one method per command.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/Spiderpig86/gittr/internal/config"
	"github.com/Spiderpig86/gittr/internal/domain/ports"
	"github.com/Spiderpig86/gittr/internal/emoji"
	apperrors "github.com/Spiderpig86/gittr/internal/errors"
	"github.com/Spiderpig86/gittr/internal/i18n"
	"github.com/Spiderpig86/gittr/internal/logger"
	"github.com/Spiderpig86/gittr/internal/prompt"
	"github.com/Spiderpig86/gittr/internal/ui"
	"github.com/Spiderpig86/gittr/internal/version"
)

// Deps are the collaborators the dispatcher is built from. Cache and
// Clipboard may be nil.
type Deps struct {
	ConfigPath string
	Remote     emoji.Source
	Cache      emoji.Cache
	Git        ports.GitService
	UI         prompt.UI
	Clipboard  prompt.Clipboard
	T          *i18n.Translations
	Out        io.Writer
}

// Gittr is the command dispatcher. It holds the only store and provider of
// the process.
type Gittr struct {
	store    *config.Store
	provider *emoji.Provider
	args     prompt.Args
}

// New loads the preferences and fills in defaults for anything missing. An
// unreadable preference file is reported as a warning and replaced by
// defaults the next time preferences are saved.
func New(ctx context.Context, deps Deps) (*Gittr, error) {
	store, err := config.LoadStore(deps.ConfigPath)
	if err != nil {
		if !errors.Is(err, apperrors.ErrConfigLoad) {
			return nil, err
		}
		logger.Debug(ctx, "using default preferences", "path", deps.ConfigPath, "error", err)
		ui.PrintWarning(deps.Out, deps.T.GetMessage("app.config_load_warning", 0, nil))
	}

	if !store.Preferences().Complete() {
		if err := store.Update(func(p *config.Preferences) { *p = config.Normalize(*p) }); err != nil {
			return nil, err
		}
		logger.Debug(ctx, "filled default preferences", "path", store.Path())
	}

	provider, err := emoji.NewProvider(ctx, deps.Remote, deps.Cache)
	if err != nil {
		return nil, err
	}

	return &Gittr{
		store:    store,
		provider: provider,
		args: prompt.Args{
			Store:     store,
			Catalog:   provider,
			Git:       deps.Git,
			UI:        deps.UI,
			Clipboard: deps.Clipboard,
			T:         deps.T,
			Out:       deps.Out,
		},
	}, nil
}

func (g *Gittr) Store() *config.Store {
	return g.store
}

func (g *Gittr) Commit(ctx context.Context) error {
	ctx = logger.With(ctx, "command", "commit")
	return prompt.NewCommitPrompter(g.args).Prompt(ctx)
}

func (g *Gittr) Reconfig(ctx context.Context) error {
	ctx = logger.With(ctx, "command", "reconfig")
	return prompt.NewConfigPrompter(g.args).Prompt(ctx)
}

func (g *Gittr) List(ctx context.Context) error {
	ctx = logger.With(ctx, "command", "list")
	return prompt.NewListPrompter(g.args).Prompt(ctx)
}

func (g *Gittr) Search(ctx context.Context, copyToClipboard bool) error {
	ctx = logger.With(ctx, "command", "search")
	return prompt.NewSearchPrompter(g.args, copyToClipboard).Prompt(ctx)
}

// ShowConfig prints every stored preference, sorted by key.
func (g *Gittr) ShowConfig(ctx context.Context) error {
	ctx = logger.With(ctx, "command", "reconfig")
	t := g.args.T
	values := g.store.Values()

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	_, _ = fmt.Fprintln(g.args.Out, ui.Accent.Sprint(t.GetMessage("reconfig.show_title", 0, nil)))
	for _, k := range keys {
		value := t.GetMessage("reconfig.undefined", 0, nil)
		if v := values[k]; v != nil {
			value = fmt.Sprint(v)
		}
		ui.PrintKeyValue(g.args.Out, k, value)
	}
	logger.Debug(ctx, "printed preferences", "path", g.store.Path())
	return nil
}

// Update forces a refresh of the catalog. A failed refresh keeps the cached
// catalog and is returned so the command exits non-zero.
func (g *Gittr) Update(ctx context.Context) error {
	ctx = logger.With(ctx, "command", "update")
	t := g.args.T
	s := ui.NewSpinner(g.args.Out).WithMessage(t.GetMessage("update.fetching", 0, nil)).Build()
	s.Start()

	catalog, err := g.provider.Catalog(ctx, true)
	if err != nil {
		s.Warning(t.GetMessage("update.failed", 0, nil))
		logger.Debug(ctx, "catalog refresh failed", "error", err)
		return err
	}

	s.Success(t.GetMessage("update.success", len(catalog), map[string]interface{}{
		"Count": len(catalog),
	}))
	return nil
}

func (g *Gittr) Version(_ context.Context) error {
	_, _ = fmt.Fprintln(g.args.Out, g.args.T.GetMessage("app.version", 0, map[string]interface{}{
		"AppName": version.AppName,
		"Version": version.Version,
	}))
	return nil
}
