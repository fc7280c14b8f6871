package app

import (
	"context"
	"fmt"

	"github.com/rewined/labelgrid/internal/config"
	"github.com/rewined/labelgrid/internal/prefs"
	"github.com/rewined/labelgrid/internal/state"
	"github.com/rewined/labelgrid/internal/toolkit"
	"github.com/rewined/labelgrid/internal/ui"
)

// Options configure the labelgrid application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/labelgrid/prefs.toml
	ServerBind string // overrides config server_bind when set
}

// Run boots the labelgrid TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.ServerBind != "" {
		cfg.ServerBind = opts.ServerBind
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := toolkit.NewClient(cfg.ServerBind)
	if err != nil {
		return fmt.Errorf("init toolkit client: %w", err)
	}

	store := &state.Store{}

	// Rows can be created and typed into before the catalog arrives;
	// autocomplete simply finds nothing until the load lands.
	StartLoader(ctx, store, client)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Config:    &cfg,
		ThemeName: userPrefs.Theme,
		FormatKey: userPrefs.Format,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
