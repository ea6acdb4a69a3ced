// Package cli wires the cobra command tree: scriptable subcommands plus the
// interactive TUI when invoked bare.
package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lucvt/tick/internal/config"
	"github.com/lucvt/tick/internal/session"
	"github.com/lucvt/tick/internal/store"
	"github.com/lucvt/tick/internal/tui"
	"github.com/lucvt/tick/internal/ui"
)

// App carries the effective settings (env, overridden by root flags).
type App struct {
	cfg config.Config
	log *slog.Logger
}

func NewRootCmd() *cobra.Command {
	cfg, cfgErr := config.Load()
	app := &App{cfg: cfg}

	cmd := &cobra.Command{
		Use:           "tick",
		Short:         "tick - a tiny local todo list (CLI + TUI)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: `  tick add "Buy milk"
  tick ls
  tick done 2
  tick rm 3
  tick            # interactive TUI`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			sess, st, err := app.open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()
			return tui.Run(cmd.Context(), sess)
		},
	}

	cmd.PersistentFlags().StringVar(&app.cfg.Dir, "dir", cfg.Dir, "data directory (default: current dir)")
	cmd.PersistentFlags().StringVar(&app.cfg.Store, "store", cfg.Store, "storage backend: json|badger|sqlite")
	cmd.PersistentFlags().StringVar(&app.cfg.Theme, "theme", cfg.Theme, "output theme: classic|neon|mono")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			return cfgErr
		}
		ui.SetTheme(app.cfg.Theme)
		app.log = app.cfg.Logger()
		return nil
	}

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newLsCmd(app))
	cmd.AddCommand(newDoneCmd(app))
	cmd.AddCommand(newRmCmd(app))
	return cmd
}

// open builds the configured store and performs the one startup read.
// The caller owns closing the returned store.
func (a *App) open(ctx context.Context) (*session.Session, store.Store, error) {
	st, err := a.cfg.OpenStore(ctx, a.log)
	if err != nil {
		return nil, nil, err
	}
	sess, err := session.Open(ctx, st, a.log)
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	return sess, st, nil
}
