package root

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/config"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/logging"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/ui"
)

const Version = "0.1.0"

// app carries what PersistentPreRunE resolved to every subcommand.
type app struct {
	configFile string
	cfg        config.Config
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	cmd := &cobra.Command{
		Use:           "pathfy",
		Short:         "Pathfy — realistic preparation approaches for your goals",
		Long:          "Pathfy compares preparation approaches against the time you actually have, calibrates your level with a short quiz and keeps your goals in a local database.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "Config file (default: ./pathfy.yaml or ~/.config/pathfy/pathfy.yaml)")
	pf.String("db", "", "SQLite database path (default: ~/.pathfy.db)")
	pf.String("log-level", "info", "Log level (debug|info|warn|error)")
	pf.String("log-format", "text", "Log format (text|json)")

	cmd.AddCommand(
		newFieldsCmd(),
		newApproachesCmd(),
		newEvaluateCmd(a),
		newDurationCmd(),
		newGoalCmd(a),
		newQuizCmd(a),
		newBoardCmd(a),
		newAnalyzeCmd(a),
		newServeCmd(a),
		newMCPCmd(a),
	)
	return cmd
}

func (a *app) load(cmd *cobra.Command) error {
	v := config.New(a.configFile)
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
