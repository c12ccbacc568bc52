package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/effective-patterns/internal/config"
	"github.com/conn-castle/effective-patterns/internal/messages"
	"github.com/conn-castle/effective-patterns/internal/terminal"
)

var (
	resolveConfig    = config.Resolve
	isOutputTerminal = terminal.IsOutputTerminal
)

const (
	flagConfig = "config"
	flagColor  = "color"
	flagDebug  = "debug"
)

// rootOptions carries persistent flags and the resolved config to subcommands.
type rootOptions struct {
	configPath string
	color      string
	debug      bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, flagConfig, "", messages.RootFlagConfig)
	flags.StringVar(&opts.color, flagColor, "", messages.RootFlagColor)
	flags.BoolVar(&opts.debug, flagDebug, false, messages.RootFlagDebug)

	cmd.AddCommand(
		newListCmd(opts),
		newRunCmd(opts),
		newVerifyCmd(opts),
		newExplainCmd(opts),
		newPickCmd(opts),
		newMcpPromptsCmd(opts),
	)
	return cmd
}

// load resolves the config, applies flag overrides and sets up color and logging.
func (o *rootOptions) load(stderr io.Writer) error {
	cwd, err := getwd()
	if err != nil {
		return err
	}
	cfg, path, err := resolveConfig(o.configPath, cwd)
	if err != nil {
		return err
	}
	if o.color != "" {
		if !config.ValidColor(o.color) {
			return fmt.Errorf(messages.RootColorInvalidFmt, o.color)
		}
		cfg.Output.Color = o.color
	}
	o.cfg = cfg
	color.NoColor = !terminal.ColorEnabled(cfg.Output.Color, isOutputTerminal)
	o.logger = newLogger(stderr, o.debug)
	if path == "" {
		o.logger.Debug("no config file found; using defaults")
	} else {
		o.logger.Debug("config loaded", "path", path)
	}
	return nil
}

// newLogger returns a debug text logger, or a discarding one when debug is off.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
