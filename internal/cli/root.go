// Package cli implements the textcleaner command line.
package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/askiada/go-textcleaner/internal/config"
	"github.com/askiada/go-textcleaner/internal/logger"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCmd returns the textcleaner command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "textcleaner",
		Short: "Normalise text with an ordered list of cleaning steps",
		Long: `textcleaner applies named cleaning steps (HTML tag removal, entity decoding, accent folding,
punctuation removal, ...) to text, in the order given.

Steps are chosen with --steps or through a named profile from the configuration file.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a TOML configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format (console, json)")

	cmd.AddCommand(
		newCleanCmd(opts),
		newStepsCmd(),
		newProfilesCmd(opts),
		newConfigCmd(opts),
	)

	return cmd
}

// Execute runs the command line with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// loadConfig returns the configuration with the persistent flags applied on top.
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		cfg, err = config.Load(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
	}

	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFormat != "" {
		cfg.LogFormat = o.logFormat
	}

	return cfg, cfg.Validate()
}

func newLogger(cmd *cobra.Command, cfg config.Config) zerolog.Logger {
	w := cmd.ErrOrStderr()

	return logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Writer:  w,
		NoColor: !logger.IsTerminal(w),
	})
}
