package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/5ht2/heartbeat/src/config"
	"github.com/5ht2/heartbeat/src/output"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "heartbeat",
	Short: "Heartbeat badge toolkit",
	Long:  "Heartbeat renders status badges from beat stats and mints snowflake IDs.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

		// Skip config loading for commands that don't need it.
		if cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		warnings, err := config.Validate(cfg)
		for _, w := range warnings {
			output.Warnf(cmd.ErrOrStderr(), output.UseColor(), "%s", w)
		}
		if err != nil {
			return err
		}
		slog.Debug("config loaded", "path", cfgFile, "badges", len(cfg.Badges.Items))
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file, .yml or .toml (default: heartbeat.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
