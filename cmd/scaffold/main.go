// Package main provides the scaffold CLI: country reference lookups and
// demo entity construction against the scaffolding library.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scaffold/pkg/scaffold"
)

// Global flag values.
var (
	flagConfigDir string
	flagLogLevel  string
)

// cfg holds the configuration loaded by PersistentPreRunE so all
// subcommands can use it.
var cfg *cliConfig

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "scaffold",
	Short:   "Scaffold builds capability-backed entity records",
	Version: scaffold.Version,
	Long: `Scaffold is a library and CLI for entity records with generated
lifecycle fields and opt-in capabilities (addresses, email addresses,
metadata, notes, phone numbers, tags). The CLI looks up the packaged
country reference table and constructs demo entities.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(flagConfigDir)
		if err != nil {
			return err
		}
		setupLogging(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(entityCmd)
}

// setupLogging installs a console writer at the configured level. The
// --log-level flag wins over the config file.
func setupLogging(cfg *cliConfig) {
	level := cfg.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(parsed)
}
