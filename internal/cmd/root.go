// Package cmd implements the pokeknower CLI.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pokeknower/pokeknower/internal/config"
	"github.com/pokeknower/pokeknower/internal/observability"
)

var (
	cfgFile string
	verbose bool

	// appCfg is loaded once before any command runs.
	appCfg *config.Config

	// Version info set by the main package.
	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}
)

// SetVersionInfo is called by the main package to set version information.
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

var rootCmd = &cobra.Command{
	Use:   "pokeknower",
	Short: "Pokémon stat search and image classification service",
	Long: `PokeKnower serves a searchable Pokémon stat catalog and predicts
species from uploaded images, falling back to a deterministic
hash-based predictor when no trained model is available.

Use the subcommands to perform specific operations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		observability.InitCLILogger(verbose)

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		appCfg = cfg
		return nil
	},
}

// Execute runs the root command. It is called once from main.
func Execute() error {
	defer observability.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/pokeknower/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")
}
