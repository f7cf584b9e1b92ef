package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pokeknower/pokeknower/internal/core/importer"
	"github.com/pokeknower/pokeknower/internal/core/store"
	"github.com/pokeknower/pokeknower/internal/observability"
)

var importCmd = &cobra.Command{
	Use:   "import <dataset.csv>",
	Short: "Import the Pokémon dataset into the store",
	Long: `Import catalog rows from a CSV dataset. Existing rows with the same
dex number are updated. The header must name at least the number, name
and main_type columns.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := observability.CLILogger
		ctx := cmd.Context()

		st, err := store.Open(ctx, appCfg.Store)
		if err != nil {
			return err
		}
		defer st.Close() // nolint:errcheck

		if err := st.Migrate(ctx); err != nil {
			return err
		}

		im := importer.New(st, logger)
		imported, err := im.ImportFile(ctx, args[0])
		if err != nil {
			return err
		}
		if imported == 0 {
			return errors.New("no rows imported; check the dataset format")
		}

		logger.Info("import complete",
			zap.String("dataset", args[0]),
			zap.Int("rows", imported))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
