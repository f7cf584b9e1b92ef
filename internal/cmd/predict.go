package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pokeknower/pokeknower/internal/core/predict"
	"github.com/pokeknower/pokeknower/internal/core/store"
	"github.com/pokeknower/pokeknower/internal/observability"
	"github.com/pokeknower/pokeknower/internal/output"
)

var predictCmd = &cobra.Command{
	Use:   "predict <image>",
	Short: "Predict a species from a local image file",
	Long: `Classify one image file. When the trained model is disabled or fails
to load, the deterministic fallback predictor answers instead, so this
command always produces a result for a readable image.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := observability.CLILogger
		ctx := cmd.Context()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}

		st, err := store.Open(ctx, appCfg.Store)
		if err != nil {
			return err
		}
		defer st.Close() // nolint:errcheck

		if err := st.Migrate(ctx); err != nil {
			return err
		}

		catalog, err := st.LoadCatalog(ctx)
		if err != nil {
			return err
		}
		if catalog.Len() == 0 {
			return fmt.Errorf("catalog is empty; run 'pokeknower import' first")
		}

		classifier := loadClassifier(logger)
		if c, ok := classifier.(*predict.ONNXClassifier); ok && c != nil {
			defer c.Close()
		}

		predictor := predict.NewService(catalog, classifier, logger)
		result, err := predictor.Predict(ctx, data)
		if err != nil {
			return err
		}

		logger.Debug("prediction complete",
			zap.String("label", result.Label),
			zap.String("source", result.Source))

		formatter := &output.TableFormatter{}
		fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPrediction(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)
}
