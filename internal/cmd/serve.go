package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pokeknower/pokeknower/internal/core"
	"github.com/pokeknower/pokeknower/internal/core/predict"
	"github.com/pokeknower/pokeknower/internal/core/store"
	"github.com/pokeknower/pokeknower/internal/observability"
	"github.com/pokeknower/pokeknower/internal/server"
	"github.com/pokeknower/pokeknower/internal/server/handlers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server with graceful shutdown support.

The catalog is loaded from the store once at startup and held in memory
for the lifetime of the process. If the classifier model is enabled but
fails to load, the server still starts and predictions use the
deterministic fallback.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		observability.InitServerLogger("pokeknower", appCfg.Logging.Level)
		logger := observability.ServerLogger

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

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
		logger.Info("catalog loaded", zap.Int("species", catalog.Len()))
		if catalog.Len() == 0 {
			logger.Warn("catalog is empty; run 'pokeknower import' to load the dataset")
		}

		types, err := core.LoadTypeInfo()
		if err != nil {
			return err
		}

		classifier := loadClassifier(logger)
		if c, ok := classifier.(*predict.ONNXClassifier); ok && c != nil {
			defer c.Close()
		}

		predictor := predict.NewService(catalog, classifier, logger)

		api := handlers.NewAPI(catalog, predictor, st, types, logger)
		api.DefaultPageSize = appCfg.Search.DefaultPageSize
		api.MaxPageSize = appCfg.Search.MaxPageSize
		api.MaxUploadBytes = appCfg.Server.MaxUploadBytes

		health := handlers.NewHealthManager(versionInfo.Version)
		health.RegisterChecker("store", handlers.HealthCheckerFunc(st.Ping))
		health.RegisterChecker("catalog", handlers.HealthCheckerFunc(func(ctx context.Context) error {
			if catalog.Len() == 0 {
				return errors.New("catalog is empty")
			}
			return nil
		}))

		handlers.SetVersionInfo(versionInfo.Version, versionInfo.Commit, versionInfo.BuildDate)

		srv := server.New(appCfg.Server, api, health, logger)

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), appCfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

// loadClassifier builds the ONNX classifier when the model is enabled. Load
// failures are logged and leave the service in fallback mode.
func loadClassifier(logger *zap.Logger) predict.Classifier {
	if !appCfg.Model.Enabled {
		logger.Info("classifier model disabled; predictions use the deterministic fallback")
		return nil
	}

	classifier, err := predict.NewONNXClassifier(appCfg.Model.Path, appCfg.Model.MetadataPath)
	if err != nil {
		logger.Warn("classifier model unavailable; predictions use the deterministic fallback",
			zap.String("model", appCfg.Model.Path),
			zap.Error(err))
		return nil
	}

	logger.Info("classifier model loaded", zap.String("model", appCfg.Model.Path))
	return classifier
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
