package main

import (
	"context"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"printify-automation/internal/common/config"
	"printify-automation/internal/common/logger"
	"printify-automation/internal/printify"
	"printify-automation/internal/publisher"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	zapLog.Info("Starting catalog publisher...")

	cfg, err := config.Load()
	if err != nil {
		// Missing credentials land here before any network call is made.
		zapLog.Error("config load failed", zap.Error(err))
		os.Exit(1)
	}

	log := logger.NewZapAdapter(logger.New(cfg.Logging.Level, cfg.Logging.Format))

	if cfg.Metrics.Address != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Address, nil); err != nil {
				zapLog.Warn("metrics endpoint stopped", zap.Error(err))
			}
		}()
		zapLog.Info("Serving metrics", zap.String("address", cfg.Metrics.Address))
	}

	client := printify.NewClient(
		cfg.Printify.APIKey,
		cfg.Printify.StoreID,
		cfg.Printify.BaseURL,
		cfg.Printify.RequestTimeout(),
	)

	pub := publisher.New(client, cfg.Asset.LogoPath, log)

	_, summary, err := pub.Run(context.Background())
	if err != nil {
		// Upload or blueprint listing failed; nothing could be published.
		zapLog.Fatal("run aborted", zap.Error(err))
	}

	zapLog.Info("Done",
		zap.Int("total", summary.Total),
		zap.Int("published", summary.Published),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
}
