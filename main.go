package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"unicorn-dashboard/api"
	"unicorn-dashboard/config"
	"unicorn-dashboard/loader"
	"unicorn-dashboard/search"
)

func main() {
	cfgPath := os.Getenv("DASHBOARD_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Money values render as plain numbers in the JSON API.
	decimal.MarshalJSONWithoutQuotes = true

	// Load the dataset once; the table is read-only from here on.
	result, err := loader.Load(cfg.DataFile, logger)
	if err != nil {
		logger.Fatal("failed to load dataset", zap.Error(err))
	}

	var engine search.Engine
	bleveEngine, err := search.NewBleveEngine(cfg.IndexPath, result.Companies, logger)
	if err != nil {
		logger.Warn("search index unavailable, falling back to linear scan", zap.Error(err))
		engine = search.NewMemoryEngine(result.Companies)
	} else {
		defer bleveEngine.Close()
		engine = bleveEngine
	}

	handler := api.NewHandler(result.Companies, result.Skipped, engine, logger)
	mux := http.NewServeMux()
	handler.Register(mux)

	// Serve the static frontend with no-cache headers for development.
	fs := http.FileServer(http.Dir(cfg.StaticDir))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		fs.ServeHTTP(w, r)
	})

	logger.Info("dashboard listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.Logging) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}
	return zcfg.Build()
}
