package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/aayush1982/universal-timeline-viewer/internal/chart"
	"github.com/aayush1982/universal-timeline-viewer/internal/config"
	"github.com/aayush1982/universal-timeline-viewer/internal/handler"
	"github.com/aayush1982/universal-timeline-viewer/internal/httpserver"
	"github.com/aayush1982/universal-timeline-viewer/internal/model"
	"github.com/aayush1982/universal-timeline-viewer/internal/service/dashboard"
	"github.com/aayush1982/universal-timeline-viewer/internal/session"
	"github.com/aayush1982/universal-timeline-viewer/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger := logger.NewLogger(cfg.Development)
	defer logger.Sync()

	// Session store: Redis when configured, in-process memory otherwise
	var (
		store   session.Store
		backend httpserver.Pinger
	)
	if cfg.Redis.Addr != "" {
		redisStore, err := session.NewRedisStore(
			context.Background(),
			cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			cfg.Session.TTL(), logger,
		)
		if err != nil {
			logger.Fatal("Redis session store init failed", zap.Error(err))
		}
		store = redisStore
		backend = redisStore
		logger.Info("using Redis session store", zap.String("addr", cfg.Redis.Addr))
	} else {
		store = session.NewMemoryStore(cfg.Session.TTL())
		logger.Info("using in-memory session store")
	}
	defer store.Close()

	// Default view options for fresh sessions
	defaults := model.DefaultViewOptions()
	defaults.Theme = cfg.View.DefaultTheme
	if g, err := model.ParseGranularity(cfg.View.DefaultGranularity); err == nil {
		defaults.Granularity = g
	}

	raster := chart.NewRasterizer(cfg.Export.PNGEnabled)
	if !raster.Available() {
		logger.Warn("PNG chart export disabled by configuration")
	}

	svc := dashboard.NewService(store, raster, defaults, logger)

	router := httpserver.NewRouter(
		handler.NewDashboardHandler(svc, logger),
		handler.NewPageHandler(),
		backend,
		cfg.Server.MaxUploadBytes,
	)

	logger.Info("Starting timeline dashboard", zap.String("port", cfg.Server.Port))
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server start failed: %v", err)
	}
}
