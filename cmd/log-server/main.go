package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pctowa/pctowa-backend/internal/config"
	"github.com/pctowa/pctowa-backend/internal/database"
	"github.com/pctowa/pctowa-backend/internal/handler"
	"github.com/pctowa/pctowa-backend/internal/logger"
	"github.com/pctowa/pctowa-backend/internal/logsink"
	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/router"
	"github.com/pctowa/pctowa-backend/internal/service"
	"github.com/pctowa/pctowa-backend/internal/syslog"
	"github.com/pctowa/pctowa-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.LogServerPort).
		Str("udp_addr", cfg.LogUDPAddr).
		Str("file", cfg.LogFilePath).
		Msg("Starting PCTOWA Log Server")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to Redis ──────────────────────────────────────────────
	// Rate limit counters live in Redis so they survive restarts.
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Open Log Sink ─────────────────────────────────────────────────
	sink, err := logsink.NewSink(cfg.LogFilePath, cfg.LogTailBuffer)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.LogFilePath).Msg("Failed to open log file")
	}
	defer sink.Close()

	// ─── Initialize Services ──────────────────────────────────────────
	verifier := service.NewTokenVerifier(cfg.JWTSecret)
	logService := service.NewLogService(cfg, rdb, sink, log)

	logHandler := handler.NewLogHandler(logService, log)
	healthHandler := handler.NewHealthHandler("log-server", nil, rdb)

	// ─── Start UDP Syslog Listener ─────────────────────────────────────
	udpCtx, udpCancel := context.WithCancel(context.Background())

	udpServer := syslog.NewServer(cfg.LogUDPAddr, func(ctx context.Context, entry *model.LogEntry) {
		// Drops on rate limit are already counted inside the service.
		_ = logService.Ingest(ctx, entry, "udp")
	}, log)
	go func() {
		if err := udpServer.Start(udpCtx); err != nil {
			log.Fatal().Err(err).Msg("UDP syslog listener error")
		}
	}()

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupLogRouter(verifier, logHandler, healthHandler, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.LogServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", srv.Addr).Bool("tls", cfg.TLSEnabled()).Msg("Server listening")
		var err error
		if cfg.TLSEnabled() {
			err = srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	udpCancel()

	log.Info().Msg("Shutdown complete")
}
