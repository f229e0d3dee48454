package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pctowa/pctowa-backend/internal/authclient"
	"github.com/pctowa/pctowa-backend/internal/config"
	"github.com/pctowa/pctowa-backend/internal/database"
	"github.com/pctowa/pctowa-backend/internal/handler"
	"github.com/pctowa/pctowa-backend/internal/logger"
	"github.com/pctowa/pctowa-backend/internal/repository"
	"github.com/pctowa/pctowa-backend/internal/router"
	"github.com/pctowa/pctowa-backend/internal/service"
	"github.com/pctowa/pctowa-backend/internal/validator"
	"github.com/pctowa/pctowa-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.APIServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting PCTOWA API Server")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	companyRepo := repository.NewCompanyRepository(pool)
	addressRepo := repository.NewAddressRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	tutorRepo := repository.NewTutorRepository(pool)
	shiftRepo := repository.NewShiftRepository(pool)
	catalogRepo := repository.NewCatalogRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	// Signatures are verified locally with the shared secret; the
	// active session is confirmed against Redis on every request.
	verifier := service.NewTokenVerifier(cfg.JWTSecret)
	authService := service.NewAuthService(cfg, rdb, userRepo)
	sessionVerifier := service.NewSessionVerifier(verifier, authService)
	userService := service.NewUserService(userRepo, authService)
	companyService := service.NewCompanyService(companyRepo, addressRepo, contactRepo, shiftRepo)
	addressService := service.NewAddressService(addressRepo)
	contactService := service.NewContactService(contactRepo)
	classService := service.NewClassService(classRepo)
	studentService := service.NewStudentService(studentRepo, shiftRepo)
	tutorService := service.NewTutorService(tutorRepo)
	shiftService := service.NewShiftService(shiftRepo, studentRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	exportService := service.NewExportService(shiftRepo, studentRepo, companyRepo, classRepo)

	authClient := authclient.New(cfg.AuthServerURL)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.APIHandlers{
		AuthProxy: handler.NewAuthProxyHandler(authClient, userService),
		User:      handler.NewUserHandler(userService),
		Company:   handler.NewCompanyHandler(companyService),
		Address:   handler.NewAddressHandler(addressService),
		Contact:   handler.NewContactHandler(contactService),
		Class:     handler.NewClassHandler(classService, exportService),
		Student:   handler.NewStudentHandler(studentService),
		Tutor:     handler.NewTutorHandler(tutorService),
		Shift:     handler.NewShiftHandler(shiftService, exportService),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Health:    handler.NewHealthHandler("api-server", pool, rdb),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	warnAhead := time.Duration(cfg.AgreementWarnDays) * 24 * time.Hour
	agreementWorker := worker.NewAgreementWorker(companyService, warnAhead, log)
	go agreementWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupAPIRouter(sessionVerifier, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.APIServerPort,
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

	workerCancel()

	log.Info().Msg("Shutdown complete")
}
