// @title DevEvents API
// @version 1.0
// @description Event listing, registration and ticket check-in.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by the identity provider, as "Bearer <token>".
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"devevents/config"
	_ "devevents/docs"
	"devevents/internal/adapters/auth"
	"devevents/internal/adapters/email"
	"devevents/internal/adapters/metrics"
	"devevents/internal/adapters/ticket"
	httpdelivery "devevents/internal/delivery/http"
	"devevents/internal/delivery/http/controllers"
	"devevents/internal/repository/postgres"
	"devevents/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := config.NewLogger()
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	logger.Info("database connected")

	if err := postgres.MigrateUp(ctx, db, logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	verifier, err := auth.NewJWTVerifier(auth.VerifierConfig{
		Secret:       cfg.JWTSecret,
		PublicKeyPEM: cfg.JWTPublicKey,
		Issuer:       cfg.JWTIssuer,
	})
	if err != nil {
		return fmt.Errorf("token verifier: %w", err)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}

	appMetrics := metrics.New()

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	eventService := services.NewEventService(eventRepo, cfg.ContextTimeout)
	registrationService := services.NewRegistrationService(
		eventRepo,
		registrationRepo,
		emailService,
		ticket.NewQREncoder(ticket.DefaultQRSize),
		appMetrics,
		logger,
		cfg.ContextTimeout,
	)

	router := httpdelivery.NewRouter(httpdelivery.RouterConfig{
		Logger:                 logger,
		Verifier:               verifier,
		EventController:        controllers.NewEventController(logger, eventService),
		RegistrationController: controllers.NewRegistrationController(logger, registrationService),
		DB:                     db,
		Metrics:                appMetrics,
		AllowedOrigins:         cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
