package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"invitepages/config"
	"invitepages/internal/adapters/auth"
	"invitepages/internal/adapters/email"
	"invitepages/internal/adapters/storage"
	delivery "invitepages/internal/delivery/http"
	"invitepages/internal/delivery/http/controllers"
	"invitepages/internal/delivery/http/middleware"
	"invitepages/internal/domain"
	"invitepages/internal/repository/postgres"
	"invitepages/internal/services"
)

const (
	serviceTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
	bcryptCost      = 10
)

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	// Static policy tables must be internally consistent before serving.
	if err := domain.VerifyTierMatrix(); err != nil {
		logger.Error("tier matrix check failed", "err", err)
		os.Exit(1)
	}
	if err := services.VerifySkinRegistry(); err != nil {
		logger.Error("skin registry check failed", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	invitationRepo := postgres.NewInvitationRepository(db)
	rsvpRepo := postgres.NewRSVPRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFrom,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKey,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	mediaStorage := storage.NewS3Storage(storage.S3Config{
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		AccessKeyID:     cfg.S3AccessKey,
		SecretAccessKey: cfg.S3SecretKey,
		PublicURL:       cfg.S3PublicURL,
	})

	issuer, verifier := auth.NewJWTTokens(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(bcryptCost)

	invitationService := services.NewInvitationService(invitationRepo, logger, serviceTimeout)
	rsvpService := services.NewRSVPService(invitationRepo, rsvpRepo, serviceTimeout)
	mediaService := services.NewMediaService(mediaStorage, serviceTimeout)
	adminService := services.NewAdminService(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.AdminPasswordSalt, hasher, issuer, verifier)

	mux := delivery.NewRouter(
		logger,
		adminService,
		controllers.NewInvitationController(logger, invitationService),
		controllers.NewRSVPController(logger, rsvpService),
		controllers.NewAdminController(logger, adminService, mediaService, emailService),
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middleware.LoggingMiddleware(logger, mux),
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
