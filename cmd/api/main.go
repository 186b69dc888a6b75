package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"tokoaing-store/internal/client"
	"tokoaing-store/internal/config"
	"tokoaing-store/internal/jobs"
	"tokoaing-store/internal/repository"
	"tokoaing-store/internal/server"
	"tokoaing-store/internal/service"
	"tokoaing-store/internal/store"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		log.WithError(err).Fatal("failed to parse config")
	}

	setupLogging(&cfg.Log)

	db, err := client.InitSqliteClient(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to init database")
	}

	notifier := store.NewNotifier()

	productRepo := repository.NewProductRepository(db, notifier)
	userRepo := repository.NewUserRepository(db, notifier)
	purchaseRepo := repository.NewPurchaseRepository(db, notifier)
	reviewRepo := repository.NewReviewRepository(db, notifier)
	messageRepo := repository.NewMessageRepository(db, notifier)
	buttonRepo := repository.NewButtonRepository(db, notifier)

	authService := service.NewAdminAuthService(&cfg.Admin)
	catalogService := service.NewCatalogService(productRepo, notifier)
	identityService := service.NewIdentityService(userRepo, notifier)
	purchaseService := service.NewPurchaseService(db, notifier, purchaseRepo, productRepo, userRepo, messageRepo)
	leaderboardService := service.NewLeaderboardService(userRepo, purchaseRepo, notifier)
	reviewService := service.NewReviewService(reviewRepo, notifier)
	messagingService := service.NewMessagingService(messageRepo, userRepo, notifier)
	buttonService := service.NewButtonService(buttonRepo, notifier)

	scheduler := jobs.NewScheduler(messageRepo, cfg.Retention)

	srv := server.NewServer(
		authService,
		catalogService,
		identityService,
		purchaseService,
		leaderboardService,
		reviewService,
		messagingService,
		buttonService,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if err := scheduler.Start(ctx); err != nil {
		log.WithError(err).Fatal("failed to start scheduler")
	}
	defer scheduler.Stop()

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	log.WithField("addr", serverAddr).Info("starting HTTP server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server error")
		}
	}()

	<-ctx.Done()
	log.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.WithError(err).Error("HTTP server shutdown error")
	}
}

func setupLogging(cfg *config.Log) {
	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stdout)

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
