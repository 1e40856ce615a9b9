package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dtroode/izakaya-server/internal/api/http/router"
	httpServer "github.com/dtroode/izakaya-server/internal/api/http/server"
	"github.com/dtroode/izakaya-server/internal/config"
	"github.com/dtroode/izakaya-server/internal/hotpepper"
	"github.com/dtroode/izakaya-server/internal/logger"
	"github.com/dtroode/izakaya-server/internal/model"
	"github.com/dtroode/izakaya-server/internal/password"
	"github.com/dtroode/izakaya-server/internal/repository/postgres"
	"github.com/dtroode/izakaya-server/internal/server"
	"github.com/dtroode/izakaya-server/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig(".env.local")
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, cfg.Database.MaxConns)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	visitRepo := postgres.NewVisitRepository(db)
	hasher := password.NewHasher(cfg.KDF.Time, cfg.KDF.MemKiB, cfg.KDF.Par, cfg.KDF.MaxConcurrent)

	if cfg.HotPepper.APIKey == "" {
		logger.Warn("HOTPEPPER_API_KEY is not set, restaurant search will fail")
	}
	hotpepperClient := hotpepper.NewClient(cfg.HotPepper.BaseURL, cfg.HotPepper.APIKey, cfg.HotPepper.Timeout)

	accountService := service.NewAccount(userRepo, hasher, logger)
	restaurantService := service.NewRestaurant(hotpepperClient, logger)
	visitService := service.NewVisit(visitRepo, userRepo, logger)

	r := router.New(accountService, restaurantService, visitService, db, cfg.HTTP.CORSAllowedOrigins, logger)
	srv := httpServer.NewHTTPServer(
		r.Register(),
		fmt.Sprintf(":%s", cfg.HTTP.Port),
		cfg.HTTP.ReadTimeout,
		cfg.HTTP.WriteTimeout,
	)

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
