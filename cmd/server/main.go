package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"game-catalog/internal/auth"
	"game-catalog/internal/config"
	apphttp "game-catalog/internal/http"
	"game-catalog/internal/repository/sqlite"
	"game-catalog/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	accountRepo := sqlite.NewAccountRepository(db)
	gameRepo := sqlite.NewGameRepository(db)

	if err := accountRepo.Init(ctx); err != nil {
		logger.Fatalf("init account repository: %v", err)
	}
	if err := gameRepo.Init(ctx); err != nil {
		logger.Fatalf("init game repository: %v", err)
	}

	tokens, err := auth.NewTokenService(
		cfg.Auth.JWTSecret,
		cfg.Auth.Algorithm,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)
	if err != nil {
		logger.Fatalf("setup token service: %v", err)
	}

	userService := service.NewUserService(accountRepo, auth.NewPasswordHasher(), tokens)
	gameService := service.NewGameService(gameRepo)

	if err := gameService.SeedDefaults(ctx); err != nil {
		logger.Warnf("seed catalog: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(gameService, userService)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
