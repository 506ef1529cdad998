package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menuboard/internal/auth"
	"menuboard/internal/config"
	"menuboard/internal/logging"
	"menuboard/internal/menu"
	"menuboard/internal/preferences"
	"menuboard/internal/router"

	"github.com/gin-gonic/gin"
)

func main() {

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config: %v", err)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("❌ Config: %v", err)
	}
	logger := logging.New(os.Stdout, level, cfg.Log.Format)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ───────────────────────── MENU ─────────────────────────
	seed, err := menu.LoadSeed(cfg.Menu.Seed)
	if err != nil {
		log.Fatalf("❌ Seed menu: %v", err)
	}

	menuRepo := menu.NewInMemoryRepository(seed)
	menuService := menu.NewService(menuRepo, cfg.Menu.Variant, logger)

	// ───────────────────────── AUTH ─────────────────────────
	tokens, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret, auth.DefaultTokenTTL)
	if err != nil {
		log.Fatalf("❌ Token issuer: %v", err)
	}
	authService := auth.NewService(tokens, logger)

	// ───────────────────────── PREFERENCES ─────────────────────────
	prefs := preferences.NewService(false)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Options{
		Menu:        menuService,
		Auth:        authService,
		Tokens:      tokens,
		Preferences: prefs,
		Logger:      logger,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ───────────────────────── START ─────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("api listening",
			"addr", srv.Addr,
			"env", cfg.Env,
			"variant", cfg.Menu.Variant,
			"items", menuService.Count(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
