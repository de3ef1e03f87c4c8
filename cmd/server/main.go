package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"quizbattle-backend/internal/bot"
	"quizbattle-backend/internal/config"
	"quizbattle-backend/internal/game"
	"quizbattle-backend/internal/httpapi"
	"quizbattle-backend/internal/hub"
)

func main() {
	_ = godotenv.Load() // .env is optional

	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.DevLog {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	rules := game.DefaultRules()
	rules.RoundCooldown = cfg.RoundCooldown

	bots := bot.DefaultConfig()
	bots.MidAccuracy = cfg.MidAccuracy

	ctx := context.Background()
	h := hub.NewHub(ctx, rules, bots, logger)

	// Build the router *with* the hub injected
	handler := httpapi.SetupRoutes(h, logger)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
