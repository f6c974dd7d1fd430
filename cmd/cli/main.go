package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"famtree/internal/config"
	"famtree/internal/seed"
	"famtree/internal/transport/console"
	"famtree/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	repo, err := seed.Load(context.Background(), seed.SampleFamily())
	if err != nil {
		slog.Error("seed load failed", "err", err)
		os.Exit(1)
	}

	uc := usecase.NewFamilyUC(repo)
	app = console.NewHandler(uc, os.Stdout, cfg.NoColor)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
