package main

import (
	"log/slog"
	"os"

	"github.com/storefront-go/fourthwall/config"
	"github.com/storefront-go/fourthwall/internal/app"
	"github.com/storefront-go/fourthwall/pkg/sigctx"
)

func main() {
	sigCtx, cancel := sigctx.NotifyContext()
	defer cancel()

	cfg := config.Load()
	cfg.Print()

	reshapeApp := app.New(cfg)

	if err := reshapeApp.Run(sigCtx); err != nil {
		slog.Error("reshape failed", "err", err)
		os.Exit(1)
	}
}
