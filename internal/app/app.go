package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/storefront-go/fourthwall/config"
	"github.com/storefront-go/fourthwall/internal/adapter/fourthwall"
	"github.com/storefront-go/fourthwall/internal/adapter/jsonfile"
	"github.com/storefront-go/fourthwall/internal/core/port"
	"github.com/storefront-go/fourthwall/internal/core/service"
)

type exporters struct {
	catalog port.CatalogExporter
	cart    port.CartExporter
}

type App struct {
	cfg       config.Config
	exporters exporters
}

func New(cfg config.Config) *App {
	app := &App{cfg: cfg}

	app.initLogger()
	app.initService()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initService() {
	reshaper := fourthwall.NewReshaper()

	catalogReader := jsonfile.NewCatalogReader(app.cfg.Payloads.Catalog, reshaper)
	cartReader := jsonfile.NewCartReader(app.cfg.Payloads.Cart, reshaper)
	writer := jsonfile.NewWriter(app.cfg.OutDir)

	s := service.New(catalogReader, cartReader, writer, writer)
	app.exporters.catalog = s
	app.exporters.cart = s
}

// Run exports the catalog and the cart, in that order.
func (app *App) Run(ctx context.Context) error {
	const op = "App.Run"

	slog.Info("reshape is running")

	if err := app.exporters.catalog.ExportCatalog(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := app.exporters.cart.ExportCart(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	slog.Info("reshape is complete")
	return nil
}
