package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/storefront-go/fourthwall/internal/core/port"
)

var _ port.CatalogExporter = (*Service)(nil)
var _ port.CartExporter = (*Service)(nil)

// Service moves provider-shaped data through the reshaping sources into
// canonical sinks. It owns no state of its own.
type Service struct {
	catalogSource port.CatalogSource
	cartSource    port.CartSource
	catalogSink   port.CatalogSink
	cartSink      port.CartSink
}

func New(
	catalogSource port.CatalogSource,
	cartSource port.CartSource,
	catalogSink port.CatalogSink,
	cartSink port.CartSink,
) Service {
	return Service{
		catalogSource,
		cartSource,
		catalogSink,
		cartSink,
	}
}

func (s Service) ExportCatalog(ctx context.Context) error {
	const op = "Service.ExportCatalog"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.catalogSource.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.catalogSink.WriteCatalog(ctx, ps); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("catalog exported", "nProducts", len(ps))
	return nil
}

func (s Service) ExportCart(ctx context.Context) error {
	const op = "Service.ExportCart"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.cartSource.Cart(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cartSink.WriteCart(ctx, c); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("cart exported", "totalQuantity", c.TotalQuantity)
	return nil
}
