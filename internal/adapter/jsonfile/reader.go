// Package jsonfile reads captured Fourthwall API payloads from disk and
// writes canonical catalog and cart documents. It backs the reshape CLI
// and keeps the adapter runnable against fixture payloads without any
// network access.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/storefront-go/fourthwall/internal/adapter/fourthwall"
	"github.com/storefront-go/fourthwall/internal/core/domain"
	"github.com/storefront-go/fourthwall/internal/core/port"
)

var _ port.CatalogSource = (*CatalogReader)(nil)
var _ port.CartSource = (*CartReader)(nil)

// CatalogReader decodes a provider product-list payload and reshapes it.
type CatalogReader struct {
	path     string
	reshaper fourthwall.Reshaper
}

func NewCatalogReader(path string, reshaper fourthwall.Reshaper) CatalogReader {
	return CatalogReader{path, reshaper}
}

func (r CatalogReader) Catalog(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogReader.Catalog"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Null entries in the payload array decode to nil pointers and are
	// dropped by the reshaper.
	var ps []*fourthwall.Product
	if err := decodeFile(r.path, &ps); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.reshaper.Products(ps), nil
}

// CartReader decodes a provider cart payload and reshapes it.
type CartReader struct {
	path     string
	reshaper fourthwall.Reshaper
}

func NewCartReader(path string, reshaper fourthwall.Reshaper) CartReader {
	return CartReader{path, reshaper}
}

func (r CartReader) Cart(ctx context.Context) (domain.Cart, error) {
	const op = "CartReader.Cart"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	var c fourthwall.Cart
	if err := decodeFile(r.path, &c); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	return r.reshaper.Cart(c), nil
}

func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open payload: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close payload file", "path", path, "err", err)
		}
	}()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return nil
}
