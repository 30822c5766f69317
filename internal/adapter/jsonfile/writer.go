package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/storefront-go/fourthwall/internal/core/domain"
	"github.com/storefront-go/fourthwall/internal/core/port"
)

const (
	catalogFilename = "products.json"
	cartFilename    = "cart.json"

	fileMode = 0o644
	dirMode  = 0o755
)

var _ port.CatalogSink = (*Writer)(nil)
var _ port.CartSink = (*Writer)(nil)

// Writer emits canonical catalog and cart documents into a directory.
type Writer struct {
	dir string
}

func NewWriter(dir string) Writer {
	return Writer{dir}
}

func (w Writer) WriteCatalog(ctx context.Context, ps []domain.Product) error {
	const op = "Writer.WriteCatalog"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ws := make([]Product, len(ps))
	for i, p := range ps {
		ws[i] = toWireProduct(p)
	}

	if err := w.writeFile(catalogFilename, ws); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (w Writer) WriteCart(ctx context.Context, c domain.Cart) error {
	const op = "Writer.WriteCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := w.writeFile(cartFilename, toWireCart(c)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (w Writer) writeFile(name string, v any) error {
	if err := os.MkdirAll(w.dir, dirMode); err != nil {
		return fmt.Errorf("failed to make out dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, fileMode); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
