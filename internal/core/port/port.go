package port

import (
	"context"

	"github.com/storefront-go/fourthwall/internal/core/domain"
)

type CatalogSource interface {
	Catalog(context.Context) ([]domain.Product, error)
}

type CartSource interface {
	Cart(context.Context) (domain.Cart, error)
}

type CatalogSink interface {
	WriteCatalog(context.Context, []domain.Product) error
}

type CartSink interface {
	WriteCart(context.Context, domain.Cart) error
}

type CatalogExporter interface {
	ExportCatalog(context.Context) error
}

type CartExporter interface {
	ExportCart(context.Context) error
}
