// Package fourthwall translates Fourthwall API response shapes into the
// canonical storefront model. The rest of the application never sees
// provider-specific field names.
package fourthwall

const (
	StockUnlimited = "UNLIMITED"
	StockLimited   = "LIMITED"
)

type (
	Money struct {
		Value    float64 `json:"value"`
		Currency string  `json:"currency"`
	}

	Image struct {
		ID     string `json:"id"`
		URL    string `json:"url"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	}

	Stock struct {
		Type    string `json:"type"`
		InStock int    `json:"inStock"`
	}

	ColorAttribute struct {
		Name   string `json:"name"`
		Swatch string `json:"swatch"`
	}

	SizeAttribute struct {
		Name string `json:"name"`
	}

	VariantAttributes struct {
		Description string          `json:"description"`
		Color       *ColorAttribute `json:"color,omitempty"`
		Size        *SizeAttribute  `json:"size,omitempty"`
	}

	// ProductRef is the variant's back-reference to its parent product.
	// The provider omits it in some cart responses.
	ProductRef struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
		Name string `json:"name"`
	}

	Variant struct {
		ID         string            `json:"id"`
		Name       string            `json:"name"`
		SKU        string            `json:"sku"`
		UnitPrice  Money             `json:"unitPrice"`
		Images     []Image           `json:"images"`
		Stock      Stock             `json:"stock"`
		Attributes VariantAttributes `json:"attributes"`
		Product    *ProductRef       `json:"product,omitempty"`
	}

	Product struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Slug        string    `json:"slug"`
		Description string    `json:"description"`
		Images      []Image   `json:"images"`
		Variants    []Variant `json:"variants"`
		UpdatedAt   string    `json:"updatedAt"`
	}

	Cart struct {
		ID    string     `json:"id"`
		Items []CartItem `json:"items"`
	}

	CartItem struct {
		Variant  Variant `json:"variant"`
		Quantity int     `json:"quantity"`
	}
)

// Available reports whether the variant can be sold: unlimited stock,
// or limited stock with at least one unit on hand.
func (v Variant) Available() bool {
	return v.Stock.Type == StockUnlimited || v.Stock.InStock > 0
}
