package fourthwall

import (
	"github.com/shopspring/decimal"
	"github.com/storefront-go/fourthwall/internal/core/domain"
)

// PlaceholderRef fills merchandise fields the provider response left blank,
// such as the parent-product back-reference on cart variants. Downstream
// code compares against this constant instead of a magic string.
const PlaceholderRef = "TT"

const (
	placeholderImageWidth  = 100
	placeholderImageHeight = 100
)

// Cart reshapes a provider cart into canonical lines and totals.
// Total and subtotal are always equal: the provider has no separate
// discount, tax or shipping model.
func (r Reshaper) Cart(c Cart) domain.Cart {
	currency := defaultCurrency
	if len(c.Items) > 0 && c.Items[0].Variant.UnitPrice.Currency != "" {
		currency = c.Items[0].Variant.UnitPrice.Currency
	}

	total := decimal.Zero
	quantity := 0
	lines := make([]domain.CartItem, len(c.Items))
	for i, item := range c.Items {
		lines[i] = reshapeCartItem(item)
		total = total.Add(lineTotal(item))
		quantity += item.Quantity
	}

	amount := domain.Money{Amount: total.String(), CurrencyCode: currency}

	return domain.Cart{
		ID:    c.ID,
		Lines: lines,
		Cost: domain.CartCost{
			TotalAmount:    amount,
			SubtotalAmount: amount,
		},
		Currency:      currency,
		TotalQuantity: quantity,
	}
}

func reshapeCartItem(item CartItem) domain.CartItem {
	v := item.Variant

	return domain.CartItem{
		ID:       v.ID,
		Quantity: item.Quantity,
		Cost: domain.CartLineCost{
			TotalAmount: domain.Money{
				Amount:       lineTotal(item).String(),
				CurrencyCode: v.UnitPrice.Currency,
			},
		},
		Merchandise: domain.Merchandise{
			ID:    v.ID,
			Title: v.Name,
			// Variant attributes are not carried onto cart merchandise.
			SelectedOptions: []domain.SelectedOption{},
			Product:         merchandiseProduct(v),
		},
	}
}

func lineTotal(item CartItem) decimal.Decimal {
	unit := decimal.NewFromFloat(item.Variant.UnitPrice.Value)
	return unit.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// merchandiseProduct builds the minimal product summary for a cart line,
// substituting placeholders wherever the back-reference or image is absent.
func merchandiseProduct(v Variant) domain.CartProduct {
	var ref ProductRef
	if v.Product != nil {
		ref = *v.Product
	}

	url := ""
	width, height := 0, 0
	if len(v.Images) > 0 {
		url = v.Images[0].URL
		width = v.Images[0].Width
		height = v.Images[0].Height
	}
	if width == 0 {
		width = placeholderImageWidth
	}
	if height == 0 {
		height = placeholderImageHeight
	}

	return domain.CartProduct{
		ID:     orPlaceholder(ref.ID),
		Handle: orPlaceholder(ref.Slug),
		Title:  orPlaceholder(ref.Name),
		FeaturedImage: domain.Image{
			URL:     orPlaceholder(url),
			AltText: orPlaceholder(ref.Name),
			Width:   width,
			Height:  height,
		},
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return PlaceholderRef
	}
	return s
}
