package jsonfile

import (
	"time"

	"github.com/storefront-go/fourthwall/internal/core/domain"
)

// Wire shapes for the canonical output documents. The domain types carry no
// serialization tags; the adapter owns the JSON field names.
type (
	Money struct {
		Amount       string `json:"amount"`
		CurrencyCode string `json:"currencyCode"`
	}

	Image struct {
		URL     string `json:"url"`
		AltText string `json:"altText"`
		Width   int    `json:"width"`
		Height  int    `json:"height"`
	}

	PriceRange struct {
		MinVariantPrice Money `json:"minVariantPrice"`
		MaxVariantPrice Money `json:"maxVariantPrice"`
	}

	ProductOption struct {
		ID     string   `json:"id"`
		Name   string   `json:"name"`
		Values []string `json:"values"`
	}

	SelectedOption struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}

	ProductVariant struct {
		ID               string           `json:"id"`
		Title            string           `json:"title"`
		AvailableForSale bool             `json:"availableForSale"`
		Images           []Image          `json:"images"`
		SelectedOptions  []SelectedOption `json:"selectedOptions"`
		Price            Money            `json:"price"`
	}

	Product struct {
		ID               string           `json:"id"`
		Handle           string           `json:"handle"`
		Title            string           `json:"title"`
		Description      string           `json:"description"`
		DescriptionHTML  string           `json:"descriptionHtml"`
		Images           []Image          `json:"images"`
		Variants         []ProductVariant `json:"variants"`
		PriceRange       PriceRange       `json:"priceRange"`
		FeaturedImage    Image            `json:"featuredImage"`
		Options          []ProductOption  `json:"options"`
		AvailableForSale bool             `json:"availableForSale"`
		Tags             []string         `json:"tags"`
		UpdatedAt        time.Time        `json:"updatedAt"`
	}

	CartLineCost struct {
		TotalAmount Money `json:"totalAmount"`
	}

	CartCost struct {
		TotalAmount    Money `json:"totalAmount"`
		SubtotalAmount Money `json:"subtotalAmount"`
	}

	CartProduct struct {
		ID            string `json:"id"`
		Handle        string `json:"handle"`
		Title         string `json:"title"`
		FeaturedImage Image  `json:"featuredImage"`
	}

	Merchandise struct {
		ID              string           `json:"id"`
		Title           string           `json:"title"`
		SelectedOptions []SelectedOption `json:"selectedOptions"`
		Product         CartProduct      `json:"product"`
	}

	CartItem struct {
		ID          string       `json:"id"`
		Quantity    int          `json:"quantity"`
		Cost        CartLineCost `json:"cost"`
		Merchandise Merchandise  `json:"merchandise"`
	}

	Cart struct {
		ID            string     `json:"id"`
		Lines         []CartItem `json:"lines"`
		Cost          CartCost   `json:"cost"`
		Currency      string     `json:"currency"`
		TotalQuantity int        `json:"totalQuantity"`
	}
)

func toWireMoney(m domain.Money) Money {
	return Money{Amount: m.Amount, CurrencyCode: m.CurrencyCode}
}

func toWireImage(img domain.Image) Image {
	return Image{
		URL:     img.URL,
		AltText: img.AltText,
		Width:   img.Width,
		Height:  img.Height,
	}
}

func toWireImages(imgs []domain.Image) []Image {
	ws := make([]Image, len(imgs))
	for i, img := range imgs {
		ws[i] = toWireImage(img)
	}
	return ws
}

func toWireSelectedOptions(opts []domain.SelectedOption) []SelectedOption {
	ws := make([]SelectedOption, len(opts))
	for i, o := range opts {
		ws[i] = SelectedOption{Name: o.Name, Value: o.Value}
	}
	return ws
}

func toWireProduct(p domain.Product) Product {
	variants := make([]ProductVariant, len(p.Variants))
	for i, v := range p.Variants {
		variants[i] = ProductVariant{
			ID:               v.ID,
			Title:            v.Title,
			AvailableForSale: v.AvailableForSale,
			Images:           toWireImages(v.Images),
			SelectedOptions:  toWireSelectedOptions(v.SelectedOptions),
			Price:            toWireMoney(v.Price),
		}
	}

	options := make([]ProductOption, len(p.Options))
	for i, o := range p.Options {
		options[i] = ProductOption{ID: o.ID, Name: o.Name, Values: o.Values}
	}

	return Product{
		ID:              p.ID,
		Handle:          p.Handle,
		Title:           p.Title,
		Description:     p.Description,
		DescriptionHTML: p.DescriptionHTML,
		Images:          toWireImages(p.Images),
		Variants:        variants,
		PriceRange: PriceRange{
			MinVariantPrice: toWireMoney(p.PriceRange.MinVariantPrice),
			MaxVariantPrice: toWireMoney(p.PriceRange.MaxVariantPrice),
		},
		FeaturedImage:    toWireImage(p.FeaturedImage),
		Options:          options,
		AvailableForSale: p.AvailableForSale,
		Tags:             p.Tags,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toWireCart(c domain.Cart) Cart {
	lines := make([]CartItem, len(c.Lines))
	for i, line := range c.Lines {
		lines[i] = CartItem{
			ID:       line.ID,
			Quantity: line.Quantity,
			Cost: CartLineCost{
				TotalAmount: toWireMoney(line.Cost.TotalAmount),
			},
			Merchandise: Merchandise{
				ID:              line.Merchandise.ID,
				Title:           line.Merchandise.Title,
				SelectedOptions: toWireSelectedOptions(line.Merchandise.SelectedOptions),
				Product: CartProduct{
					ID:            line.Merchandise.Product.ID,
					Handle:        line.Merchandise.Product.Handle,
					Title:         line.Merchandise.Product.Title,
					FeaturedImage: toWireImage(line.Merchandise.Product.FeaturedImage),
				},
			},
		}
	}

	return Cart{
		ID:    c.ID,
		Lines: lines,
		Cost: CartCost{
			TotalAmount:    toWireMoney(c.Cost.TotalAmount),
			SubtotalAmount: toWireMoney(c.Cost.SubtotalAmount),
		},
		Currency:      c.Currency,
		TotalQuantity: c.TotalQuantity,
	}
}
