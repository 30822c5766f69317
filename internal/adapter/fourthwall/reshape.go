package fourthwall

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront-go/fourthwall/internal/core/domain"
)

const defaultCurrency = "USD"

// fallbackLabel substitutes the image filename when the URL has no
// parseable path segment.
const fallbackLabel = "image"

// defaultImage is the featured-image placeholder for products without images.
var defaultImage = domain.Image{}

// Reshaper converts provider-shaped records into canonical storefront values.
// It holds no state besides the clock and is safe for concurrent use.
type Reshaper struct {
	now func() time.Time
}

type Opt func(*Reshaper)

// WithClock overrides the timestamp source used for Product.UpdatedAt.
func WithClock(now func() time.Time) Opt {
	return func(r *Reshaper) {
		r.now = now
	}
}

func NewReshaper(opts ...Opt) Reshaper {
	r := Reshaper{
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Product reshapes a single provider product. The second return value is
// false for a nil input; a nil product is an absence, not an error.
func (r Reshaper) Product(p *Product) (domain.Product, bool) {
	if p == nil {
		return domain.Product{}, false
	}

	variants := make([]domain.ProductVariant, len(p.Variants))
	for i, v := range p.Variants {
		variants[i] = reshapeVariant(v)
	}

	images := reshapeImages(p.Images, p.Name)

	featured := defaultImage
	if len(images) > 0 {
		featured = images[0]
	}

	return domain.Product{
		ID:              p.ID,
		Handle:          p.Slug,
		Title:           p.Name,
		Description:     p.Description,
		DescriptionHTML: p.Description,
		Images:          images,
		Variants:        variants,
		PriceRange:      priceRange(p.Variants),
		FeaturedImage:   featured,
		Options: []domain.ProductOption{
			{ID: "color", Name: "Color", Values: optionValues(p.Variants, colorName)},
			{ID: "size", Name: "Size", Values: optionValues(p.Variants, sizeName)},
		},
		AvailableForSale: anyAvailable(variants),
		Tags:             []string{},
		UpdatedAt:        r.now(),
	}, true
}

// Products reshapes a list of provider products, preserving order.
// Nil entries are skipped silently: absence is part of the contract.
func (r Reshaper) Products(ps []*Product) []domain.Product {
	reshaped := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		dp, ok := r.Product(p)
		if !ok {
			continue
		}
		reshaped = append(reshaped, dp)
	}
	return reshaped
}

func reshapeVariant(v Variant) domain.ProductVariant {
	return domain.ProductVariant{
		ID:               v.ID,
		Title:            v.Name,
		AvailableForSale: v.Available(),
		Images:           reshapeImages(v.Images, v.Name),
		SelectedOptions: []domain.SelectedOption{
			{Name: "Size", Value: sizeName(v)},
			{Name: "Color", Value: colorName(v)},
		},
		Price: reshapeMoney(v.UnitPrice),
	}
}

func reshapeMoney(m Money) domain.Money {
	return domain.Money{
		Amount:       decimal.NewFromFloat(m.Value).String(),
		CurrencyCode: m.Currency,
	}
}

func reshapeImages(imgs []Image, title string) []domain.Image {
	reshaped := make([]domain.Image, len(imgs))
	for i, img := range imgs {
		reshaped[i] = domain.Image{
			URL:     img.URL,
			AltText: title + " - " + filenameLabel(img.URL),
			Width:   img.Width,
			Height:  img.Height,
		}
	}
	return reshaped
}

// filenameLabel derives a human-readable label from the image URL: the path
// segment after the last '/' with its extension stripped.
func filenameLabel(url string) string {
	slash := strings.LastIndexByte(url, '/')
	if slash < 0 {
		return fallbackLabel
	}

	name := url[slash+1:]
	dot := strings.LastIndexByte(name, '.')
	if dot < 0 {
		return fallbackLabel
	}
	return name[:dot]
}

// priceRange aggregates min/max over the provider unit-price values.
// A product without variants gets a zero range in the default currency.
func priceRange(vs []Variant) domain.PriceRange {
	if len(vs) == 0 {
		zero := domain.Money{Amount: "0", CurrencyCode: defaultCurrency}
		return domain.PriceRange{MinVariantPrice: zero, MaxVariantPrice: zero}
	}

	currency := vs[0].UnitPrice.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	lo := decimal.NewFromFloat(vs[0].UnitPrice.Value)
	hi := lo
	for _, v := range vs[1:] {
		p := decimal.NewFromFloat(v.UnitPrice.Value)
		if p.LessThan(lo) {
			lo = p
		}
		if p.GreaterThan(hi) {
			hi = p
		}
	}

	return domain.PriceRange{
		MinVariantPrice: domain.Money{Amount: lo.String(), CurrencyCode: currency},
		MaxVariantPrice: domain.Money{Amount: hi.String(), CurrencyCode: currency},
	}
}

// optionValues collects the deduplicated non-empty attribute values across
// variants, keeping first-seen order.
func optionValues(vs []Variant, pick func(Variant) string) []string {
	seen := make(map[string]struct{}, len(vs))
	values := make([]string, 0, len(vs))
	for _, v := range vs {
		name := pick(v)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		values = append(values, name)
	}
	return values
}

func colorName(v Variant) string {
	if v.Attributes.Color == nil {
		return ""
	}
	return v.Attributes.Color.Name
}

func sizeName(v Variant) string {
	if v.Attributes.Size == nil {
		return ""
	}
	return v.Attributes.Size.Name
}

func anyAvailable(vs []domain.ProductVariant) bool {
	for _, v := range vs {
		if v.AvailableForSale {
			return true
		}
	}
	return false
}
