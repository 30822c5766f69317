package domain

import "time"

type (
	// Money carries the amount as a decimal string, never a float,
	// so downstream consumers do not re-parse binary fractions.
	Money struct {
		Amount       string
		CurrencyCode string
	}

	Image struct {
		URL     string
		AltText string
		Width   int
		Height  int
	}

	PriceRange struct {
		MinVariantPrice Money
		MaxVariantPrice Money
	}

	ProductOption struct {
		ID     string
		Name   string
		Values []string
	}

	SelectedOption struct {
		Name  string
		Value string
	}

	ProductVariant struct {
		ID               string
		Title            string
		AvailableForSale bool
		Images           []Image
		SelectedOptions  []SelectedOption
		Price            Money
	}

	Product struct {
		ID               string
		Handle           string
		Title            string
		Description      string
		DescriptionHTML  string
		Images           []Image
		Variants         []ProductVariant
		PriceRange       PriceRange
		FeaturedImage    Image
		Options          []ProductOption
		AvailableForSale bool
		Tags             []string
		UpdatedAt        time.Time
	}
)
