package domain

type (
	// CartCost keeps total and subtotal as separate fields even though the
	// provider has no discount or tax model: both always carry the same value.
	CartCost struct {
		TotalAmount    Money
		SubtotalAmount Money
	}

	CartLineCost struct {
		TotalAmount Money
	}

	// CartProduct is the minimal product summary attached to a cart line.
	CartProduct struct {
		ID            string
		Handle        string
		Title         string
		FeaturedImage Image
	}

	Merchandise struct {
		ID              string
		Title           string
		SelectedOptions []SelectedOption
		Product         CartProduct
	}

	CartItem struct {
		ID          string
		Quantity    int
		Cost        CartLineCost
		Merchandise Merchandise
	}

	Cart struct {
		ID            string
		Lines         []CartItem
		Cost          CartCost
		Currency      string
		TotalQuantity int
	}
)
