package model

// Product represents a catalogue product.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// ProductInput is the payload accepted by create and update requests.
// Price and InStock are pointers so that zero and false can be told apart
// from a missing field.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	InStock     *bool    `json:"inStock" validate:"required"`
}

// ToProduct builds a product with the given ID from a validated input.
func (in ProductInput) ToProduct(id string) Product {
	p := Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	return p
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Products []Product `json:"products"`
}

// CategoryStats maps a category to the number of products in it.
type CategoryStats map[string]int
