package repository

import "product-api/internal/model"

// Pagination defaults applied when a page or limit is missing or not positive.
const (
	DefaultPage  = 1
	DefaultLimit = 5
)

// Paginate cuts one page out of items. Pages are 1-based; a page past the end
// yields an empty slice while Total still reports the full count.
func Paginate(items []model.Product, page, limit int) model.ProductPage {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	result := model.ProductPage{
		Total:    len(items),
		Page:     page,
		Limit:    limit,
		Products: []model.Product{},
	}

	pages := len(items) / limit
	if len(items)%limit != 0 {
		pages++
	}
	if page > pages {
		return result
	}

	start := (page - 1) * limit
	end := start + min(limit, len(items)-start)
	result.Products = append(result.Products, items[start:end]...)

	return result
}
