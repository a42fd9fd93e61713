package entity

// SortOrder narx bo'yicha tartiblash
type SortOrder string

const (
	SortNone      SortOrder = "none"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// ProductFilter storefront filtr holati
type ProductFilter struct {
	Query      string
	Brands     []string // bo'sh = hammasi
	Categories []string // bo'sh = hammasi
	MinPrice   *int64
	MaxPrice   *int64
	Sort       SortOrder
}

// Facets filtr uchun mavjud qiymatlar
type Facets struct {
	Brands     []string `json:"brands"`
	Categories []string `json:"categories"`
}
