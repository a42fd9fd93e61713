package entity

import "strings"

// DefaultBrand brendi ko'rsatilmagan mahsulotlar uchun
const DefaultBrand = "Other"

// Product mahsulot entity
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         string   `json:"price"`                   // ko'rsatish uchun formatlangan, masalan "45.000.000₫"
	OriginalPrice string   `json:"originalPrice,omitempty"` // bo'sh = berilmagan
	Description   string   `json:"description"`
	Specs         []string `json:"specs"`
	Images        []string `json:"images"` // birinchisi - muqova
	AffiliateLink string   `json:"affiliateLink"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand,omitempty"`
}

// DedupKey katalogdagi identifikatsiya kaliti (kichik harfli nom)
func (p Product) DedupKey() string {
	return strings.ToLower(p.Name)
}

// BrandOrDefault bo'sh brend o'rniga "Other"
func (p Product) BrandOrDefault() string {
	if p.Brand == "" {
		return DefaultBrand
	}
	return p.Brand
}
