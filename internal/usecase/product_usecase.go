package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

// ProductUseCase storefront qidiruv va filtrlari
type ProductUseCase interface {
	// Query filtr bo'yicha mahsulotlar
	Query(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)

	// Facets mavjud brend va kategoriyalar (katalog tartibida)
	Facets(ctx context.Context) (entity.Facets, error)

	// GetByID ID bo'yicha mahsulot
	GetByID(ctx context.Context, id string) (*entity.Product, error)

	// GetByCategory kategoriya bo'yicha mahsulotlarni olish
	GetByCategory(ctx context.Context, category string) ([]entity.Product, error)
}

type productUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase yangi ProductUseCase yaratish
func NewProductUseCase(productRepo repository.ProductRepository) ProductUseCase {
	return &productUseCase{
		productRepo: productRepo,
	}
}

// Query qidiruv -> brend/kategoriya/narx filtri -> tartiblash
func (u *productUseCase) Query(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	candidates, err := u.productRepo.Search(ctx, filter.Query)
	if err != nil {
		return nil, err
	}

	brands := toSet(filter.Brands)
	categories := toSet(filter.Categories)

	results := make([]entity.Product, 0, len(candidates))
	for _, p := range candidates {
		if len(brands) > 0 && !brands[p.BrandOrDefault()] {
			continue
		}
		if len(categories) > 0 && !categories[p.Category] {
			continue
		}
		if !withinPrice(p, filter.MinPrice, filter.MaxPrice) {
			continue
		}
		results = append(results, p)
	}

	switch filter.Sort {
	case entity.SortPriceAsc:
		sort.SliceStable(results, func(i, j int) bool {
			return priceOrZero(results[i]) < priceOrZero(results[j])
		})
	case entity.SortPriceDesc:
		sort.SliceStable(results, func(i, j int) bool {
			return priceOrZero(results[i]) > priceOrZero(results[j])
		})
	}

	return results, nil
}

// Facets brend va kategoriyalar ro'yxati
func (u *productUseCase) Facets(ctx context.Context) (entity.Facets, error) {
	products, err := u.productRepo.GetAll(ctx)
	if err != nil {
		return entity.Facets{}, err
	}

	facets := entity.Facets{Brands: []string{}, Categories: []string{}}
	seenBrand := map[string]bool{}
	seenCategory := map[string]bool{}
	for _, p := range products {
		if brand := p.BrandOrDefault(); !seenBrand[brand] {
			seenBrand[brand] = true
			facets.Brands = append(facets.Brands, brand)
		}
		if p.Category != "" && !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			facets.Categories = append(facets.Categories, p.Category)
		}
	}
	return facets, nil
}

// GetByID ID bo'yicha mahsulot
func (u *productUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return u.productRepo.GetByID(ctx, id)
}

// GetByCategory kategoriya bo'yicha mahsulotlarni olish
func (u *productUseCase) GetByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	return u.productRepo.GetByCategory(ctx, category)
}

// ParsePrice "45.000.000₫" -> 45000000; raqam bo'lmasa ok=false
func ParsePrice(price string) (int64, bool) {
	var b strings.Builder
	for _, r := range price {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	value, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// withinPrice narxi o'qilmaydigan mahsulot har qanday chegarada o'tmaydi
func withinPrice(p entity.Product, min, max *int64) bool {
	if min == nil && max == nil {
		return true
	}
	price, ok := ParsePrice(p.Price)
	if !ok {
		return false
	}
	if min != nil && price < *min {
		return false
	}
	if max != nil && price > *max {
		return false
	}
	return true
}

func priceOrZero(p entity.Product) int64 {
	price, _ := ParsePrice(p.Price)
	return price
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			set[v] = true
		}
	}
	return set
}
