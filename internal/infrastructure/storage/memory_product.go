package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

type memoryProductRepository struct {
	mu       sync.RWMutex
	products []entity.Product // katalog tartibi saqlanadi
	byID     map[string]int
}

// NewMemoryProductRepository in-memory product repository yaratish
func NewMemoryProductRepository() repository.ProductRepository {
	return &memoryProductRepository{
		products: []entity.Product{},
		byID:     make(map[string]int),
	}
}

// GetByID ID bo'yicha mahsulotni olish
func (m *memoryProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx, exists := m.byID[id]
	if !exists {
		return nil, fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
	}
	product := m.products[idx]
	return &product, nil
}

// Search mahsulot qidirish; natija katalog tartibida
func (m *memoryProductRepository) Search(ctx context.Context, query string) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return cloneProducts(m.products), nil
	}

	compactQuery := normalizeAlphaNum(query)
	tokens := normalizeTokens(queryTokens(query))

	results := []entity.Product{}
	for _, product := range m.products {
		if matchesProduct(product, query, compactQuery, tokens) {
			results = append(results, product)
		}
	}
	return results, nil
}

// matchesProduct nom, kategoriya, tavsif va specs bo'yicha moslik
func matchesProduct(product entity.Product, query, compactQuery string, tokens []string) bool {
	nameLower := strings.ToLower(product.Name)
	catLower := strings.ToLower(product.Category)
	descLower := strings.ToLower(product.Description)

	// Name, category, description da qidirish
	if strings.Contains(nameLower, query) ||
		strings.Contains(catLower, query) ||
		strings.Contains(descLower, query) {
		return true
	}

	// "macbookair" -> "MacBook Air"
	nameCompact := normalizeAlphaNum(product.Name)
	if compactQuery != "" && strings.Contains(nameCompact, compactQuery) {
		return true
	}

	// Ko'p so'zli so'rov: har bir token biror joyda bo'lishi kerak
	if len(tokens) > 1 && matchAllTokens(tokens, nameCompact, normalizeAlphaNum(product.Category), normalizeAlphaNum(product.Description)) {
		return true
	}

	// Specs da qidirish
	for _, value := range product.Specs {
		if strings.Contains(strings.ToLower(value), query) {
			return true
		}
	}
	return false
}

// GetByCategory kategoriya bo'yicha mahsulotlarni olish
func (m *memoryProductRepository) GetByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	category = strings.ToLower(strings.TrimSpace(category))
	results := []entity.Product{}

	for _, product := range m.products {
		if strings.ToLower(product.Category) == category {
			results = append(results, product)
		}
	}

	return results, nil
}

// GetAll barcha mahsulotlarni katalog tartibida olish
func (m *memoryProductRepository) GetAll(ctx context.Context) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return cloneProducts(m.products), nil
}

// Replace butun katalogni almashtirish
func (m *memoryProductRepository) Replace(ctx context.Context, products []entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.set(products)
	return nil
}

// Update fn yozish qulfi ostida ishlaydi, shuning uchun parallel importlar bir-birini yo'qotmaydi
func (m *memoryProductRepository) Update(ctx context.Context, fn repository.ProductUpdateFunc) ([]entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.set(fn(cloneProducts(m.products)))
	return cloneProducts(m.products), nil
}

func (m *memoryProductRepository) set(products []entity.Product) {
	m.products = cloneProducts(products)
	m.byID = make(map[string]int, len(products))
	for i, product := range m.products {
		// Takroriy ID bo'lsa birinchisi topiladi
		if _, exists := m.byID[product.ID]; !exists {
			m.byID[product.ID] = i
		}
	}
}

func cloneProducts(products []entity.Product) []entity.Product {
	out := make([]entity.Product, len(products))
	copy(out, products)
	return out
}

// Qidiruv yordamchi funksiyalar
func queryTokens(q string) []string {
	q = strings.ToLower(q)
	separators := []string{",", ".", "?", "!", ";", ":", "/", "\\", "-", "_"}
	for _, sep := range separators {
		q = strings.ReplaceAll(q, sep, " ")
	}
	fields := strings.Fields(q)

	var tokens []string
	for _, f := range fields {
		if len(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func matchAllTokens(tokens []string, parts ...string) bool {
	for _, t := range tokens {
		found := false
		for _, p := range parts {
			if strings.Contains(p, t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return len(tokens) > 0
}

// normalizeAlphaNum faqat harf va raqamlar, kichik harfda
func normalizeAlphaNum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func normalizeTokens(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		n := normalizeAlphaNum(t)
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
