package repository

import (
	"context"
	"errors"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
)

// ProductUpdateFunc joriy katalogdan yangi katalog yasaydi
type ProductUpdateFunc func(current []entity.Product) []entity.Product

// ProductRepository mahsulot katalogi bilan ishlash uchun interface
type ProductRepository interface {
	// GetAll katalogni tartib bo'yicha olish
	GetAll(ctx context.Context) ([]entity.Product, error)

	// GetByID ID bo'yicha mahsulotni olish
	GetByID(ctx context.Context, id string) (*entity.Product, error)

	// Search nom, kategoriya va tavsif bo'yicha qidirish
	Search(ctx context.Context, query string) ([]entity.Product, error)

	// GetByCategory kategoriya bo'yicha mahsulotlarni olish
	GetByCategory(ctx context.Context, category string) ([]entity.Product, error)

	// Replace butun katalogni almashtirish
	Replace(ctx context.Context, products []entity.Product) error

	// Update katalogni yozish qulfi ostida yangilash va yangi snapshotni qaytarish
	Update(ctx context.Context, fn ProductUpdateFunc) ([]entity.Product, error)
}

// ErrNotFound so'ralgan yozuv katalogda yo'q
var ErrNotFound = errors.New("not found")
