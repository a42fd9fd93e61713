package repository

import (
	"context"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
)

// RecordParser jadval fayllarini RawRecord larga aylantirish uchun interface
type RecordParser interface {
	// Parse matn yoki workbook baytlarini o'qish; filename kengaytmasi formatni tanlaydi
	Parse(ctx context.Context, data []byte, filename string) (entity.ParseResult, error)
}

// RecordMapper RawRecord larni domain entity larga aylantiradi
type RecordMapper interface {
	MapProducts(records []entity.RawRecord) []entity.Product
	MapNews(records []entity.RawRecord) []entity.NewsItem
}
