package repository

import "context"

// SheetFetcher nashr qilingan jadvalni (CSV) yuklab olish
type SheetFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
