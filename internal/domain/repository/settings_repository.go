package repository

import "context"

// SettingsRepository kalit/qiymat sozlamalar ombori
type SettingsRepository interface {
	// Get qiymatni olish; kalit yo'q bo'lsa ok=false
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set qiymatni saqlash
	Set(ctx context.Context, key, value string) error
}
