package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

// ErrInvalidSheetURL URL bo'sh yoki to'liq http(s) manzil bo'lishi kerak
var ErrInvalidSheetURL = errors.New("sheet url must be empty or an absolute http(s) url")

// SettingsUseCase jadval URL larini saqlash va o'qish
type SettingsUseCase interface {
	// Resolve saqlangan qiymatlar, bo'lmasa default
	Resolve(ctx context.Context) (entity.SheetConfig, error)

	// Save tekshirish, saqlash va feedlarni yangilash
	Save(ctx context.Context, cfg entity.SheetConfig) (entity.ReloadSummary, error)
}

type settingsUseCase struct {
	repo           repository.SettingsRepository
	catalog        CatalogUseCase
	defaultProduct string
}

// NewSettingsUseCase defaultProductURL hech narsa saqlanmaganda ishlatiladi
func NewSettingsUseCase(repo repository.SettingsRepository, catalog CatalogUseCase, defaultProductURL string) SettingsUseCase {
	return &settingsUseCase{
		repo:           repo,
		catalog:        catalog,
		defaultProduct: defaultProductURL,
	}
}

// Resolve mahsulot feedi uchun default URL, yangiliklar uchun hech narsa
func (u *settingsUseCase) Resolve(ctx context.Context) (entity.SheetConfig, error) {
	cfg := entity.SheetConfig{ProductSheetURL: u.defaultProduct}

	if v, ok, err := u.repo.Get(ctx, entity.SettingProductSheet); err != nil {
		return cfg, fmt.Errorf("failed to read product sheet setting: %w", err)
	} else if ok {
		cfg.ProductSheetURL = v
	}

	if v, ok, err := u.repo.Get(ctx, entity.SettingNewsSheet); err != nil {
		return cfg, fmt.Errorf("failed to read news sheet setting: %w", err)
	} else if ok {
		cfg.NewsSheetURL = v
	}

	return cfg, nil
}

// Save ikkala qiymatni saqlaydi, keyin Refresh qiladi
func (u *settingsUseCase) Save(ctx context.Context, cfg entity.SheetConfig) (entity.ReloadSummary, error) {
	cfg.ProductSheetURL = strings.TrimSpace(cfg.ProductSheetURL)
	cfg.NewsSheetURL = strings.TrimSpace(cfg.NewsSheetURL)

	if err := ValidateSheetURL(cfg.ProductSheetURL); err != nil {
		return entity.ReloadSummary{}, fmt.Errorf("product sheet: %w", err)
	}
	if err := ValidateSheetURL(cfg.NewsSheetURL); err != nil {
		return entity.ReloadSummary{}, fmt.Errorf("news sheet: %w", err)
	}

	if err := u.repo.Set(ctx, entity.SettingProductSheet, cfg.ProductSheetURL); err != nil {
		return entity.ReloadSummary{}, fmt.Errorf("failed to save product sheet: %w", err)
	}
	if err := u.repo.Set(ctx, entity.SettingNewsSheet, cfg.NewsSheetURL); err != nil {
		return entity.ReloadSummary{}, fmt.Errorf("failed to save news sheet: %w", err)
	}

	return u.catalog.Refresh(ctx, cfg), nil
}

// ValidateSheetURL bo'sh qiymat "feed o'chirilgan" degani
func ValidateSheetURL(raw string) error {
	if raw == "" {
		return nil
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSheetURL, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return ErrInvalidSheetURL
	}
	return nil
}
