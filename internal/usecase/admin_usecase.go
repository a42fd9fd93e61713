package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

// ErrNotAdmin foydalanuvchi admin sessiyasiga ega emas
var ErrNotAdmin = errors.New("user is not admin")

// Admin harakat nomlari
const (
	ActionLogin          = "login"
	ActionLogout         = "logout"
	ActionUploadProducts = "upload_products"
	ActionUploadNews     = "upload_news"
	ActionReload         = "reload"
	ActionSetSheet       = "set_sheet"
)

// AdminUseCase admin bilan bog'liq business logic
type AdminUseCase interface {
	// Login admin login qilish; parol sozlanmagan bo'lsa hech kim kira olmaydi
	Login(ctx context.Context, userID int64, password string) (bool, error)

	// Logout admin logout qilish
	Logout(ctx context.Context, userID int64) error

	// IsAdmin admin ekanligini tekshirish
	IsAdmin(ctx context.Context, userID int64) (bool, error)

	// UploadCatalog CSV yoki XLSX fayldan mahsulot yoki yangiliklarni import qilish
	UploadCatalog(ctx context.Context, userID int64, kind entity.CatalogKind, fileData []byte, filename string) (entity.ImportReport, error)

	// Reload sozlangan feedlarni qayta yuklash
	Reload(ctx context.Context, userID int64) (entity.ReloadSummary, error)

	// SetSheet bitta feed URL ini o'zgartirish
	SetSheet(ctx context.Context, userID int64, kind entity.CatalogKind, url string) (entity.ReloadSummary, error)

	// GetCatalogInfo katalog haqida ma'lumot
	GetCatalogInfo(ctx context.Context) (string, error)

	// RecentActions oxirgi admin harakatlari
	RecentActions(ctx context.Context, userID int64, limit int) ([]entity.AdminAction, error)
}

type adminUseCase struct {
	adminRepo repository.AdminRepository
	catalog   CatalogUseCase
	settings  SettingsUseCase
	password  string
}

// NewAdminUseCase yangi AdminUseCase yaratish
func NewAdminUseCase(
	adminRepo repository.AdminRepository,
	catalog CatalogUseCase,
	settings SettingsUseCase,
	password string,
) AdminUseCase {
	return &adminUseCase{
		adminRepo: adminRepo,
		catalog:   catalog,
		settings:  settings,
		password:  password,
	}
}

// Login admin login qilish
func (u *adminUseCase) Login(ctx context.Context, userID int64, password string) (bool, error) {
	// Parolni tekshirish
	if u.password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(u.password)) != 1 {
		return false, nil
	}

	// Admin sessiyasini yaratish
	session := entity.AdminSession{
		UserID:       userID,
		IsAdmin:      true,
		LoginTime:    time.Now(),
		LastActivity: time.Now(),
	}

	if err := u.adminRepo.CreateSession(ctx, session); err != nil {
		return false, fmt.Errorf("failed to create session: %w", err)
	}

	u.logAction(ctx, userID, ActionLogin, "Admin successfully logged in")
	return true, nil
}

// Logout admin logout qilish
func (u *adminUseCase) Logout(ctx context.Context, userID int64) error {
	u.logAction(ctx, userID, ActionLogout, "")
	return u.adminRepo.DeleteSession(ctx, userID)
}

// IsAdmin admin ekanligini tekshirish
func (u *adminUseCase) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	return u.adminRepo.IsAdmin(ctx, userID)
}

// requireAdmin tekshiradi va sessiyani faol deb belgilaydi
func (u *adminUseCase) requireAdmin(ctx context.Context, userID int64) error {
	isAdmin, err := u.adminRepo.IsAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrNotAdmin
	}
	return u.adminRepo.Touch(ctx, userID)
}

// UploadCatalog fayldan katalogni yuklash
func (u *adminUseCase) UploadCatalog(ctx context.Context, userID int64, kind entity.CatalogKind, fileData []byte, filename string) (entity.ImportReport, error) {
	if err := u.requireAdmin(ctx, userID); err != nil {
		return entity.ImportReport{}, err
	}

	var (
		report entity.ImportReport
		err    error
		action string
	)
	switch kind {
	case entity.KindNews:
		report, err = u.catalog.ImportNews(ctx, fileData, filename)
		action = ActionUploadNews
	default:
		report, err = u.catalog.ImportProducts(ctx, fileData, filename)
		action = ActionUploadProducts
	}
	if err != nil {
		return report, err
	}

	u.logAction(ctx, userID, action, fmt.Sprintf("Imported %d rows from %s (added %d, replaced %d)", report.Rows, filename, report.Added, report.Replaced))
	return report, nil
}

// Reload sozlangan feedlarni qayta yuklash
func (u *adminUseCase) Reload(ctx context.Context, userID int64) (entity.ReloadSummary, error) {
	if err := u.requireAdmin(ctx, userID); err != nil {
		return entity.ReloadSummary{}, err
	}

	cfg, err := u.settings.Resolve(ctx)
	if err != nil {
		return entity.ReloadSummary{}, err
	}
	summary := u.catalog.Refresh(ctx, cfg)

	u.logAction(ctx, userID, ActionReload, fmt.Sprintf("products=%s news=%s", summary.Products.Status, summary.News.Status))
	return summary, nil
}

// SetSheet bitta feed URL ini saqlash; ikkinchisi o'zgarmaydi
func (u *adminUseCase) SetSheet(ctx context.Context, userID int64, kind entity.CatalogKind, url string) (entity.ReloadSummary, error) {
	if err := u.requireAdmin(ctx, userID); err != nil {
		return entity.ReloadSummary{}, err
	}

	cfg, err := u.settings.Resolve(ctx)
	if err != nil {
		return entity.ReloadSummary{}, err
	}
	if kind == entity.KindNews {
		cfg.NewsSheetURL = url
	} else {
		cfg.ProductSheetURL = url
	}

	summary, err := u.settings.Save(ctx, cfg)
	if err != nil {
		return entity.ReloadSummary{}, err
	}

	u.logAction(ctx, userID, ActionSetSheet, fmt.Sprintf("%s sheet -> %s", kind, url))
	return summary, nil
}

// GetCatalogInfo katalog haqida ma'lumot
func (u *adminUseCase) GetCatalogInfo(ctx context.Context) (string, error) {
	products, err := u.catalog.Products(ctx)
	if err != nil {
		return "", err
	}
	news, err := u.catalog.News(ctx)
	if err != nil {
		return "", err
	}

	// Kategoriyalarni sanash (katalog tartibida)
	var order []string
	categories := make(map[string]int)
	for _, product := range products {
		if _, seen := categories[product.Category]; !seen {
			order = append(order, product.Category)
		}
		categories[product.Category]++
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 Jami mahsulotlar: %d\n", len(products)))
	sb.WriteString(fmt.Sprintf("📰 Yangiliklar: %d\n\n", len(news)))
	sb.WriteString("📂 Kategoriyalar:\n")
	for _, cat := range order {
		sb.WriteString(fmt.Sprintf("  • %s: %d ta\n", cat, categories[cat]))
	}

	return sb.String(), nil
}

// RecentActions oxirgi admin harakatlari
func (u *adminUseCase) RecentActions(ctx context.Context, userID int64, limit int) ([]entity.AdminAction, error) {
	if err := u.requireAdmin(ctx, userID); err != nil {
		return nil, err
	}
	return u.adminRepo.RecentActions(ctx, limit)
}

func (u *adminUseCase) logAction(ctx context.Context, userID int64, action, details string) {
	_ = u.adminRepo.LogAction(ctx, entity.AdminAction{
		ID:        uuid.New().String(),
		UserID:    userID,
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	})
}
