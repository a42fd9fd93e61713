package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/infrastructure/storage"
)

type adminFixture struct {
	*catalogFixture
	admin AdminUseCase
}

func newAdminFixture(t *testing.T, password string) *adminFixture {
	t.Helper()
	fx := newCatalogFixture(t)
	fx.catalog.Bootstrap(context.Background(), entity.SheetConfig{})
	settings := NewSettingsUseCase(storage.NewMemorySettingsRepository(), fx.catalog, "")
	return &adminFixture{
		catalogFixture: fx,
		admin:          NewAdminUseCase(storage.NewMemoryAdminRepository(), fx.catalog, settings, password),
	}
}

func TestAdminLogin(t *testing.T) {
	ctx := context.Background()

	fx := newAdminFixture(t, "s3cret")
	ok, err := fx.admin.Login(ctx, 1, "wrong")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = fx.admin.Login(ctx, 1, "s3cret")
	require.NoError(t, err)
	require.True(t, ok)

	isAdmin, err := fx.admin.IsAdmin(ctx, 1)
	require.NoError(t, err)
	require.True(t, isAdmin)

	require.NoError(t, fx.admin.Logout(ctx, 1))
	isAdmin, _ = fx.admin.IsAdmin(ctx, 1)
	require.False(t, isAdmin)

	disabled := newAdminFixture(t, "")
	ok, err = disabled.admin.Login(ctx, 1, "")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAdminUploadRequiresSession(t *testing.T) {
	ctx := context.Background()
	fx := newAdminFixture(t, "pw")

	_, err := fx.admin.UploadCatalog(ctx, 9, entity.KindProducts, []byte("Name\nX\n"), "a.csv")
	require.ErrorIs(t, err, ErrNotAdmin)

	_, err = fx.admin.Reload(ctx, 9)
	require.ErrorIs(t, err, ErrNotAdmin)
}

func TestAdminUploadAndInfo(t *testing.T) {
	ctx := context.Background()
	fx := newAdminFixture(t, "pw")
	ok, _ := fx.admin.Login(ctx, 1, "pw")
	require.True(t, ok)

	report, err := fx.admin.UploadCatalog(ctx, 1, entity.KindProducts, []byte("Name,Category\nAsus TUF,Gaming\n"), "a.csv")
	require.NoError(t, err)
	require.Equal(t, 1, report.Added)

	report, err = fx.admin.UploadCatalog(ctx, 1, entity.KindNews, []byte("Title\nHot deal\n"), "news.csv")
	require.NoError(t, err)
	require.Equal(t, entity.KindNews, report.Kind)

	info, err := fx.admin.GetCatalogInfo(ctx)
	require.NoError(t, err)
	require.Contains(t, info, "Jami mahsulotlar: 3")
	require.Contains(t, info, "Yangiliklar: 2")
	require.Contains(t, info, "Gaming: 1 ta")

	actions, err := fx.admin.RecentActions(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, ActionUploadNews, actions[0].Action)
	require.Equal(t, ActionUploadProducts, actions[1].Action)
	require.Equal(t, ActionLogin, actions[2].Action)
}

func TestAdminSetSheetKeepsOtherFeed(t *testing.T) {
	ctx := context.Background()
	fx := newAdminFixture(t, "pw")
	_, _ = fx.admin.Login(ctx, 1, "pw")

	fx.fetcher.pages[productURL] = "Name\nFrom sheet\n"
	fx.fetcher.pages[newsURL] = "Title\nSheet news\n"

	summary, err := fx.admin.SetSheet(ctx, 1, entity.KindNews, newsURL)
	require.NoError(t, err)
	require.Equal(t, entity.LoadSkipped, summary.Products.Status)
	require.Equal(t, entity.LoadOK, summary.News.Status)

	summary, err = fx.admin.SetSheet(ctx, 1, entity.KindProducts, productURL)
	require.NoError(t, err)
	require.Equal(t, entity.LoadOK, summary.Products.Status)
	require.Equal(t, entity.LoadOK, summary.News.Status)

	_, err = fx.admin.SetSheet(ctx, 1, entity.KindProducts, "not a url")
	require.ErrorIs(t, err, ErrInvalidSheetURL)

	summary, err = fx.admin.Reload(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 0, summary.Products.Report.Added)
	require.Equal(t, 1, summary.Products.Report.Replaced)
}
