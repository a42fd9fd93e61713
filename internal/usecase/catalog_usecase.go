package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

// ErrNoRecords yuklangan faylda birorta ham qator yo'q
var ErrNoRecords = errors.New("no records found in file")

// Import trigger nomlari
const (
	TriggerBootstrap = "bootstrap"
	TriggerRefresh   = "refresh"
	TriggerUpload    = "upload"
)

// CatalogUseCase mahsulot va yangiliklar katalogini yuklash/import qilish
type CatalogUseCase interface {
	// Bootstrap ishga tushishda: seed + jadval, katalog to'liq almashtiriladi
	Bootstrap(ctx context.Context, cfg entity.SheetConfig) entity.ReloadSummary

	// Refresh sozlangan feedlarni qayta yuklab, mavjud katalogga qo'shish
	Refresh(ctx context.Context, cfg entity.SheetConfig) entity.ReloadSummary

	// ImportProducts foydalanuvchi yuklagan fayldan mahsulotlar
	ImportProducts(ctx context.Context, data []byte, filename string) (entity.ImportReport, error)

	// ImportNews foydalanuvchi yuklagan fayldan yangiliklar
	ImportNews(ctx context.Context, data []byte, filename string) (entity.ImportReport, error)

	Products(ctx context.Context) ([]entity.Product, error)
	News(ctx context.Context) ([]entity.NewsItem, error)
	NewsItem(ctx context.Context, id string) (*entity.NewsItem, error)
}

// CatalogDeps CatalogUseCase bog'liqliklari
type CatalogDeps struct {
	Products  repository.ProductRepository
	News      repository.NewsRepository
	Parser    repository.RecordParser
	Mapper    repository.RecordMapper
	Fetcher   repository.SheetFetcher
	Publisher repository.EventPublisher

	SeedProducts func() []entity.Product
	SeedNews     func() []entity.NewsItem
}

type catalogUseCase struct {
	deps CatalogDeps
	now  func() time.Time
}

// NewCatalogUseCase yangi CatalogUseCase yaratish
func NewCatalogUseCase(deps CatalogDeps) CatalogUseCase {
	if deps.SeedProducts == nil {
		deps.SeedProducts = func() []entity.Product { return nil }
	}
	if deps.SeedNews == nil {
		deps.SeedNews = func() []entity.NewsItem { return nil }
	}
	return &catalogUseCase{deps: deps, now: time.Now}
}

// fetched bitta feed dan olingan yozuvlar
type fetched struct {
	result  entity.LoadResult
	records []entity.RawRecord
}

// fetchFeed URL dan yuklab parse qilish; katalogga tegmaydi
func (u *catalogUseCase) fetchFeed(ctx context.Context, kind entity.CatalogKind, url string) fetched {
	res := entity.LoadResult{Report: entity.ImportReport{Kind: kind, Source: url}}

	if url == "" {
		res.Status = entity.LoadSkipped
		return fetched{result: res}
	}

	data, err := u.deps.Fetcher.Fetch(ctx, url)
	if err != nil {
		log.Printf("❌ %s feed yuklanmadi: %v", kind, err)
		return fetched{result: failed(res, err)}
	}

	parsed, err := u.deps.Parser.Parse(ctx, data, "")
	if err != nil {
		log.Printf("❌ %s feed parse xatosi: %v", kind, err)
		return fetched{result: failed(res, err)}
	}

	res.Report.Rows = len(parsed.Records)
	res.Report.Issues = parsed.Issues
	if len(parsed.Records) == 0 {
		log.Printf("⚠️ %s feed bo'sh: %s", kind, url)
		res.Status = entity.LoadEmpty
		return fetched{result: res}
	}

	res.Status = entity.LoadOK
	return fetched{result: res, records: parsed.Records}
}

func failed(res entity.LoadResult, err error) entity.LoadResult {
	res.Status = entity.LoadFailed
	res.Err = err
	res.Error = err.Error()
	return res
}

// Bootstrap seed + jadval; jadval yuklanmasa ham seed o'rnatiladi
func (u *catalogUseCase) Bootstrap(ctx context.Context, cfg entity.SheetConfig) entity.ReloadSummary {
	var summary entity.ReloadSummary

	summary.Products = u.bootstrapProducts(ctx, cfg.ProductSheetURL)
	summary.News = u.bootstrapNews(ctx, cfg.NewsSheetURL)

	log.Printf("✅ Katalog tayyor: products=%s (%d), news=%s (%d)",
		summary.Products.Status, summary.Products.Report.Total,
		summary.News.Status, summary.News.Report.Total)
	return summary
}

func (u *catalogUseCase) bootstrapProducts(ctx context.Context, url string) entity.LoadResult {
	f := u.fetchFeed(ctx, entity.KindProducts, url)
	merged, stats := MergeProducts(u.deps.SeedProducts(), u.deps.Mapper.MapProducts(f.records))

	if err := u.deps.Products.Replace(ctx, merged); err != nil {
		return failed(f.result, fmt.Errorf("failed to install catalog: %w", err))
	}

	f.result.Report.Total = len(merged)
	if f.result.Status == entity.LoadOK {
		f.result.Report.Added, f.result.Report.Replaced = stats.Added, stats.Replaced
		u.publish(ctx, f.result.Report, TriggerBootstrap)
	}
	return f.result
}

func (u *catalogUseCase) bootstrapNews(ctx context.Context, url string) entity.LoadResult {
	f := u.fetchFeed(ctx, entity.KindNews, url)
	merged, stats := MergeNews(u.deps.SeedNews(), u.deps.Mapper.MapNews(f.records))

	if err := u.deps.News.Replace(ctx, merged); err != nil {
		return failed(f.result, fmt.Errorf("failed to install news: %w", err))
	}

	f.result.Report.Total = len(merged)
	if f.result.Status == entity.LoadOK {
		f.result.Report.Added, f.result.Report.Replaced = stats.Added, stats.Replaced
		u.publish(ctx, f.result.Report, TriggerBootstrap)
	}
	return f.result
}

// Refresh faqat LoadOK bo'lganda katalog o'zgaradi
func (u *catalogUseCase) Refresh(ctx context.Context, cfg entity.SheetConfig) entity.ReloadSummary {
	var summary entity.ReloadSummary

	f := u.fetchFeed(ctx, entity.KindProducts, cfg.ProductSheetURL)
	if f.result.Status == entity.LoadOK {
		report, err := u.mergeProducts(ctx, f.result.Report, u.deps.Mapper.MapProducts(f.records), TriggerRefresh)
		if err != nil {
			f.result = failed(f.result, err)
		} else {
			f.result.Report = report
		}
	}
	summary.Products = f.result

	f = u.fetchFeed(ctx, entity.KindNews, cfg.NewsSheetURL)
	if f.result.Status == entity.LoadOK {
		report, err := u.mergeNews(ctx, f.result.Report, u.deps.Mapper.MapNews(f.records), TriggerRefresh)
		if err != nil {
			f.result = failed(f.result, err)
		} else {
			f.result.Report = report
		}
	}
	summary.News = f.result

	return summary
}

// ImportProducts parse xatolari chaqiruvchiga qaytariladi
func (u *catalogUseCase) ImportProducts(ctx context.Context, data []byte, filename string) (entity.ImportReport, error) {
	report, records, err := u.parseUpload(ctx, entity.KindProducts, data, filename)
	if err != nil {
		return report, err
	}
	return u.mergeProducts(ctx, report, u.deps.Mapper.MapProducts(records), TriggerUpload)
}

// ImportNews parse xatolari chaqiruvchiga qaytariladi
func (u *catalogUseCase) ImportNews(ctx context.Context, data []byte, filename string) (entity.ImportReport, error) {
	report, records, err := u.parseUpload(ctx, entity.KindNews, data, filename)
	if err != nil {
		return report, err
	}
	return u.mergeNews(ctx, report, u.deps.Mapper.MapNews(records), TriggerUpload)
}

func (u *catalogUseCase) parseUpload(ctx context.Context, kind entity.CatalogKind, data []byte, filename string) (entity.ImportReport, []entity.RawRecord, error) {
	report := entity.ImportReport{Kind: kind, Source: "upload:" + filename}

	parsed, err := u.deps.Parser.Parse(ctx, data, filename)
	if err != nil {
		return report, nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	report.Rows = len(parsed.Records)
	report.Issues = parsed.Issues
	if len(parsed.Records) == 0 {
		return report, nil, ErrNoRecords
	}
	return report, parsed.Records, nil
}

func (u *catalogUseCase) mergeProducts(ctx context.Context, report entity.ImportReport, incoming []entity.Product, trigger string) (entity.ImportReport, error) {
	var stats MergeStats
	merged, err := u.deps.Products.Update(ctx, func(current []entity.Product) []entity.Product {
		var out []entity.Product
		out, stats = MergeProducts(current, incoming)
		return out
	})
	if err != nil {
		return report, fmt.Errorf("failed to update catalog: %w", err)
	}

	report.Added, report.Replaced, report.Total = stats.Added, stats.Replaced, len(merged)
	u.publish(ctx, report, trigger)
	return report, nil
}

func (u *catalogUseCase) mergeNews(ctx context.Context, report entity.ImportReport, incoming []entity.NewsItem, trigger string) (entity.ImportReport, error) {
	var stats MergeStats
	merged, err := u.deps.News.Update(ctx, func(current []entity.NewsItem) []entity.NewsItem {
		var out []entity.NewsItem
		out, stats = MergeNews(current, incoming)
		return out
	})
	if err != nil {
		return report, fmt.Errorf("failed to update news: %w", err)
	}

	report.Added, report.Replaced, report.Total = stats.Added, stats.Replaced, len(merged)
	u.publish(ctx, report, trigger)
	return report, nil
}

// publish xatosi importni to'xtatmaydi
func (u *catalogUseCase) publish(ctx context.Context, report entity.ImportReport, trigger string) {
	if u.deps.Publisher == nil {
		return
	}
	event := entity.ImportEvent{Report: report, Trigger: trigger, OccurredAt: u.now()}
	if err := u.deps.Publisher.PublishImport(ctx, event); err != nil {
		log.Printf("⚠️ import event yuborilmadi: %v", err)
	}
}

// Products joriy katalog
func (u *catalogUseCase) Products(ctx context.Context) ([]entity.Product, error) {
	return u.deps.Products.GetAll(ctx)
}

// News joriy yangiliklar
func (u *catalogUseCase) News(ctx context.Context) ([]entity.NewsItem, error) {
	return u.deps.News.GetAll(ctx)
}

// NewsItem ID bo'yicha bitta yangilik
func (u *catalogUseCase) NewsItem(ctx context.Context, id string) (*entity.NewsItem, error) {
	return u.deps.News.GetByID(ctx, id)
}
