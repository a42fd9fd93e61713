package parser

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

// Header aliaslari: birinchi bo'sh bo'lmagan qiymat yutadi
var (
	productNameAliases          = []string{"Name", "name", "Tên sản phẩm", "Tên"}
	productPriceAliases         = []string{"Price", "price", "Giá", "Giá bán"}
	productDescriptionAliases   = []string{"Description", "description", "Mô tả", "Chi tiết"}
	productImagesAliases        = []string{"Images", "images", "Hình ảnh", "Ảnh"}
	productSpecsAliases         = []string{"Specs", "specs", "Thông số", "Cấu hình"}
	productLinkAliases          = []string{"Link", "link", "Liên kết", "Affiliate Link"}
	productCategoryAliases      = []string{"Category", "category", "Danh mục", "Loại"}
	productBrandAliases         = []string{"Brand", "brand", "Thương hiệu", "Hãng"}
	productOriginalPriceAliases = []string{"OriginalPrice", "originalPrice", "Giá gốc"}

	newsTitleAliases   = []string{"Title", "title", "Tiêu đề"}
	newsSummaryAliases = []string{"Summary", "summary", "Tóm tắt"}
	newsContentAliases = []string{"Content", "content", "Nội dung"}
	newsImageAliases   = []string{"Image", "image", "Hình ảnh"}
	newsImagesAliases  = []string{"Images", "images", "Thêm ảnh"}
	newsDateAliases    = []string{"Date", "date", "Ngày"}
	newsAuthorAliases  = []string{"Author", "author", "Tác giả"}
)

// Default qiymatlar
const (
	DefaultProductName   = "Unnamed Product"
	DefaultProductPrice  = "Contact for price"
	DefaultAffiliateLink = "#"
	DefaultCategory      = "General"
	DefaultNewsTitle     = "No Title"
	DefaultNewsAuthor    = "Admin"

	// vi-VN qisqa sana formati, masalan 21/2/2026
	NewsDateLayout = "2/1/2006"
)

// MapperOptions mapper sozlamalari
type MapperOptions struct {
	// KeepEmptySpecs true bo'lsa Specs bo'sh elementlari saqlanadi (eski xulq: [""])
	KeepEmptySpecs bool
	// Now test uchun soat
	Now func() time.Time
}

type recordMapper struct {
	opts MapperOptions

	mu        sync.Mutex
	lastStamp int64
}

// NewRecordMapper yangi mapper yaratish
func NewRecordMapper(opts MapperOptions) repository.RecordMapper {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &recordMapper{opts: opts}
}

// MapProducts har bir yozuvdan bitta mahsulot
func (m *recordMapper) MapProducts(records []entity.RawRecord) []entity.Product {
	stamp := m.nextStamp()
	products := make([]entity.Product, 0, len(records))
	for i, rec := range records {
		products = append(products, m.mapProduct(rec, i, stamp))
	}
	return products
}

// MapNews har bir yozuvdan bitta yangilik
func (m *recordMapper) MapNews(records []entity.RawRecord) []entity.NewsItem {
	stamp := m.nextStamp()
	today := m.opts.Now().Format(NewsDateLayout)
	items := make([]entity.NewsItem, 0, len(records))
	for i, rec := range records {
		items = append(items, mapNews(rec, i, stamp, today))
	}
	return items
}

func (m *recordMapper) mapProduct(rec entity.RawRecord, index int, stamp int64) entity.Product {
	specs := splitList(rec.Get("", productSpecsAliases...), !m.opts.KeepEmptySpecs)

	return entity.Product{
		ID:            fmt.Sprintf("sheet-%d-%d", index, stamp),
		Name:          rec.Get(DefaultProductName, productNameAliases...),
		Price:         rec.Get(DefaultProductPrice, productPriceAliases...),
		OriginalPrice: rec.Get("", productOriginalPriceAliases...),
		Description:   rec.Get("", productDescriptionAliases...),
		Images:        splitList(rec.Get("", productImagesAliases...), true),
		Specs:         specs,
		AffiliateLink: rec.Get(DefaultAffiliateLink, productLinkAliases...),
		Category:      rec.Get(DefaultCategory, productCategoryAliases...),
		Brand:         rec.Get(entity.DefaultBrand, productBrandAliases...),
	}
}

func mapNews(rec entity.RawRecord, index int, stamp int64, today string) entity.NewsItem {
	imageURL := rec.Get("", newsImageAliases...)

	var images []string
	if raw, ok := rec.Lookup(newsImagesAliases...); ok {
		images = splitList(raw, true)
	} else if imageURL != "" {
		images = []string{imageURL}
	} else {
		images = []string{}
	}

	return entity.NewsItem{
		ID:       fmt.Sprintf("news-%d-%d", index, stamp),
		Title:    rec.Get(DefaultNewsTitle, newsTitleAliases...),
		Summary:  rec.Get("", newsSummaryAliases...),
		Content:  rec.Get("", newsContentAliases...),
		ImageURL: imageURL,
		Images:   images,
		Date:     rec.Get(today, newsDateAliases...),
		Author:   rec.Get(DefaultNewsAuthor, newsAuthorAliases...),
	}
}

// nextStamp har bir batch uchun qat'iy o'suvchi millisekund belgisi
func (m *recordMapper) nextStamp() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	stamp := m.opts.Now().UnixMilli()
	if stamp <= m.lastStamp {
		stamp = m.lastStamp + 1
	}
	m.lastStamp = stamp
	return stamp
}

// splitList vergul bo'yicha bo'lish va trim; dropEmpty bo'sh elementlarni olib tashlaydi
func splitList(raw string, dropEmpty bool) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if dropEmpty && p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
