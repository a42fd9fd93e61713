package telegram

import (
	"fmt"
	"strings"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
)

const (
	productListLimit = 15
	newsListLimit    = 5
)

const welcomeMessage = `Assalomu alaykum! 👋

Men noutbuklar do'konining AI maslahatchisiman.

Menga savolingizni yozing: qaysi noutbuk o'qish, ish yoki o'yin uchun mos, narxlar va xususiyatlar.
/products - katalog
/news - yangiliklar
/help - barcha komandalar`

const helpMessage = `🤖 Bot komandlari:

📱 Asosiy:
/start - Botni qayta ishga tushirish
/help - Yordam va komandalar ro'yxati
/products [so'z] - Mahsulotlar (qidiruv bilan)
/category [nom] - Kategoriya bo'yicha mahsulotlar
/news - So'nggi yangiliklar
/clear - Chat tarixini tozalash

🔐 Admin:
/admin - Admin panelga kirish
/logout - Admin paneldan chiqish
/catalog - Katalog statistikasi
/reload - Jadvallardan qayta yuklash
/setsheet <url> - Mahsulotlar jadvali URL
/setnews <url> - Yangiliklar jadvali URL
/actions - Oxirgi admin harakatlari`

const adminWelcomeMessage = `✅ Admin panelga xush kelibsiz!

📤 Katalogni yangilash uchun CSV yoki Excel (.xlsx) faylni (maksimal 5MB) botga yuboring.
Yangiliklar uchun faylga "news" izohini qo'shing.

Mahsulot ustunlari: Name, Price, OriginalPrice, Description, Specs, Images, Link, Category, Brand
Yangilik ustunlari: Title, Summary, Content, Image, Date, Author

/catalog - Katalog statistikasi
/reload - Jadvallardan qayta yuklash
/setsheet <url> - Mahsulotlar jadvali
/setnews <url> - Yangiliklar jadvali
/logout - Admin paneldan chiqish`

func kindLabel(kind entity.CatalogKind) string {
	if kind == entity.KindNews {
		return "Yangiliklar"
	}
	return "Mahsulotlar"
}

// formatReport import natijasi
func formatReport(report entity.ImportReport) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("✅ %s yangilandi!\n\n", kindLabel(report.Kind)))
	sb.WriteString(fmt.Sprintf("📄 Manba: %s\n", report.Source))
	sb.WriteString(fmt.Sprintf("📦 Qatorlar: %d\n", report.Rows))
	sb.WriteString(fmt.Sprintf("➕ Yangi: %d\n", report.Added))
	sb.WriteString(fmt.Sprintf("🔁 Almashtirildi: %d\n", report.Replaced))
	sb.WriteString(fmt.Sprintf("📊 Jami: %d", report.Total))
	if len(report.Issues) > 0 {
		sb.WriteString(fmt.Sprintf("\n⚠️ Muammoli qatorlar: %d", len(report.Issues)))
	}
	return sb.String()
}

// formatSummary ikkala feed holati
func formatSummary(summary entity.ReloadSummary) string {
	return formatLoad(entity.KindProducts, summary.Products) + "\n" + formatLoad(entity.KindNews, summary.News)
}

func formatLoad(kind entity.CatalogKind, res entity.LoadResult) string {
	label := kindLabel(kind)
	switch res.Status {
	case entity.LoadOK:
		r := res.Report
		return fmt.Sprintf("✅ %s: %d qator, +%d yangi, %d almashtirildi (jami %d)", label, r.Rows, r.Added, r.Replaced, r.Total)
	case entity.LoadEmpty:
		return fmt.Sprintf("⚠️ %s: jadval bo'sh, katalog o'zgarmadi", label)
	case entity.LoadSkipped:
		return fmt.Sprintf("⏭ %s: URL sozlanmagan", label)
	default:
		return fmt.Sprintf("❌ %s: %s", label, res.Error)
	}
}

func formatProducts(products []entity.Product, limit int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📦 Jami %d ta mahsulot:\n\n", len(products)))
	for i, p := range products {
		if i == limit {
			sb.WriteString(fmt.Sprintf("\n... va yana %d ta", len(products)-limit))
			break
		}
		sb.WriteString(fmt.Sprintf("• %s - %s\n", p.Name, p.Price))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatNews(news []entity.NewsItem, limit int) string {
	var sb strings.Builder
	for i, n := range news {
		if i == limit {
			break
		}
		sb.WriteString(fmt.Sprintf("📰 %s (%s)\n%s\n\n", n.Title, n.Date, n.Summary))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatActions(actions []entity.AdminAction) string {
	if len(actions) == 0 {
		return "Hozircha harakatlar yo'q."
	}
	var sb strings.Builder
	for _, a := range actions {
		sb.WriteString(fmt.Sprintf("%s %s", a.Timestamp.Format("02.01 15:04"), a.Action))
		if a.Details != "" {
			sb.WriteString(": " + a.Details)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
