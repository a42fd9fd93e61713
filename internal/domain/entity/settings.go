package entity

// Settings kalitlari (mijoz tomonidagi eski kalitlar bilan bir xil)
const (
	SettingProductSheet = "momotech_product_sheet"
	SettingNewsSheet    = "momotech_news_sheet"
)

// SheetConfig ikkala feed URL lari
type SheetConfig struct {
	ProductSheetURL string `json:"productSheetUrl"`
	NewsSheetURL    string `json:"newsSheetUrl"`
}
