package entity

import "time"

// CatalogKind katalog turi
type CatalogKind string

const (
	KindProducts CatalogKind = "products"
	KindNews     CatalogKind = "news"
)

// ImportReport bitta import/yuklash natijasi
type ImportReport struct {
	Kind     CatalogKind `json:"kind"`
	Source   string      `json:"source"`
	Rows     int         `json:"rows"`
	Added    int         `json:"added"`
	Replaced int         `json:"replaced"`
	Total    int         `json:"total"`
	Issues   []RowIssue  `json:"issues,omitempty"`
}

// LoadStatus feed yuklash holati
type LoadStatus string

const (
	LoadOK      LoadStatus = "ok"
	LoadEmpty   LoadStatus = "empty"   // manba 0 ta qator qaytardi
	LoadFailed  LoadStatus = "failed"  // fetch yoki parse xatosi
	LoadSkipped LoadStatus = "skipped" // URL sozlanmagan
)

// LoadResult feed yuklash natijasi; katalog faqat LoadOK da o'zgaradi
type LoadResult struct {
	Status LoadStatus   `json:"status"`
	Report ImportReport `json:"report"`
	Error  string       `json:"error,omitempty"`
	Err    error        `json:"-"`
}

// ImportEvent tashqi tizimlarga yuboriladigan hodisa
type ImportEvent struct {
	Report     ImportReport `json:"report"`
	Trigger    string       `json:"trigger"` // "bootstrap", "refresh", "upload"
	OccurredAt time.Time    `json:"occurred_at"`
}

// ReloadSummary ikkala feed bo'yicha natija
type ReloadSummary struct {
	Products LoadResult `json:"products"`
	News     LoadResult `json:"news"`
}
