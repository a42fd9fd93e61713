package entity

// RawRecord CSV qatori: header -> qiymat
type RawRecord map[string]string

// Lookup birinchi bo'sh bo'lmagan alias qiymatini qaytaradi
func (r RawRecord) Lookup(aliases ...string) (string, bool) {
	for _, alias := range aliases {
		if v := r[alias]; v != "" {
			return v, true
		}
	}
	return "", false
}

// Get alias bo'yicha qiymat yoki fallback
func (r RawRecord) Get(fallback string, aliases ...string) string {
	if v, ok := r.Lookup(aliases...); ok {
		return v
	}
	return fallback
}

// IssueKind qator muammosi turi
type IssueKind string

const (
	IssueShortRow          IssueKind = "short_row"
	IssueLongRow           IssueKind = "long_row"
	IssueUnterminatedQuote IssueKind = "unterminated_quote"
)

// RowIssue parse paytida topilgan, lekin fatal bo'lmagan muammo
type RowIssue struct {
	Line   int       `json:"line"` // 1 dan boshlanadigan fizik qator raqami
	Kind   IssueKind `json:"kind"`
	Detail string    `json:"detail,omitempty"`
}

// ParseResult parser natijasi
type ParseResult struct {
	Headers []string
	Records []RawRecord
	Issues  []RowIssue
}
