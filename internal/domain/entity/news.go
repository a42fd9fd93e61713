package entity

import "strings"

// NewsItem yangilik entity
type NewsItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Content  string   `json:"content"` // yengil markup bo'lishi mumkin, UI formatlaydi
	ImageURL string   `json:"imageUrl"`
	Images   []string `json:"images"`
	Date     string   `json:"date"` // lokal formatdagi sana, parse qilinmaydi
	Author   string   `json:"author"`
}

// DedupKey kichik harfli sarlavha
func (n NewsItem) DedupKey() string {
	return strings.ToLower(n.Title)
}
