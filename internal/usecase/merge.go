package usecase

import "github.com/yourusername/laptop-storefront/internal/domain/entity"

// MergeStats kiruvchi batch bo'yicha hisob
type MergeStats struct {
	Added    int
	Replaced int
}

// mergeByKey existing + incoming ni kalit bo'yicha birlashtiradi:
// pozitsiya birinchi uchragan joyda qoladi, qiymat esa oxirgisiniki bo'ladi.
// Kirish slice lari o'zgartirilmaydi.
func mergeByKey[T any](existing, incoming []T, key func(T) string) ([]T, MergeStats) {
	out := make([]T, 0, len(existing)+len(incoming))
	index := make(map[string]int, len(existing)+len(incoming))

	for _, item := range existing {
		k := key(item)
		if i, seen := index[k]; seen {
			out[i] = item
			continue
		}
		index[k] = len(out)
		out = append(out, item)
	}

	var stats MergeStats
	for _, item := range incoming {
		k := key(item)
		if i, seen := index[k]; seen {
			out[i] = item
			stats.Replaced++
			continue
		}
		index[k] = len(out)
		out = append(out, item)
		stats.Added++
	}
	return out, stats
}

// MergeProducts kalit: kichik harfli nom
func MergeProducts(existing, incoming []entity.Product) ([]entity.Product, MergeStats) {
	return mergeByKey(existing, incoming, entity.Product.DedupKey)
}

// MergeNews kalit: kichik harfli sarlavha
func MergeNews(existing, incoming []entity.NewsItem) ([]entity.NewsItem, MergeStats) {
	return mergeByKey(existing, incoming, entity.NewsItem.DedupKey)
}
