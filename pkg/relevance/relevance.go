// Package relevance orders provider search results by similarity to the
// user's query. Providers return hits in their own undocumented order; the
// gateway re-ranks so the closest title match lands first regardless of
// which provider answered.
package relevance

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize prepares a title or query for comparison: lowercase, accents
// stripped, punctuation removed, whitespace collapsed.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = removeAccents(s)
	s = strings.ReplaceAll(s, "&", " and ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// Score returns the Jaro-Winkler similarity between a query and a candidate
// title after normalization. Jaro-Winkler favors prefix matches, which suits
// media titles.
func Score(query, title string) float64 {
	return float64(edlib.JaroWinklerSimilarity(Normalize(query), Normalize(title)))
}

// Rank sorts items descending by similarity of their title to query. The
// sort is stable, so items with equal scores keep the order the provider
// returned them in. An empty query leaves the order untouched.
func Rank[T any](query string, items []T, title func(T) string) {
	if strings.TrimSpace(query) == "" || len(items) < 2 {
		return
	}
	normalized := Normalize(query)
	scores := make([]float64, len(items))
	for i, item := range items {
		scores[i] = float64(edlib.JaroWinklerSimilarity(normalized, Normalize(title(item))))
	}
	indexed := make([]int, len(items))
	for i := range indexed {
		indexed[i] = i
	}
	sort.SliceStable(indexed, func(a, b int) bool {
		return scores[indexed[a]] > scores[indexed[b]]
	})
	ranked := make([]T, len(items))
	for i, idx := range indexed {
		ranked[i] = items[idx]
	}
	copy(items, ranked)
}
