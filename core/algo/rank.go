package algo

import (
	"sort"
	"strings"

	"github.com/huangsam/yomu/schema"
)

// RankTitles orders results by key and returns the first 'limit' of them.
// Score keys sort descending, which puts the easiest text first for both
// formulas; titles without a score for that formula go to the end. Ties and
// the title key fall back to the title in byte order. A limit of 0 or less
// keeps all results.
func RankTitles(results []schema.TitleResult, key schema.SortKey, limit int) []schema.TitleResult {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := &results[i], &results[j]
		switch key {
		case schema.SortByTateisi, schema.SortByLee:
			f := schema.Formula(key)
			ra, rb := a.Result(f), b.Result(f)
			switch {
			case ra == nil && rb == nil:
			case ra == nil:
				return false
			case rb == nil:
				return true
			case ra.Score != rb.Score:
				return ra.Score > rb.Score
			}
		}
		return strings.Compare(a.Title, b.Title) < 0
	})
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
