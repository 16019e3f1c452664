package algo

import (
	"testing"

	"github.com/huangsam/yomu/schema"
	"github.com/stretchr/testify/assert"
)

func titles(results []schema.TitleResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Title
	}
	return out
}

func TestRankTitles(t *testing.T) {
	makeResults := func() []schema.TitleResult {
		return []schema.TitleResult{
			{Title: "momotaro", Tateisi: &schema.FormulaResult{Score: 40}, Lee: &schema.FormulaResult{Score: 5}},
			{Title: "kaguya", Tateisi: &schema.FormulaResult{Score: 10}},
			{Title: "urashima", Lee: &schema.FormulaResult{Score: 6}},
			{Title: "issun", Tateisi: &schema.FormulaResult{Score: 40}, Lee: &schema.FormulaResult{Score: 2}},
		}
	}

	tests := []struct {
		name     string
		key      schema.SortKey
		limit    int
		expected []string
	}{
		{"by title", schema.SortByTitle, 0, []string{"issun", "kaguya", "momotaro", "urashima"}},
		{"by tateisi", schema.SortByTateisi, 0, []string{"issun", "momotaro", "kaguya", "urashima"}},
		{"by lee", schema.SortByLee, 0, []string{"urashima", "momotaro", "issun", "kaguya"}},
		{"with limit", schema.SortByLee, 2, []string{"urashima", "momotaro"}},
		{"limit above length", schema.SortByTitle, 10, []string{"issun", "kaguya", "momotaro", "urashima"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RankTitles(makeResults(), tt.key, tt.limit)
			assert.Equal(t, tt.expected, titles(got))
		})
	}
}
