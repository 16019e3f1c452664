package core

import (
	"fmt"
	"unicode/utf8"

	"github.com/huangsam/yomu/core/algo"
	"github.com/huangsam/yomu/schema"
)

// runFactorKeys maps each letter category to its share and mean-length factors.
var runFactorKeys = map[schema.CharCategory]struct {
	share  schema.FactorKey
	length schema.FactorKey
}{
	schema.CategoryAlphabet: {schema.AlphabetRunsPercentage, schema.LettersPerAlphabetRun},
	schema.CategoryHiragana: {schema.HiraganaRunsPercentage, schema.LettersPerHiraganaRun},
	schema.CategoryKanji:    {schema.KanjiRunsPercentage, schema.LettersPerKanjiRun},
	schema.CategoryKatakana: {schema.KatakanaRunsPercentage, schema.LettersPerKatakanaRun},
}

// ComputeTateisiFactors derives the eleven Tateisi factors from one segmenter pass.
//
// A text without any letter run or without a closed sentence has no defined
// run shares or sentence length; both cases wrap schema.ErrDegenerateInput.
func ComputeTateisiFactors(seg algo.SegmentResult) (schema.Factors, error) {
	totalRuns := seg.RunCount()
	if totalRuns == 0 {
		return nil, fmt.Errorf("%s: no letter runs: %w", schema.KanjiRunsPercentage, schema.ErrDegenerateInput)
	}
	if len(seg.SentenceLengths) == 0 {
		return nil, fmt.Errorf("%s: no sentences: %w", schema.LettersPerSentence, schema.ErrDegenerateInput)
	}

	factors := make(schema.Factors, schema.TateisiWeights.Len())
	factors[schema.Constant] = 1

	ratio := 0.0
	if seg.KutenCount > 0 {
		ratio = float64(seg.TootenCount) / float64(seg.KutenCount)
	}
	factors[schema.TootenToKutenRatio] = ratio

	for _, category := range schema.LetterCategories {
		keys := runFactorKeys[category]
		runs := seg.Runs[category]
		factors[keys.share] = 100 * float64(len(runs)) / float64(totalRuns)
		factors[keys.length] = meanRunLength(runs)
	}

	factors[schema.LettersPerSentence] = mean(seg.SentenceLengths)
	return factors, nil
}

// meanRunLength is the average rune length of runs, 0 for no runs.
func meanRunLength(runs []string) float64 {
	if len(runs) == 0 {
		return 0
	}
	total := 0
	for _, r := range runs {
		total += utf8.RuneCountInString(r)
	}
	return float64(total) / float64(len(runs))
}

// mean is the arithmetic mean of values, 0 for an empty slice.
func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return float64(total) / float64(len(values))
}
