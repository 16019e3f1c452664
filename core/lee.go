package core

import (
	"fmt"

	"github.com/huangsam/yomu/core/algo"
	"github.com/huangsam/yomu/schema"
)

// ComputeLeeFactors derives the six Lee factors from token tallies and a list
// of sentence lengths. Proportions are percentages of all valid tokens.
func ComputeLeeFactors(counts algo.TokenCounts, sentenceLengths []int) (schema.Factors, error) {
	if counts.TokenCount == 0 {
		return nil, fmt.Errorf("%s: no tokens: %w", schema.KangoProportion, schema.ErrDegenerateInput)
	}
	if len(sentenceLengths) == 0 {
		return nil, fmt.Errorf("%s: no sentences: %w", schema.MeanSentenceLength, schema.ErrDegenerateInput)
	}

	total := float64(counts.TokenCount)
	return schema.Factors{
		schema.MeanSentenceLength:      mean(sentenceLengths),
		schema.KangoProportion:         100 * float64(counts.KangoCount) / total,
		schema.WagoProportion:          100 * float64(counts.WagoCount) / total,
		schema.VerbProportion:          100 * float64(counts.VerbCount) / total,
		schema.AuxiliaryVerbProportion: 100 * float64(counts.AuxVerbCount) / total,
		schema.Constant:                1,
	}, nil
}

// leeSentenceLengths picks the sentence lengths the Lee formula averages.
func leeSentenceLengths(source schema.SentenceSource, seg algo.SegmentResult, counts algo.TokenCounts) []int {
	if source == schema.TokenSentences {
		return counts.SentenceLengths
	}
	return seg.SentenceLengths
}
