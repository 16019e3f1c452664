package algo

import (
	"unicode/utf8"

	"github.com/huangsam/yomu/schema"
)

// TokenCounts holds the tallies of one or more tagged sentences.
type TokenCounts struct {
	TokenCount      int   `json:"token_count"`
	VerbCount       int   `json:"verb_count"`
	AuxVerbCount    int   `json:"aux_verb_count"`
	WagoCount       int   `json:"wago_count"`
	KangoCount      int   `json:"kango_count"`
	Skipped         int   `json:"skipped"`
	SentenceLengths []int `json:"sentence_lengths"`
}

// Add merges other into c. Sentence lengths are appended in order.
func (c *TokenCounts) Add(other TokenCounts) {
	c.TokenCount += other.TokenCount
	c.VerbCount += other.VerbCount
	c.AuxVerbCount += other.AuxVerbCount
	c.WagoCount += other.WagoCount
	c.KangoCount += other.KangoCount
	c.Skipped += other.Skipped
	c.SentenceLengths = append(c.SentenceLengths, other.SentenceLengths...)
}

// Accumulate tallies one tagged sequence. The end of the slice plays the role
// of the tagger's end marker and closes a pending sentence.
//
// Tokens without a surface or part of speech are skipped and touch no counter
// except Skipped. A missing etymology only leaves the wago and kango counts alone.
//
// Sentence lengths follow the character rules of Segment for single-character
// surfaces. Longer surfaces always add their full length, since punctuation is
// expected to come out of the tagger as its own token.
func Accumulate(tokens []schema.Token) TokenCounts {
	counts := TokenCounts{SentenceLengths: []int{}}
	current := 0

	closeSentence := func() {
		if current > 0 {
			counts.SentenceLengths = append(counts.SentenceLengths, current)
		}
		current = 0
	}

	for _, tok := range tokens {
		if !tok.Valid() {
			counts.Skipped++
			continue
		}
		counts.TokenCount++

		if utf8.RuneCountInString(tok.Surface) == 1 {
			category := ClassifyString(tok.Surface)
			switch {
			case category.IsSentenceEnding():
				closeSentence()
			case category.IsLetter():
				current++
			}
		} else {
			current += utf8.RuneCountInString(tok.Surface)
		}

		if tok.HasEtymology {
			switch tok.Etymology {
			case schema.WagoEtymology:
				counts.WagoCount++
			case schema.KangoEtymology:
				counts.KangoCount++
			}
		}
		switch tok.POS {
		case schema.VerbPOS:
			counts.VerbCount++
		case schema.AuxiliaryVerbPOS:
			counts.AuxVerbCount++
		}
	}
	closeSentence()
	return counts
}
