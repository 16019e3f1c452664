package schema

import "errors"

// FactorKey names a readability factor.
type FactorKey string

// Tateisi factor keys.
const (
	AlphabetRunsPercentage FactorKey = "ALPHABET_RUNS_PERCENTAGE"
	HiraganaRunsPercentage FactorKey = "HIRAGANA_RUNS_PERCENTAGE"
	KanjiRunsPercentage    FactorKey = "KANJI_RUNS_PERCENTAGE"
	KatakanaRunsPercentage FactorKey = "KATAKANA_RUNS_PERCENTAGE"
	LettersPerAlphabetRun  FactorKey = "LETTERS_PER_ALPHABET_RUN"
	LettersPerHiraganaRun  FactorKey = "LETTERS_PER_HIRAGANA_RUN"
	LettersPerKanjiRun     FactorKey = "LETTERS_PER_KANJI_RUN"
	LettersPerKatakanaRun  FactorKey = "LETTERS_PER_KATAKANA_RUN"
	LettersPerSentence     FactorKey = "LETTERS_PER_SENTENCE"
	TootenToKutenRatio     FactorKey = "TOOTEN_TO_KUTEN_RATIO"
)

// Lee factor keys.
const (
	MeanSentenceLength      FactorKey = "MEAN_SENTENCE_LENGTH"
	KangoProportion         FactorKey = "KANGO_PROPORTION"
	WagoProportion          FactorKey = "WAGO_PROPORTION"
	VerbProportion          FactorKey = "VERB_PROPORTION"
	AuxiliaryVerbProportion FactorKey = "AUXILIARY_VERB_PROPORTION"
)

// Constant is the intercept factor shared by both formulas. Its value is always 1.
const Constant FactorKey = "CONSTANT"

var (
	// ErrDegenerateInput is returned when a factor is undefined for the input,
	// such as a run percentage on a text without letter runs.
	ErrDegenerateInput = errors.New("insufficient data")

	// ErrFactorCardinality is returned when a factor set does not match its
	// weight table. It signals a programming error, not bad input.
	ErrFactorCardinality = errors.New("factor set does not match weight table")
)

// Factors maps factor keys to their raw values.
type Factors map[FactorKey]float64

// WeightTable is the fixed linear model of one formula.
// Keys holds the enumeration order used for scoring and reporting.
type WeightTable struct {
	Formula Formula
	Keys    []FactorKey
	Weights map[FactorKey]float64
}

// Weight returns the weight for key and whether the table defines it.
func (t *WeightTable) Weight(key FactorKey) (float64, bool) {
	w, ok := t.Weights[key]
	return w, ok
}

// Len returns the number of factors the formula requires.
func (t *WeightTable) Len() int {
	return len(t.Keys)
}

// TateisiWeights is the Tateisi et al. model over run statistics.
var TateisiWeights = &WeightTable{
	Formula: TateisiFormula,
	Keys: []FactorKey{
		Constant,
		TootenToKutenRatio,
		KanjiRunsPercentage,
		KatakanaRunsPercentage,
		HiraganaRunsPercentage,
		AlphabetRunsPercentage,
		LettersPerKanjiRun,
		LettersPerKatakanaRun,
		LettersPerHiraganaRun,
		LettersPerAlphabetRun,
		LettersPerSentence,
	},
	Weights: map[FactorKey]float64{
		AlphabetRunsPercentage: 0.06,
		HiraganaRunsPercentage: 0.25,
		KanjiRunsPercentage:    -0.19,
		KatakanaRunsPercentage: -0.61,
		LettersPerSentence:     -1.34,
		LettersPerAlphabetRun:  -1.35,
		LettersPerHiraganaRun:  7.52,
		LettersPerKanjiRun:     -22.1,
		LettersPerKatakanaRun:  -5.3,
		TootenToKutenRatio:     -3.87,
		Constant:               -109.1,
	},
}

// LeeWeights is the Lee and Hasebe model over token statistics.
var LeeWeights = &WeightTable{
	Formula: LeeFormula,
	Keys: []FactorKey{
		MeanSentenceLength,
		KangoProportion,
		WagoProportion,
		VerbProportion,
		AuxiliaryVerbProportion,
		Constant,
	},
	Weights: map[FactorKey]float64{
		MeanSentenceLength:      -0.056,
		KangoProportion:         -0.126,
		WagoProportion:          -0.042,
		VerbProportion:          -0.145,
		AuxiliaryVerbProportion: -0.044,
		Constant:                11.724,
	},
}

// GetWeightTable returns the weight table for a formula, or nil if unknown.
func GetWeightTable(f Formula) *WeightTable {
	switch f {
	case TateisiFormula:
		return TateisiWeights
	case LeeFormula:
		return LeeWeights
	default:
		return nil
	}
}

// Factor is a single scored factor.
type Factor struct {
	Key      FactorKey `json:"key"`
	Value    float64   `json:"value"`
	Weight   float64   `json:"weight"`
	Weighted float64   `json:"weighted"`
}

// FormulaResult is the outcome of scoring one text with one formula.
type FormulaResult struct {
	Formula         Formula  `json:"formula"`
	Score           float64  `json:"score"`
	Factors         []Factor `json:"factors"`
	RawFactors      Factors  `json:"raw_factors"`
	WeightedFactors Factors  `json:"weighted_factors"`
	Level           string   `json:"level,omitempty"`
}
