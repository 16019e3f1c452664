package schema

// EnrichedTitleResult adds presentation data to a TitleResult.
type EnrichedTitleResult struct {
	Rank int `json:"rank"`
	TitleResult
}

// Lee readability levels, from easiest to hardest.
const (
	LowerElementary    = "Lower elementary"
	UpperElementary    = "Upper elementary"
	LowerIntermediate  = "Lower intermediate"
	UpperIntermediate  = "Upper intermediate"
	LowerAdvanced      = "Lower advanced"
	UpperAdvanced      = "Upper advanced"
	UnclassifiedLevel  = "Unclassified"
	leeLevelUpperBound = 6.5
	leeLevelLowerBound = 0.5
)

// GetLeeLevel maps a Lee score onto its six-band difficulty scale.
// Scores outside [0.5, 6.5) are unclassified.
func GetLeeLevel(score float64) string {
	switch {
	case score >= leeLevelUpperBound || score < leeLevelLowerBound:
		return UnclassifiedLevel
	case score >= 5.5:
		return LowerElementary
	case score >= 4.5:
		return UpperElementary
	case score >= 3.5:
		return LowerIntermediate
	case score >= 2.5:
		return UpperIntermediate
	case score >= 1.5:
		return LowerAdvanced
	default:
		return UpperAdvanced
	}
}

// EnrichTitles adds rank to a list of title results.
func EnrichTitles(results []TitleResult) []EnrichedTitleResult {
	output := make([]EnrichedTitleResult, len(results))
	for i, r := range results {
		output[i] = EnrichedTitleResult{
			Rank:        i + 1,
			TitleResult: r,
		}
	}
	return output
}

// CharClass is one classified character of the classify command.
type CharClass struct {
	Index     int    `json:"index"`
	Char      string `json:"char"`
	CodePoint string `json:"code_point"`
	Category  string `json:"category"`
}

// FormulaWeight is one weighted factor of a formula definition.
type FormulaWeight struct {
	Factor FactorKey `json:"factor"`
	Weight float64   `json:"weight"`
}

// FormulaDefinition describes one readability formula for display.
type FormulaDefinition struct {
	Formula    Formula         `json:"formula"`
	Purpose    string          `json:"purpose"`
	Weights    []FormulaWeight `json:"weights"`
	Expression string          `json:"expression"`
}
