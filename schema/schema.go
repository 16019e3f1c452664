// Package schema has configs, models and constants for all parts of yomu.
package schema

// Text is one corpus entry loaded into memory.
type Text struct {
	Title string `json:"title"` // File name without extension
	Path  string `json:"path"`  // Source path on disk (empty for inline text)
	Body  string `json:"-"`     // Full text content
}

// TitleResult bundles both formula outcomes for one text.
// A nil formula result means that formula could not be computed; the reason
// is kept in the matching error field.
type TitleResult struct {
	Title      string         `json:"title"`
	Path       string         `json:"path,omitempty"`
	Characters int            `json:"characters"`
	Letters    int            `json:"letters"`
	Sentences  int            `json:"sentences"`
	Tokens     int            `json:"tokens"`
	Skipped    int            `json:"skipped_tokens"`
	Tateisi    *FormulaResult `json:"tateisi,omitempty"`
	Lee        *FormulaResult `json:"lee,omitempty"`
	TateisiErr string         `json:"tateisi_error,omitempty"`
	LeeErr     string         `json:"lee_error,omitempty"`
}

// Result returns the formula result for f, or nil.
func (r *TitleResult) Result(f Formula) *FormulaResult {
	switch f {
	case TateisiFormula:
		return r.Tateisi
	case LeeFormula:
		return r.Lee
	default:
		return nil
	}
}

// ErrorFor returns the recorded failure reason for f.
func (r *TitleResult) ErrorFor(f Formula) string {
	switch f {
	case TateisiFormula:
		return r.TateisiErr
	case LeeFormula:
		return r.LeeErr
	default:
		return ""
	}
}

// CorpusOutput is what a corpus run hands to the writers.
type CorpusOutput struct {
	Results    []TitleResult `json:"results"`
	AnalysisID int64         `json:"analysis_id,omitempty"`
	RunUUID    string        `json:"run_uuid,omitempty"`
}
