package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/yomu/internal/contract"
	"github.com/huangsam/yomu/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteTitleDetail outputs the factor breakdown of a single text.
func WriteTitleDetail(result schema.TitleResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVTitleDetail(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetTitleResults(schema.EnrichTitles([]schema.TitleResult{result}), cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTitleDetailText(w, result, cfg, fmtFloat, intFmt, duration)
		}, "Wrote text")
	}
}

// writeTitleDetailText prints the counts and one factor table per formula.
func writeTitleDetailText(w io.Writer, result schema.TitleResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	counts := fmt.Sprintf("Characters: "+intFmt+"  Letters: "+intFmt+"  Sentences: "+intFmt+"  Tokens: "+intFmt+"  Skipped: "+intFmt,
		result.Characters, result.Letters, result.Sentences, result.Tokens, result.Skipped)
	if _, err := fmt.Fprintf(w, "%s\n\n", counts); err != nil {
		return err
	}

	for _, f := range []schema.Formula{schema.TateisiFormula, schema.LeeFormula} {
		if err := writeFormulaBreakdown(w, f, &result, cfg, fmtFloat); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Scoring completed in %v. Tagger: %s\n", duration, cfg.Tagger)
	return err
}

// writeFormulaBreakdown prints the factors of one formula with their weights.
func writeFormulaBreakdown(w io.Writer, f schema.Formula, result *schema.TitleResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	r := result.Result(f)
	if r == nil {
		reason := result.ErrorFor(f)
		if cfg.UseColors {
			reason = contract.ErrorColor.Sprint(reason)
		}
		_, err := fmt.Fprintf(w, "%s: %s\n\n", formulaDisplayName(f, cfg.UseEmojis), reason)
		return err
	}

	header := fmt.Sprintf("%s: %s", formulaDisplayName(f, cfg.UseEmojis), fmtFloat(r.Score))
	if r.Level != "" {
		level := r.Level
		if cfg.UseColors {
			level = contract.GetColorLevel(r.Score)
		}
		header += fmt.Sprintf(" (%s)", level)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Factor", "Value", "Weight", "Weighted"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, factor := range r.Factors {
		data = append(data, []string{
			factorDisplayName(factor.Key),
			fmtFloat(factor.Value),
			fmtFloat(factor.Weight),
			fmtFloat(factor.Weighted),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// writeCSVTitleDetail writes one row per formula factor.
func writeCSVTitleDetail(w io.Writer, result schema.TitleResult, fmtFloat func(float64) string) error {
	header := []string{"formula", "factor", "value", "weight", "weighted"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, f := range []schema.Formula{schema.TateisiFormula, schema.LeeFormula} {
			r := result.Result(f)
			if r == nil {
				continue
			}
			for _, factor := range r.Factors {
				rec := []string{
					string(f),
					string(factor.Key),
					fmtFloat(factor.Value),
					fmtFloat(factor.Weight),
					fmtFloat(factor.Weighted),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// formulaDisplayName returns the display name for a formula, with an emoji when enabled.
func formulaDisplayName(f schema.Formula, useEmojis bool) string {
	switch f {
	case schema.TateisiFormula:
		if useEmojis {
			return "📏 TATEISI"
		}
		return "TATEISI"
	case schema.LeeFormula:
		if useEmojis {
			return "📚 LEE"
		}
		return "LEE"
	default:
		return string(f)
	}
}
