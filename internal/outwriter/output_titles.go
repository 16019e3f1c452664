package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/yomu/core/algo"
	"github.com/huangsam/yomu/internal/contract"
	"github.com/huangsam/yomu/internal/parquet"
	"github.com/huangsam/yomu/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const (
	topNFactors = 3
	missingCell = "n/a"
)

// WriteTitleResults outputs the corpus results, dispatching based on the output format configured.
func WriteTitleResults(output *schema.CorpusOutput, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	enriched := schema.EnrichTitles(output.Results)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONTitleResults(w, output, enriched)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVTitleResults(w, enriched, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetTitleResults(enriched, cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTitleTable(w, enriched, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table")
	}
}

// writeTitleTable generates and writes the human-readable table.
func writeTitleTable(w io.Writer, results []schema.EnrichedTitleResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	headers := []string{"Rank", "Title", "Tateisi", "Lee", "Level"}
	if cfg.Detail {
		headers = append(headers, "Chars", "Letters", "Sentences", "Tokens")
	}
	if cfg.Explain {
		headers = append(headers, "Explain")
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	titleWidth := GetMaxTableTitleWidth(cfg)
	var data [][]string
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Rank),
			contract.TruncateTitle(r.Title, titleWidth),
			formatScoreCell(r.Tateisi, fmtFloat, cfg.UseColors),
			formatScoreCell(r.Lee, fmtFloat, cfg.UseColors),
			formatLevelCell(r.Lee, cfg.UseColors),
		}
		if cfg.Detail {
			row = append(
				row,
				fmt.Sprintf(intFmt, r.Characters),
				fmt.Sprintf(intFmt, r.Letters),
				fmt.Sprintf(intFmt, r.Sentences),
				fmt.Sprintf(intFmt, r.Tokens),
			)
		}
		if cfg.Explain {
			row = append(row, formatTopFactors(r.Tateisi))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	scored := 0
	for _, r := range results {
		if r.Tateisi != nil || r.Lee != nil {
			scored++
		}
	}
	if _, err := fmt.Fprintf(w, "Showing %d titles (%d with at least one score)\n", len(results), scored); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Scoring completed in %v with %d workers. Tagger: %s. Cache backend: %s\n", duration, cfg.Workers, cfg.Tagger, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// formatScoreCell renders a formula score, or a marker when it could not be computed.
func formatScoreCell(r *schema.FormulaResult, fmtFloat func(float64) string, useColors bool) string {
	if r == nil {
		if useColors {
			return contract.ErrorColor.Sprint(missingCell)
		}
		return missingCell
	}
	return fmtFloat(r.Score)
}

// formatLevelCell renders the Lee level of a result.
func formatLevelCell(lee *schema.FormulaResult, useColors bool) string {
	switch {
	case lee == nil:
		return ""
	case useColors:
		return contract.GetColorLevel(lee.Score)
	default:
		return lee.Level
	}
}

// formatTopFactors names the factors that moved the score the most.
func formatTopFactors(r *schema.FormulaResult) string {
	top := algo.TopContributors(r, topNFactors)
	if len(top) == 0 {
		return "Not applicable"
	}
	parts := make([]string, len(top))
	for i, f := range top {
		parts[i] = factorDisplayName(f.Key)
	}
	return strings.Join(parts, " > ")
}

// factorDisplayName turns a factor key into a lowercase label.
func factorDisplayName(key schema.FactorKey) string {
	return strings.ToLower(string(key))
}

// writeCSVTitleResults writes the ranked results in CSV format.
func writeCSVTitleResults(w io.Writer, results []schema.EnrichedTitleResult, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"title",
		"path",
		"characters",
		"letters",
		"sentences",
		"tokens",
		"skipped_tokens",
		"tateisi_score",
		"lee_score",
		"lee_level",
		"tateisi_error",
		"lee_error",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range results {
			var tateisi, lee *float64
			level := ""
			if r.Tateisi != nil {
				tateisi = &r.Tateisi.Score
			}
			if r.Lee != nil {
				lee = &r.Lee.Score
				level = r.Lee.Level
			}
			rec := []string{
				strconv.Itoa(r.Rank),
				r.Title,
				r.Path,
				fmt.Sprintf(intFmt, r.Characters),
				fmt.Sprintf(intFmt, r.Letters),
				fmt.Sprintf(intFmt, r.Sentences),
				fmt.Sprintf(intFmt, r.Tokens),
				fmt.Sprintf(intFmt, r.Skipped),
				fmtOptional(tateisi, fmtFloat),
				fmtOptional(lee, fmtFloat),
				level,
				r.TateisiErr,
				r.LeeErr,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONTitleResults writes the ranked results with the run identifiers.
func writeJSONTitleResults(w io.Writer, output *schema.CorpusOutput, results []schema.EnrichedTitleResult) error {
	type jsonCorpusOutput struct {
		AnalysisID int64                        `json:"analysis_id,omitempty"`
		RunUUID    string                       `json:"run_uuid,omitempty"`
		Results    []schema.EnrichedTitleResult `json:"results"`
	}
	return writeJSON(w, jsonCorpusOutput{
		AnalysisID: output.AnalysisID,
		RunUUID:    output.RunUUID,
		Results:    results,
	})
}

// writeParquetTitleResults writes the ranked results as one parquet row per title.
func writeParquetTitleResults(results []schema.EnrichedTitleResult, outputFile string) error {
	if outputFile == "" {
		return errors.New("parquet output requires an output file")
	}
	if err := parquet.WriteTitleResultsParquet(parquet.ConvertTitleResults(results), outputFile); err != nil {
		return fmt.Errorf("error writing parquet output: %w", err)
	}
	reportWritten("Wrote Parquet", outputFile)
	return nil
}
