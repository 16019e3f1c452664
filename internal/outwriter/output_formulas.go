package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/yomu/internal/contract"
	"github.com/huangsam/yomu/schema"
)

// formulaPurposes describes what each formula measures.
var formulaPurposes = map[schema.Formula]string{
	schema.TateisiFormula: "Character run statistics - higher scores read more easily",
	schema.LeeFormula:     "Word origin and part of speech - scores map onto six learner levels",
}

// WriteFormulas displays the weight tables of the readability formulas.
func WriteFormulas(tables []*schema.WeightTable, cfg *contract.Config) error {
	defs := buildFormulaDefinitions(tables)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, defs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVFormulas(w, defs)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errors.New("parquet output is not supported for formulas")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFormulasText(w, defs, cfg)
		}, "Wrote text")
	}
}

// buildFormulaDefinitions lists the weights of each table in enumeration order.
func buildFormulaDefinitions(tables []*schema.WeightTable) []schema.FormulaDefinition {
	defs := make([]schema.FormulaDefinition, 0, len(tables))
	for _, table := range tables {
		weights := make([]schema.FormulaWeight, 0, table.Len())
		for _, key := range table.Keys {
			weight, _ := table.Weight(key)
			weights = append(weights, schema.FormulaWeight{Factor: key, Weight: weight})
		}
		defs = append(defs, schema.FormulaDefinition{
			Formula:    table.Formula,
			Purpose:    formulaPurposes[table.Formula],
			Weights:    weights,
			Expression: formatExpression(weights),
		})
	}
	return defs
}

// formatExpression renders the linear model, with the constant as a bare term.
func formatExpression(weights []schema.FormulaWeight) string {
	parts := make([]string, 0, len(weights))
	for _, w := range weights {
		if w.Factor == schema.Constant {
			parts = append(parts, fmt.Sprintf("%.3f", w.Weight))
			continue
		}
		parts = append(parts, fmt.Sprintf("%.3f*%s", w.Weight, factorDisplayName(w.Factor)))
	}
	return strings.Join(parts, " + ")
}

func writeFormulasText(w io.Writer, defs []schema.FormulaDefinition, cfg *contract.Config) error {
	title := "Readability Formulas"
	if cfg.UseEmojis {
		title = "📖 " + title
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", title, strings.Repeat("=", 24)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "All scores = constant + weighted sum of raw factors\n\n"); err != nil {
		return err
	}

	for _, def := range defs {
		if _, err := fmt.Fprintf(w, "%s: %s\n", formulaDisplayName(def.Formula, cfg.UseEmojis), def.Purpose); err != nil {
			return err
		}
		names := make([]string, 0, len(def.Weights))
		for _, fw := range def.Weights {
			if fw.Factor != schema.Constant {
				names = append(names, factorDisplayName(fw.Factor))
			}
		}
		if _, err := fmt.Fprintf(w, "   Factors: %s\n", strings.Join(names, ", ")); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: Score = %s\n\n", def.Expression); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVFormulas(w io.Writer, defs []schema.FormulaDefinition) error {
	header := []string{"formula", "factor", "weight"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, def := range defs {
			for _, fw := range def.Weights {
				rec := []string{string(def.Formula), string(fw.Factor), strconv.FormatFloat(fw.Weight, 'f', -1, 64)}
				if err := cw.Write(rec); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
		return nil
	})
}
