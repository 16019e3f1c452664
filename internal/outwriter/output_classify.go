package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/yomu/internal/contract"
	"github.com/huangsam/yomu/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteClassification outputs the category of every character.
func WriteClassification(chars []schema.CharClass, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, chars)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVClassification(w, chars)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errors.New("parquet output is not supported for classification")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeClassificationTable(w, chars)
		}, "Wrote table")
	}
}

func writeClassificationTable(w io.Writer, chars []schema.CharClass) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Index", "Char", "Code Point", "Category"})

	var data [][]string
	counts := make(map[string]int)
	for _, c := range chars {
		data = append(data, []string{strconv.Itoa(c.Index), c.Char, c.CodePoint, c.Category})
		counts[c.Category]++
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	letters := 0
	for _, cat := range schema.LetterCategories {
		letters += counts[cat.String()]
	}
	_, err := fmt.Fprintf(w, "Classified %d characters (%d letters)\n", len(chars), letters)
	return err
}

func writeCSVClassification(w io.Writer, chars []schema.CharClass) error {
	header := []string{"index", "char", "code_point", "category"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, c := range chars {
			if err := cw.Write([]string{strconv.Itoa(c.Index), c.Char, c.CodePoint, c.Category}); err != nil {
				return err
			}
		}
		return nil
	})
}
