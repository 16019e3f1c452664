// Package parquet provides data structures and functions for exporting yomu
// scoring runs to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/yomu/schema"
	"github.com/parquet-go/parquet-go"
)

// AnalysisRun represents a single scoring run with metadata.
// This struct maps to the yomu_analysis_runs database table.
type AnalysisRun struct {
	AnalysisID int64 `parquet:"analysis_id,snappy"`

	// RunUUID identifies the run across databases
	RunUUID string `parquet:"run_uuid,snappy"`

	StartTime time.Time  `parquet:"start_time,snappy"`
	EndTime   *time.Time `parquet:"end_time,optional,snappy"`

	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalTitles is the number of titles scored in this run
	TotalTitles int32 `parquet:"total_titles,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// TitleScores represents both formula outcomes for one title in a run.
// This struct maps to the yomu_title_scores database table.
type TitleScores struct {
	AnalysisID   int64     `parquet:"analysis_id,snappy"`
	Title        string    `parquet:"title,snappy"`
	AnalysisTime time.Time `parquet:"analysis_time,snappy"`

	Characters int32 `parquet:"characters,snappy"`
	Sentences  int32 `parquet:"sentences,snappy"`
	Tokens     int32 `parquet:"tokens,snappy"`

	// Scores are null when the formula had insufficient data
	TateisiScore *float64 `parquet:"tateisi_score,optional,snappy"`
	LeeScore     *float64 `parquet:"lee_score,optional,snappy"`
	LeeLevel     *string  `parquet:"lee_level,optional,snappy"`

	// Factor maps are JSON-encoded
	TateisiFactors *string `parquet:"tateisi_factors,optional,snappy"`
	LeeFactors     *string `parquet:"lee_factors,optional,snappy"`
}

// TitleResult is a flattened scoring result for the parquet output mode.
type TitleResult struct {
	Rank         int32    `parquet:"rank,snappy"`
	Title        string   `parquet:"title,snappy"`
	Path         string   `parquet:"path,snappy"`
	Characters   int32    `parquet:"characters,snappy"`
	Letters      int32    `parquet:"letters,snappy"`
	Sentences    int32    `parquet:"sentences,snappy"`
	Tokens       int32    `parquet:"tokens,snappy"`
	TateisiScore *float64 `parquet:"tateisi_score,optional,snappy"`
	LeeScore     *float64 `parquet:"lee_score,optional,snappy"`
	LeeLevel     string   `parquet:"lee_level,snappy"`
}

// writeParquet writes rows of any struct type to a new file at outputPath.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the struct tags of T
	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteAnalysisRunsParquet writes a slice of AnalysisRun structs to a Parquet file.
func WriteAnalysisRunsParquet(data []AnalysisRun, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteTitleScoresParquet writes a slice of TitleScores structs to a Parquet file.
func WriteTitleScoresParquet(data []TitleScores, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteTitleResultsParquet writes ranked scoring results to a Parquet file.
func WriteTitleResultsParquet(data []TitleResult, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertAnalysisRunRecords converts schema.AnalysisRunRecord to AnalysisRun for Parquet export.
func ConvertAnalysisRunRecords(records []schema.AnalysisRunRecord) []AnalysisRun {
	result := make([]AnalysisRun, len(records))
	for i, record := range records {
		result[i] = AnalysisRun{
			AnalysisID:    record.AnalysisID,
			RunUUID:       record.RunUUID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			TotalTitles:   record.TotalTitles,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertTitleScoresRecords converts schema.TitleScoresRecord to TitleScores for Parquet export.
func ConvertTitleScoresRecords(records []schema.TitleScoresRecord) []TitleScores {
	result := make([]TitleScores, len(records))
	for i, record := range records {
		result[i] = TitleScores{
			AnalysisID:     record.AnalysisID,
			Title:          record.Title,
			AnalysisTime:   record.AnalysisTime,
			Characters:     record.Characters,
			Sentences:      record.Sentences,
			Tokens:         record.Tokens,
			TateisiScore:   record.TateisiScore,
			LeeScore:       record.LeeScore,
			LeeLevel:       record.LeeLevel,
			TateisiFactors: record.TateisiFactors,
			LeeFactors:     record.LeeFactors,
		}
	}
	return result
}

// ConvertTitleResults flattens enriched results for the parquet output mode.
func ConvertTitleResults(results []schema.EnrichedTitleResult) []TitleResult {
	out := make([]TitleResult, len(results))
	for i, r := range results {
		row := TitleResult{
			Rank:       int32(r.Rank),
			Title:      r.Title,
			Path:       r.Path,
			Characters: int32(r.Characters),
			Letters:    int32(r.Letters),
			Sentences:  int32(r.Sentences),
			Tokens:     int32(r.Tokens),
		}
		if r.Tateisi != nil {
			score := r.Tateisi.Score
			row.TateisiScore = &score
		}
		if r.Lee != nil {
			score := r.Lee.Score
			row.LeeScore = &score
			row.LeeLevel = r.Lee.Level
		}
		out[i] = row
	}
	return out
}
