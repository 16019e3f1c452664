package iocache

import (
	"errors"
	"fmt"

	"github.com/huangsam/yomu/internal/contract"
	"github.com/huangsam/yomu/internal/parquet"
)

// ExportFiles names the two parquet files written for an export prefix.
func ExportFiles(outputFile string) (runsFile, scoresFile string) {
	return outputFile + ".analysis_runs.parquet", outputFile + ".title_scores.parquet"
}

// ExecuteAnalysisExport writes all tracked runs and title scores to Parquet files.
func ExecuteAnalysisExport(store contract.AnalysisStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("analysis store is not initialized")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get analysis status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no analysis data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total analysis runs: %d\n", status.TotalRuns)
	fmt.Printf("Total title scores: %d\n", status.TotalTitleScores)

	runs, err := store.GetAllAnalysisRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve analysis runs: %w", err)
	}
	scores, err := store.GetAllTitleScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve title scores: %w", err)
	}

	runsFile, scoresFile := ExportFiles(outputFile)

	parquetRuns := parquet.ConvertAnalysisRunRecords(runs)
	if err := parquet.WriteAnalysisRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write analysis runs: %w", err)
	}
	fmt.Printf("Exported %d analysis runs to: %s\n", len(parquetRuns), runsFile)

	parquetScores := parquet.ConvertTitleScoresRecords(scores)
	if err := parquet.WriteTitleScoresParquet(parquetScores, scoresFile); err != nil {
		return fmt.Errorf("failed to write title scores: %w", err)
	}
	fmt.Printf("Exported %d title score records to: %s\n", len(parquetScores), scoresFile)

	return nil
}
