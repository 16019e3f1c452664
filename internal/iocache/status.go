package iocache

import (
	"io"
	"strconv"

	"github.com/huangsam/yomu/schema"

	"github.com/olekukonko/tablewriter"
)

const statusTimeLayout = "2006-01-02 15:04:05"

// PrintCacheStatus renders the tag cache status as a two-column table.
func PrintCacheStatus(w io.Writer, status schema.CacheStatus) error {
	rows := [][]string{
		{"Backend", status.Backend},
		{"Connected", strconv.FormatBool(status.Connected)},
	}
	if status.Connected {
		rows = append(rows, []string{"Cached Sentences", strconv.Itoa(status.TotalEntries)})
		if status.TotalEntries > 0 {
			rows = append(rows,
				[]string{"Last Entry", status.LastEntryTime.Format(statusTimeLayout)},
				[]string{"Oldest Entry Age", status.OldestEntryAge},
			)
		}
		rows = append(rows, []string{"Table Size (bytes)", strconv.FormatInt(status.TableSizeBytes, 10)})
	}
	return renderStatus(w, "Tag Cache", rows)
}

// PrintAnalysisStatus renders the analysis store status as a two-column table.
func PrintAnalysisStatus(w io.Writer, status schema.AnalysisStatus) error {
	rows := [][]string{
		{"Backend", status.Backend},
		{"Connected", strconv.FormatBool(status.Connected)},
	}
	if status.Connected {
		rows = append(rows, []string{"Scoring Runs", strconv.FormatInt(status.TotalRuns, 10)})
		if status.TotalRuns > 0 {
			rows = append(rows,
				[]string{"Last Run ID", strconv.FormatInt(status.LastRunID, 10)},
				[]string{"Last Run", status.LastRunTime.Format(statusTimeLayout)},
				[]string{"Oldest Run", status.OldestRunTime.Format(statusTimeLayout)},
			)
		}
		rows = append(rows, []string{"Title Scores", strconv.FormatInt(status.TotalTitleScores, 10)})
	}
	return renderStatus(w, "Analysis", rows)
}

func renderStatus(w io.Writer, store string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{store, "Value"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
