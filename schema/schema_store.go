package schema

import "time"

// CacheStatus represents the status of the tag cache.
type CacheStatus struct {
	Backend        string    `json:"backend"`
	Connected      bool      `json:"connected"`
	TotalEntries   int       `json:"total_entries"`
	LastEntryTime  time.Time `json:"last_entry_time"`
	OldestEntryAge string    `json:"oldest_entry_age"`
	TableSizeBytes int64     `json:"table_size_bytes"`
}

// AnalysisStatus represents the status of the analysis tracking store.
type AnalysisStatus struct {
	Backend          string    `json:"backend"`
	Connected        bool      `json:"connected"`
	TotalRuns        int64     `json:"total_runs"`
	LastRunID        int64     `json:"last_run_id"`
	LastRunTime      time.Time `json:"last_run_time"`
	OldestRunTime    time.Time `json:"oldest_run_time"`
	TotalTitleScores int64     `json:"total_title_scores"`
}

// AnalysisRunRecord is a row of the analysis runs table.
type AnalysisRunRecord struct {
	AnalysisID    int64
	RunUUID       string
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	TotalTitles   int32
	ConfigParams  *string
}

// TitleScoresRecord is a row of the title scores table.
type TitleScoresRecord struct {
	AnalysisID     int64
	Title          string
	AnalysisTime   time.Time
	Characters     int32
	Sentences      int32
	Tokens         int32
	TateisiScore   *float64
	LeeScore       *float64
	LeeLevel       *string
	TateisiFactors *string
	LeeFactors     *string
}
