package iocache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/yomu/internal/contract"
	"github.com/huangsam/yomu/schema"
)

// Table names for analysis tracking.
const (
	analysisRunsTable = "yomu_analysis_runs"
	titleScoresTable  = "yomu_title_scores"
)

// AnalysisStoreImpl implements the AnalysisStore interface.
type AnalysisStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.AnalysisStore = &AnalysisStoreImpl{} // Compile-time check

// NewAnalysisStore creates a new AnalysisStore with the specified backend.
func NewAnalysisStore(backend schema.DatabaseBackend, connStr string) (contract.AnalysisStore, error) {
	if backend == schema.NoneBackend {
		// Return a no-op store for disabled tracking
		return &AnalysisStoreImpl{backend: backend}, nil
	}

	db, err := openDatabase(backend, connStr, GetAnalysisDBFilePath())
	if err != nil {
		return nil, fmt.Errorf("analysis store: %w", err)
	}

	if err := createAnalysisTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create analysis tables: %w", err)
	}

	return &AnalysisStoreImpl{db: db, backend: backend}, nil
}

// createAnalysisTables creates the analysis tracking tables.
func createAnalysisTables(db *sql.DB, backend schema.DatabaseBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{analysisRunsTable, getCreateAnalysisRunsQuery(backend)},
		{titleScoresTable, getCreateTitleScoresQuery(backend)},
	}
	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}
	return nil
}

// getCreateAnalysisRunsQuery returns the CREATE TABLE query for yomu_analysis_runs.
func getCreateAnalysisRunsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(analysisRunsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				analysis_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				run_uuid CHAR(36) NOT NULL,
				start_time DATETIME(6) NOT NULL,
				end_time DATETIME(6),
				run_duration_ms INT,
				total_titles INT NOT NULL DEFAULT 0,
				config_params TEXT
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				analysis_id BIGSERIAL PRIMARY KEY,
				run_uuid UUID NOT NULL,
				start_time TIMESTAMPTZ NOT NULL,
				end_time TIMESTAMPTZ,
				run_duration_ms INT,
				total_titles INT NOT NULL DEFAULT 0,
				config_params TEXT
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				analysis_id INTEGER PRIMARY KEY AUTOINCREMENT,
				run_uuid TEXT NOT NULL,
				start_time TEXT NOT NULL,
				end_time TEXT,
				run_duration_ms INTEGER,
				total_titles INTEGER NOT NULL DEFAULT 0,
				config_params TEXT
			);
		`, quotedTableName)
	}
}

// getCreateTitleScoresQuery returns the CREATE TABLE query for yomu_title_scores.
func getCreateTitleScoresQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(titleScoresTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				analysis_id BIGINT NOT NULL,
				title VARCHAR(255) NOT NULL,
				analysis_time DATETIME(6) NOT NULL,
				characters INT NOT NULL,
				sentences INT NOT NULL,
				tokens INT NOT NULL,
				tateisi_score DOUBLE,
				lee_score DOUBLE,
				lee_level VARCHAR(50),
				tateisi_factors TEXT,
				lee_factors TEXT,
				PRIMARY KEY (analysis_id, title)
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				analysis_id BIGINT NOT NULL,
				title TEXT NOT NULL,
				analysis_time TIMESTAMPTZ NOT NULL,
				characters INT NOT NULL,
				sentences INT NOT NULL,
				tokens INT NOT NULL,
				tateisi_score DOUBLE PRECISION,
				lee_score DOUBLE PRECISION,
				lee_level TEXT,
				tateisi_factors TEXT,
				lee_factors TEXT,
				PRIMARY KEY (analysis_id, title)
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				analysis_id INTEGER NOT NULL,
				title TEXT NOT NULL,
				analysis_time TEXT NOT NULL,
				characters INTEGER NOT NULL,
				sentences INTEGER NOT NULL,
				tokens INTEGER NOT NULL,
				tateisi_score REAL,
				lee_score REAL,
				lee_level TEXT,
				tateisi_factors TEXT,
				lee_factors TEXT,
				PRIMARY KEY (analysis_id, title)
			);
		`, quotedTableName)
	}
}

// BeginAnalysis creates a new analysis run and returns its unique ID and UUID.
func (as *AnalysisStoreImpl) BeginAnalysis(startTime time.Time, configParams map[string]any) (int64, string, error) {
	if as.backend == schema.NoneBackend || as.db == nil {
		return 0, "", nil
	}

	configJSON, err := json.Marshal(configParams)
	if err != nil {
		return 0, "", fmt.Errorf("failed to marshal config params: %w", err)
	}

	runUUID := uuid.NewString()
	quotedTableName := quoteTableName(analysisRunsTable, as.backend)

	var analysisID int64
	switch as.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (run_uuid, start_time, config_params) VALUES ($1, $2, $3) RETURNING analysis_id`, quotedTableName)
		err = as.db.QueryRow(query, runUUID, startTime, string(configJSON)).Scan(&analysisID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (run_uuid, start_time, config_params) VALUES (?, ?, ?)`, quotedTableName)
		var result sql.Result
		result, err = as.db.Exec(query, runUUID, formatTime(startTime, as.backend), string(configJSON))
		if err == nil {
			analysisID, err = result.LastInsertId()
		}
	}
	if err != nil {
		return 0, "", fmt.Errorf("failed to insert analysis run: %w", err)
	}

	return analysisID, runUUID, nil
}

// EndAnalysis updates the analysis run with completion data.
func (as *AnalysisStoreImpl) EndAnalysis(analysisID int64, endTime time.Time, totalTitles int) error {
	if as.backend == schema.NoneBackend || as.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(analysisRunsTable, as.backend)
	row := as.db.QueryRow(rebind(fmt.Sprintf(`SELECT start_time FROM %s WHERE analysis_id = ?`, quotedTableName), as.backend), analysisID)

	startTime, err := as.scanTime(row)
	if err != nil {
		return fmt.Errorf("failed to get start_time for analysis %d: %w", analysisID, err)
	}
	durationMs := endTime.Sub(startTime).Milliseconds()

	updateQuery := rebind(fmt.Sprintf(`UPDATE %s SET end_time = ?, run_duration_ms = ?, total_titles = ? WHERE analysis_id = ?`, quotedTableName), as.backend)
	if _, err := as.db.Exec(updateQuery, formatTime(endTime, as.backend), durationMs, totalTitles, analysisID); err != nil {
		return fmt.Errorf("failed to update analysis run: %w", err)
	}
	return nil
}

// RecordTitleScores stores both formula outcomes for a title.
func (as *AnalysisStoreImpl) RecordTitleScores(analysisID int64, record schema.TitleScoresRecord) error {
	if as.backend == schema.NoneBackend || as.db == nil {
		return nil
	}

	query := rebind(fmt.Sprintf(`
		INSERT INTO %s (analysis_id, title, analysis_time, characters, sentences, tokens,
		                tateisi_score, lee_score, lee_level, tateisi_factors, lee_factors)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, quoteTableName(titleScoresTable, as.backend)), as.backend)

	_, err := as.db.Exec(query,
		analysisID, record.Title, formatTime(record.AnalysisTime, as.backend),
		record.Characters, record.Sentences, record.Tokens,
		record.TateisiScore, record.LeeScore, record.LeeLevel,
		record.TateisiFactors, record.LeeFactors,
	)
	if err != nil {
		return fmt.Errorf("failed to insert title scores: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (as *AnalysisStoreImpl) Close() error {
	if as.db != nil {
		return as.db.Close()
	}
	return nil
}

// GetStatus returns status information about the analysis store.
func (as *AnalysisStoreImpl) GetStatus() (schema.AnalysisStatus, error) {
	status := schema.AnalysisStatus{
		Backend:   string(as.backend),
		Connected: as.db != nil,
	}
	if as.backend == schema.NoneBackend || as.db == nil {
		return status, nil
	}

	runsTable := quoteTableName(analysisRunsTable, as.backend)

	if err := as.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", runsTable)).Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}
	scoresQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(titleScoresTable, as.backend))
	if err := as.db.QueryRow(scoresQuery).Scan(&status.TotalTitleScores); err != nil {
		return status, fmt.Errorf("failed to get total title scores: %w", err)
	}
	if status.TotalRuns == 0 {
		return status, nil
	}

	row := as.db.QueryRow(fmt.Sprintf("SELECT analysis_id FROM %s ORDER BY analysis_id DESC LIMIT 1", runsTable))
	if err := row.Scan(&status.LastRunID); err != nil {
		return status, fmt.Errorf("failed to get last run id: %w", err)
	}

	lastRunTime, err := as.scanTime(as.db.QueryRow(fmt.Sprintf("SELECT start_time FROM %s ORDER BY analysis_id DESC LIMIT 1", runsTable)))
	if err != nil {
		return status, fmt.Errorf("failed to get last run time: %w", err)
	}
	status.LastRunTime = lastRunTime

	oldestRunTime, err := as.scanTime(as.db.QueryRow(fmt.Sprintf("SELECT start_time FROM %s ORDER BY analysis_id ASC LIMIT 1", runsTable)))
	if err != nil {
		return status, fmt.Errorf("failed to get oldest run time: %w", err)
	}
	status.OldestRunTime = oldestRunTime

	return status, nil
}

// GetAllAnalysisRuns retrieves all analysis runs from the store.
func (as *AnalysisStoreImpl) GetAllAnalysisRuns() ([]schema.AnalysisRunRecord, error) {
	if as.backend == schema.NoneBackend || as.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf("SELECT analysis_id, run_uuid, start_time, end_time, run_duration_ms, total_titles, config_params FROM %s ORDER BY analysis_id",
		quoteTableName(analysisRunsTable, as.backend))
	rows, err := as.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.AnalysisRunRecord
	for rows.Next() {
		var record schema.AnalysisRunRecord

		switch as.backend {
		case schema.SQLiteBackend:
			var startTimeStr string
			var endTimeStr *string
			if err := rows.Scan(&record.AnalysisID, &record.RunUUID, &startTimeStr, &endTimeStr, &record.RunDurationMs, &record.TotalTitles, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan analysis run: %w", err)
			}
			if record.StartTime, err = parseTime(startTimeStr); err != nil {
				return nil, fmt.Errorf("failed to parse start_time: %w", err)
			}
			if endTimeStr != nil {
				endTime, err := parseTime(*endTimeStr)
				if err != nil {
					return nil, fmt.Errorf("failed to parse end_time: %w", err)
				}
				record.EndTime = &endTime
			}
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.AnalysisID, &record.RunUUID, &record.StartTime, &record.EndTime, &record.RunDurationMs, &record.TotalTitles, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan analysis run: %w", err)
			}
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analysis runs: %w", err)
	}
	return results, nil
}

// GetAllTitleScores retrieves all title score rows from the store.
func (as *AnalysisStoreImpl) GetAllTitleScores() ([]schema.TitleScoresRecord, error) {
	if as.backend == schema.NoneBackend || as.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT analysis_id, title, analysis_time, characters, sentences, tokens,
		tateisi_score, lee_score, lee_level, tateisi_factors, lee_factors
		FROM %s ORDER BY analysis_id, title`, quoteTableName(titleScoresTable, as.backend))
	rows, err := as.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query title scores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.TitleScoresRecord
	for rows.Next() {
		var record schema.TitleScoresRecord
		var analysisTimeStr string
		var analysisTime any = &record.AnalysisTime
		if as.backend == schema.SQLiteBackend {
			analysisTime = &analysisTimeStr
		}
		if err := rows.Scan(&record.AnalysisID, &record.Title, analysisTime,
			&record.Characters, &record.Sentences, &record.Tokens,
			&record.TateisiScore, &record.LeeScore, &record.LeeLevel,
			&record.TateisiFactors, &record.LeeFactors); err != nil {
			return nil, fmt.Errorf("failed to scan title scores: %w", err)
		}
		if as.backend == schema.SQLiteBackend {
			if record.AnalysisTime, err = parseTime(analysisTimeStr); err != nil {
				return nil, fmt.Errorf("failed to parse analysis_time: %w", err)
			}
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating title scores: %w", err)
	}
	return results, nil
}

// scanTime reads a single timestamp column, which SQLite stores as text.
func (as *AnalysisStoreImpl) scanTime(row *sql.Row) (time.Time, error) {
	if as.backend == schema.SQLiteBackend {
		var s string
		if err := row.Scan(&s); err != nil {
			return time.Time{}, err
		}
		return parseTime(s)
	}
	var t time.Time
	err := row.Scan(&t)
	return t, err
}
