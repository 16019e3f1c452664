// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/yomu/schema"
)

// Tagger splits one sentence into morphological tokens.
// This allows the scoring pipeline to be tested without a real dictionary.
type Tagger interface {
	// Name identifies the tagger and its dictionary. It is part of the tag cache key.
	Name() string

	// Tag tokenizes a single sentence. Malformed records are returned as tokens
	// that fail schema.Token.Valid so the caller can count them.
	Tag(ctx context.Context, sentence string) ([]schema.Token, error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetTagStore() CacheStore
	GetAnalysisStore() AnalysisStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// AnalysisStore defines the interface for tracking analysis runs and storing scores.
type AnalysisStore interface {
	// BeginAnalysis creates a new analysis run and returns its unique ID and UUID
	BeginAnalysis(startTime time.Time, configParams map[string]any) (int64, string, error)

	// EndAnalysis updates the analysis run with completion data
	EndAnalysis(analysisID int64, endTime time.Time, totalTitles int) error

	// RecordTitleScores stores both formula outcomes for a title
	RecordTitleScores(analysisID int64, record schema.TitleScoresRecord) error

	// GetStatus returns status information about the analysis store
	GetStatus() (schema.AnalysisStatus, error)

	// GetAllAnalysisRuns retrieves all analysis runs for export
	GetAllAnalysisRuns() ([]schema.AnalysisRunRecord, error)

	// GetAllTitleScores retrieves all title score rows for export
	GetAllTitleScores() ([]schema.TitleScoresRecord, error)

	// Close closes the underlying connection
	Close() error
}
