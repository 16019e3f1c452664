package iocache

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/huangsam/yomu/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTime() time.Time {
	return time.Date(2026, 4, 2, 10, 30, 0, 123456000, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func TestAnalysisStore_NoneBackend(t *testing.T) {
	store, err := NewAnalysisStore(schema.NoneBackend, "")
	require.NoError(t, err)

	id, runUUID, err := store.BeginAnalysis(time.Now(), map[string]any{"k": "v"})
	assert.NoError(t, err)
	assert.Zero(t, id)
	assert.Empty(t, runUUID)

	assert.NoError(t, store.EndAnalysis(1, time.Now(), 10))
	assert.NoError(t, store.RecordTitleScores(1, schema.TitleScoresRecord{Title: "x"}))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)

	runs, err := store.GetAllAnalysisRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	assert.NoError(t, store.Close())
}

func TestAnalysisStore_SQLite(t *testing.T) {
	store, err := NewAnalysisStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	start := testTime()
	id, runUUID, err := store.BeginAnalysis(start, map[string]any{"tagger": "kagome", "limit": 100})
	require.NoError(t, err)
	assert.Positive(t, id)
	assert.Len(t, runUUID, 36)

	factors, err := json.Marshal(schema.Factors{schema.HiraganaRunsPercentage: 41.2})
	require.NoError(t, err)

	record := schema.TitleScoresRecord{
		Title:          "走れメロス",
		AnalysisTime:   start.Add(time.Second),
		Characters:     9800,
		Sentences:      410,
		Tokens:         6100,
		TateisiScore:   ptr(52.75),
		TateisiFactors: ptr(string(factors)),
	}
	require.NoError(t, store.RecordTitleScores(id, record))
	require.NoError(t, store.EndAnalysis(id, start.Add(2*time.Second), 1))

	runs, err := store.GetAllAnalysisRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runUUID, runs[0].RunUUID)
	assert.True(t, start.Equal(runs[0].StartTime))
	require.NotNil(t, runs[0].EndTime)
	require.NotNil(t, runs[0].RunDurationMs)
	assert.Equal(t, int32(2000), *runs[0].RunDurationMs)
	assert.Equal(t, int32(1), runs[0].TotalTitles)
	require.NotNil(t, runs[0].ConfigParams)
	assert.JSONEq(t, `{"tagger":"kagome","limit":100}`, *runs[0].ConfigParams)

	scores, err := store.GetAllTitleScores()
	require.NoError(t, err)
	require.Len(t, scores, 1)
	got := scores[0]
	assert.Equal(t, id, got.AnalysisID)
	assert.Equal(t, "走れメロス", got.Title)
	assert.Equal(t, int32(6100), got.Tokens)
	require.NotNil(t, got.TateisiScore)
	assert.InDelta(t, 52.75, *got.TateisiScore, 1e-9)
	assert.Nil(t, got.LeeScore, "a formula without data stays null")
	assert.Nil(t, got.LeeLevel)
	assert.True(t, record.AnalysisTime.Equal(got.AnalysisTime))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(1), status.TotalRuns)
	assert.Equal(t, id, status.LastRunID)
	assert.Equal(t, int64(1), status.TotalTitleScores)
	assert.True(t, start.Equal(status.OldestRunTime))
}

func TestAnalysisStore_DuplicateTitleRejected(t *testing.T) {
	store, err := NewAnalysisStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	id, _, err := store.BeginAnalysis(testTime(), nil)
	require.NoError(t, err)

	record := schema.TitleScoresRecord{Title: "same", AnalysisTime: testTime()}
	require.NoError(t, store.RecordTitleScores(id, record))
	assert.Error(t, store.RecordTitleScores(id, record))
}

func TestAnalysisStore_EndUnknownRun(t *testing.T) {
	store, err := NewAnalysisStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	err = store.EndAnalysis(999, time.Now(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analysis 999")
}

func TestAnalysisStore_UnsupportedBackend(t *testing.T) {
	_, err := NewAnalysisStore(schema.DatabaseBackend("oracle"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}
