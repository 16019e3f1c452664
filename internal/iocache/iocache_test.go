package iocache

import (
	"strings"
	"testing"

	"github.com/huangsam/yomu/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTableName(t *testing.T) {
	valid := []string{"yomu_tag_cache", "_t", "T1"}
	for _, name := range valid {
		assert.NoError(t, validateTableName(name), name)
	}
	invalid := []string{"", "1abc", "a-b", "a b", `a"b`, "a;b"}
	for _, name := range invalid {
		assert.Error(t, validateTableName(name), name)
	}
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`t`", quoteTableName("t", schema.MySQLBackend))
	assert.Equal(t, `"t"`, quoteTableName("t", schema.PostgreSQLBackend))
	assert.Equal(t, `"t"`, quoteTableName("t", schema.SQLiteBackend))
}

func TestDriverName(t *testing.T) {
	assert.Equal(t, "mysql", driverName(schema.MySQLBackend))
	assert.Equal(t, "pgx", driverName(schema.PostgreSQLBackend))
	assert.Equal(t, "sqlite", driverName(schema.SQLiteBackend))
}

func TestRebind(t *testing.T) {
	q := "SELECT a FROM t WHERE b = ? AND c = ?"
	assert.Equal(t, q, rebind(q, schema.SQLiteBackend))
	assert.Equal(t, q, rebind(q, schema.MySQLBackend))
	assert.Equal(t, "SELECT a FROM t WHERE b = $1 AND c = $2", rebind(q, schema.PostgreSQLBackend))
}

func TestNormalizeMySQLDSN(t *testing.T) {
	dsn, err := normalizeMySQLDSN("user:pass@tcp(localhost:3306)/yomu")
	require.NoError(t, err)
	assert.True(t, strings.Contains(dsn, "parseTime=true"), dsn)
	assert.True(t, strings.Contains(dsn, "multiStatements=true"), dsn)

	_, err = normalizeMySQLDSN("not a dsn")
	assert.Error(t, err)
}

func TestFormatTimeRoundTrip(t *testing.T) {
	ts := testTime()
	s, ok := formatTime(ts, schema.SQLiteBackend).(string)
	require.True(t, ok)
	back, err := parseTime(s)
	require.NoError(t, err)
	assert.True(t, ts.Equal(back))

	assert.Equal(t, ts, formatTime(ts, schema.PostgreSQLBackend))
}

func TestCacheStoreManager(t *testing.T) {
	tags, err := NewCacheStore(tagTable, schema.NoneBackend, "")
	require.NoError(t, err)
	analysis, err := NewAnalysisStore(schema.NoneBackend, "")
	require.NoError(t, err)

	mgr := &CacheStoreManager{tags: tags, analysis: analysis}
	assert.Same(t, tags, mgr.GetTagStore())
	assert.Same(t, analysis, mgr.GetAnalysisStore())
}

func TestExecuteAnalysisExport(t *testing.T) {
	t.Run("requires output file", func(t *testing.T) {
		err := ExecuteAnalysisExport(&MockAnalysisStore{}, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--output-file")
	})

	t.Run("no runs", func(t *testing.T) {
		store := &MockAnalysisStore{}
		store.On("GetStatus").Return(schema.AnalysisStatus{Backend: "sqlite", Connected: true}, nil)
		err := ExecuteAnalysisExport(store, "out")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no analysis data")
		store.AssertExpectations(t)
	})

	t.Run("writes both files", func(t *testing.T) {
		store, err := NewAnalysisStore(schema.SQLiteBackend, ":memory:")
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		id, _, err := store.BeginAnalysis(testTime(), map[string]any{"tagger": "kagome"})
		require.NoError(t, err)
		require.NoError(t, store.RecordTitleScores(id, schema.TitleScoresRecord{Title: "a", AnalysisTime: testTime(), LeeScore: ptr(3.0)}))
		require.NoError(t, store.EndAnalysis(id, testTime(), 1))

		prefix := t.TempDir() + "/export"
		require.NoError(t, ExecuteAnalysisExport(store, prefix))

		runsFile, scoresFile := ExportFiles(prefix)
		assert.FileExists(t, runsFile)
		assert.FileExists(t, scoresFile)
	})
}
