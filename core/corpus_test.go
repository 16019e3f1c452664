package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/yomu/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCorpus creates files relative to dir.
func writeCorpus(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
}

func titles(t *testing.T, cfg *contract.Config) []string {
	t.Helper()
	texts, err := LoadCorpus(cfg)
	require.NoError(t, err)
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = text.Title
	}
	return out
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()
	writeCorpus(t, dir, map[string]string{
		"羅生門.txt":          "下人が雨やみを待っていた。",
		"檸檬.txt":           "えたいの知れない不吉な塊が私の心を始終圧えつけていた。",
		"nested/走れメロス.txt": "メロスは激怒した。",
		"drafts/old.txt":    "古い。",
		"notes.md":          "not a text",
	})

	cfg := testConfig()
	cfg.CorpusPaths = []string{dir}
	assert.Equal(t, []string{"old", "檸檬", "羅生門", "走れメロス"}, sortedCopy(titles(t, cfg)))

	texts, err := LoadCorpus(cfg)
	require.NoError(t, err)
	for _, text := range texts {
		assert.NotEmpty(t, text.Body)
		assert.FileExists(t, text.Path)
	}

	cfg.Excludes = []string{"drafts/"}
	assert.NotContains(t, titles(t, cfg), "old")

	cfg.TitleFilter = "メロス"
	assert.Equal(t, []string{"走れメロス"}, titles(t, cfg))
}

func TestLoadCorpusExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	writeCorpus(t, dir, map[string]string{
		"a/same.txt": "一。",
		"b/same.txt": "二。",
		"c.text":     "三。",
	})

	cfg := testConfig()
	cfg.CorpusPaths = []string{
		filepath.Join(dir, "a", "same.txt"),
		filepath.Join(dir, "b", "same.txt"),
		filepath.Join(dir, "c.text"),
	}
	texts, err := LoadCorpus(cfg)
	require.NoError(t, err)
	require.Len(t, texts, 2, "a duplicate title is skipped")
	assert.Equal(t, "c", texts[0].Title, "explicit files need not end in .txt")
	assert.Equal(t, "same", texts[1].Title)
	assert.Equal(t, "一。", texts[1].Body)
}

func TestLoadCorpusMissingPath(t *testing.T) {
	cfg := testConfig()
	cfg.CorpusPaths = []string{filepath.Join(t.TempDir(), "missing")}
	_, err := LoadCorpus(cfg)
	assert.Error(t, err)
}
