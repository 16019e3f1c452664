package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/huangsam/yomu/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetColorLevel(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	tests := []struct {
		score    float64
		expected string
	}{
		{6.0, schema.LowerElementary},
		{5.0, schema.UpperElementary},
		{4.0, schema.LowerIntermediate},
		{3.0, schema.UpperIntermediate},
		{2.0, schema.LowerAdvanced},
		{1.0, schema.UpperAdvanced},
		{7.0, schema.UnclassifiedLevel},
		{0.1, schema.UnclassifiedLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetColorLevel(tt.score), "score %.1f", tt.score)
	}
}

func TestShouldIgnore(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		excludes []string
		expected bool
	}{
		{"no excludes", "corpus/momotaro.txt", nil, false},
		{"prefix", "drafts/momotaro.txt", []string{"drafts/"}, true},
		{"nested prefix", "/data/corpus/drafts/momotaro.txt", []string{"drafts/"}, true},
		{"suffix", "corpus/momotaro.bak", []string{".bak"}, true},
		{"glob on base name", "/data/corpus/momotaro_old.txt", []string{"*_old.txt"}, true},
		{"substring", "corpus/kaguya-hime.txt", []string{"kaguya"}, true},
		{"no match", "corpus/urashima.txt", []string{"drafts/", ".bak", "*_old.txt"}, false},
		{"blank pattern", "corpus/urashima.txt", []string{"  "}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShouldIgnore(tt.path, tt.excludes))
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "out.csv")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, path, f.Name())
}

func TestDBFilePaths(t *testing.T) {
	assert.True(t, strings.HasSuffix(GetCacheDBFilePath(), ".yomu_cache.db"))
	assert.True(t, strings.HasSuffix(GetAnalysisDBFilePath(), ".yomu_analysis.db"))
	assert.NotEqual(t, GetCacheDBFilePath(), GetAnalysisDBFilePath())
}

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "桃太郎", TruncateTitle("桃太郎", 10))
	assert.Equal(t, "かぐや...", TruncateTitle("かぐやひめのおはなし", 6))
	assert.Equal(t, "abcdef", TruncateTitle("abcdef", 3))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("sometimes")
	assert.Error(t, err)
}
