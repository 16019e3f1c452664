package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/yomu/internal/iocache"
	"github.com/huangsam/yomu/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetScoreResults(t *testing.T) {
	useFakeTagger(t, &fakeTagger{})
	dir := t.TempDir()
	writeCorpus(t, dir, map[string]string{
		"godzilla.txt": godzilla,
		"cat.txt":      "猫が走った。犬も走った。",
		"empty.txt":    "。。",
	})

	mgr := &iocache.MockCacheManager{}
	mgr.On("GetTagStore").Return(nil)
	mgr.On("GetAnalysisStore").Return(nil)

	cfg := testConfig()
	cfg.CorpusPaths = []string{dir}
	cfg.Sort = schema.SortByTateisi
	cfg.ResultLimit = 2

	output, duration, err := GetScoreResults(WithSuppressHeader(context.Background()), cfg, mgr)
	require.NoError(t, err)
	assert.Positive(t, duration)
	require.Len(t, output.Results, 2, "limit applies after ranking")
	for _, r := range output.Results {
		assert.NotNil(t, r.Tateisi, "titles without a score rank last")
	}
	assert.GreaterOrEqual(t, output.Results[0].Tateisi.Score, output.Results[1].Tateisi.Score)
	mgr.AssertExpectations(t)
}

func TestGetScoreResultsEmptyCorpus(t *testing.T) {
	useFakeTagger(t, &fakeTagger{})
	cfg := testConfig()
	cfg.CorpusPaths = []string{t.TempDir()}

	_, _, err := GetScoreResults(WithSuppressHeader(context.Background()), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no texts found")
}

func TestGetTextResult(t *testing.T) {
	useFakeTagger(t, &fakeTagger{})
	cfg := testConfig()

	_, _, err := GetTextResult(context.Background(), cfg, nil)
	assert.Error(t, err)

	cfg.Text = godzilla
	result, _, err := GetTextResult(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, inlineTitle, result.Title)
	assert.NotNil(t, result.Tateisi)
	assert.NotNil(t, result.Lee)
}

func TestClassifyText(t *testing.T) {
	got := ClassifyText("aあ。")
	require.Len(t, got, 3)
	assert.Equal(t, schema.CharClass{Index: 0, Char: "a", CodePoint: "U+0061", Category: "ALPHABET"}, got[0])
	assert.Equal(t, schema.CharClass{Index: 1, Char: "あ", CodePoint: "U+3042", Category: "HIRAGANA"}, got[1])
	assert.Equal(t, "KUTEN", got[2].Category)
	assert.Empty(t, ClassifyText(""))
}

func TestExecuteScoreWritesJSON(t *testing.T) {
	useFakeTagger(t, &fakeTagger{})
	dir := t.TempDir()
	writeCorpus(t, dir, map[string]string{"godzilla.txt": godzilla})

	cfg := testConfig()
	cfg.CorpusPaths = []string{dir}
	cfg.OutputFile = filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, ExecuteScore(WithSuppressHeader(context.Background()), cfg, nil))
	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "godzilla"`)
}

func TestExecuteFormulas(t *testing.T) {
	cfg := testConfig()
	cfg.OutputFile = filepath.Join(t.TempDir(), "formulas.json")
	require.NoError(t, ExecuteFormulas(context.Background(), cfg, nil))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), string(schema.LettersPerKanjiRun))
	assert.Contains(t, string(data), string(schema.AuxiliaryVerbProportion))
}

func TestExecuteClassifyRequiresText(t *testing.T) {
	assert.Error(t, ExecuteClassify(context.Background(), testConfig(), nil))
}
