package core

import (
	"context"
	"errors"
	"testing"

	"github.com/huangsam/yomu/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreTextGodzilla(t *testing.T) {
	cfg := testConfig()
	tagger := &fakeTagger{}

	result, err := scoreText(context.Background(), cfg, tagger, schema.Text{Title: "godzilla", Body: godzilla})
	require.NoError(t, err)

	assert.Equal(t, "godzilla", result.Title)
	assert.Equal(t, 19, result.Characters)
	assert.Equal(t, 18, result.Letters)
	assert.Equal(t, 1, result.Sentences)
	assert.Equal(t, 19, result.Tokens)
	assert.Zero(t, result.Skipped)
	assert.Equal(t, int32(1), tagger.calls.Load())

	require.NotNil(t, result.Tateisi)
	tateisi := -109.1 + -0.19*30 + -0.61*20 + 0.25*50 + -22.1*2 + -5.3*3 + 7.52*1.2 + -1.34*18
	assert.InDelta(t, tateisi, result.Tateisi.Score, 1e-9)
	assert.Empty(t, result.TateisiErr)

	require.NotNil(t, result.Lee)
	share := 100 * 6.0 / 19.0
	lee := -0.056*18 + -0.126*share + -0.042*share + -0.145*share + 11.724
	assert.InDelta(t, lee, result.Lee.Score, 1e-9)
	assert.Equal(t, schema.GetLeeLevel(lee), result.Lee.Level)
	assert.Empty(t, result.LeeErr)
}

func TestScoreTextInsufficientData(t *testing.T) {
	result, err := scoreText(context.Background(), testConfig(), &fakeTagger{}, schema.Text{Title: "marks", Body: "。。"})
	require.NoError(t, err, "degenerate input never fails the title")

	assert.Nil(t, result.Tateisi)
	assert.Contains(t, result.TateisiErr, "insufficient data")
	assert.Nil(t, result.Lee)
	assert.Contains(t, result.LeeErr, "insufficient data")
	assert.Equal(t, 2, result.Tokens)
}

func TestScoreTextTaggerFailure(t *testing.T) {
	tagger := &fakeTagger{err: errors.New("dictionary missing")}
	result, err := scoreText(context.Background(), testConfig(), tagger, schema.Text{Title: "g", Body: godzilla})
	require.NoError(t, err)

	require.NotNil(t, result.Tateisi, "the character formula does not need the tagger")
	assert.Nil(t, result.Lee)
	assert.Contains(t, result.LeeErr, "tagger fake failed")
	assert.Contains(t, result.LeeErr, "dictionary missing")
}

func TestScoreTextSentenceSource(t *testing.T) {
	// The closing quote ends a sentence for both the segmenter and the
	// splitter, so the lengths agree: 2 and 4 letters.
	body := "「はい」と言った。"
	for _, source := range []schema.SentenceSource{schema.TateisiSentences, schema.TokenSentences} {
		cfg := testConfig()
		cfg.LeeSentenceSource = source
		result, err := scoreText(context.Background(), cfg, &fakeTagger{}, schema.Text{Title: "n", Body: body})
		require.NoError(t, err)
		require.NotNil(t, result.Lee, "source %s", source)
		assert.InDelta(t, 3.0, result.Lee.RawFactors[schema.MeanSentenceLength], 1e-9, "source %s", source)
	}
}

func TestScoreTextTrailingSentenceRule(t *testing.T) {
	body := "ねこ。いぬがいる"
	tests := []struct {
		name   string
		source schema.SentenceSource
		flush  bool
		mean   float64
	}{
		{"segmenter drops tail", schema.TateisiSentences, false, 2},
		{"tokens drop tail", schema.TokenSentences, false, 2},
		{"segmenter flushes tail", schema.TateisiSentences, true, 3},
		{"tokens flush tail", schema.TokenSentences, true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.LeeSentenceSource = tt.source
			cfg.FlushTrailing = tt.flush

			result, err := scoreText(context.Background(), cfg, &fakeTagger{}, schema.Text{Title: "n", Body: body})
			require.NoError(t, err)
			require.NotNil(t, result.Lee)
			assert.InDelta(t, tt.mean, result.Lee.RawFactors[schema.MeanSentenceLength], 1e-9)
			assert.Equal(t, 8, result.Tokens, "tail tokens are always counted")
		})
	}
}

func TestBuilderCardinalityIsFatal(t *testing.T) {
	b := NewTitleResultBuilder(context.Background(), testConfig(), &fakeTagger{}, schema.Text{Title: "x", Body: godzilla})
	assert.Nil(t, b.score(schema.Factors{schema.Constant: 1}, schema.LeeWeights))

	_, err := b.SegmentText().ScoreTateisi().TagSentences().ScoreLee().Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrFactorCardinality))
	assert.True(t, isFatal(err))
	assert.Contains(t, err.Error(), `"x"`)
}

func TestScoreTextDeterministic(t *testing.T) {
	cfg := testConfig()
	text := schema.Text{Title: "g", Body: godzilla + "\n" + "「走れ！」と叫んだ。"}

	first, err := scoreText(context.Background(), cfg, &fakeTagger{}, text)
	require.NoError(t, err)
	for range 10 {
		again, err := scoreText(context.Background(), cfg, &fakeTagger{}, text)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
