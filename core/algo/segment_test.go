package algo

import (
	"strings"
	"testing"

	"github.com/huangsam/yomu/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentGodzilla(t *testing.T) {
	result := Segment("ゴジラはモスラと一所懸命に打ち合った。", SegmentOptions{})

	assert.Equal(t, []string{"ゴジラ", "モスラ"}, result.Runs[schema.CategoryKatakana])
	assert.Equal(t, []string{"は", "と", "に", "ち", "った"}, result.Runs[schema.CategoryHiragana])
	assert.Equal(t, []string{"一所懸命", "打", "合"}, result.Runs[schema.CategoryKanji])
	assert.Empty(t, result.Runs[schema.CategoryAlphabet])

	assert.Equal(t, []int{18}, result.SentenceLengths)
	assert.Equal(t, 1, result.KutenCount)
	assert.Equal(t, 0, result.TootenCount)
	assert.Equal(t, 18, result.LetterCount)
	assert.Equal(t, 19, result.CharCount)
	assert.Equal(t, 10, result.RunCount())
}

func TestSegmentEmptySentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"two periods", "。。"},
		{"empty", ""},
		{"marks only", "「」！？、。"},
		{"digits and spaces", "123 ４５６"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Segment(tt.input, SegmentOptions{})
			assert.Empty(t, result.SentenceLengths)
			assert.Equal(t, 0, result.RunCount())

			flushed := Segment(tt.input, SegmentOptions{FlushTrailing: true})
			assert.Empty(t, flushed.SentenceLengths)
		})
	}
}

func TestSegmentLetterKeysAlwaysPresent(t *testing.T) {
	result := Segment("", SegmentOptions{})
	for _, c := range schema.LetterCategories {
		runs, ok := result.Runs[c]
		assert.True(t, ok, c.String())
		assert.NotNil(t, runs)
	}
	_, ok := result.Runs[schema.CategoryDigit]
	assert.False(t, ok)
}

func TestSegmentTrailing(t *testing.T) {
	text := "今日は晴れ。明日は雨"

	result := Segment(text, SegmentOptions{})
	assert.Equal(t, []int{5}, result.SentenceLengths)
	assert.Equal(t, []string{"今日", "晴", "明日"}, result.Runs[schema.CategoryKanji])
	assert.Equal(t, []string{"は", "れ", "は"}, result.Runs[schema.CategoryHiragana])

	flushed := Segment(text, SegmentOptions{FlushTrailing: true})
	assert.Equal(t, []int{5, 4}, flushed.SentenceLengths)
	assert.Equal(t, []string{"今日", "晴", "明日", "雨"}, flushed.Runs[schema.CategoryKanji])
	assert.Equal(t, result.LetterCount, flushed.LetterCount)
}

func TestSegmentPunctuation(t *testing.T) {
	result := Segment("「はい、そうです」と彼は言った！本当？", SegmentOptions{})

	assert.Equal(t, 1, result.TootenCount)
	assert.Equal(t, 0, result.KutenCount)
	// End quote, exclamation mark and question mark each close a sentence.
	assert.Equal(t, []int{6, 6, 2}, result.SentenceLengths)
}

func TestSegmentNonLetterBreaksRuns(t *testing.T) {
	result := Segment("あい1うえ。", SegmentOptions{})
	assert.Equal(t, []string{"あい", "うえ"}, result.Runs[schema.CategoryHiragana])
	assert.Equal(t, []int{4}, result.SentenceLengths)
}

func TestSegmentFullwidthLowercaseBounds(t *testing.T) {
	result := Segment("ａｂ。", SegmentOptions{})
	assert.Equal(t, []string{"ｂ"}, result.Runs[schema.CategoryAlphabet])
	assert.Equal(t, []int{1}, result.SentenceLengths)
}

func TestSegmentMixedAlphabet(t *testing.T) {
	result := Segment("GoとＲｕｓｔ。", SegmentOptions{})
	assert.Equal(t, []string{"Go", "Ｒｕｓｔ"}, result.Runs[schema.CategoryAlphabet])
	assert.Equal(t, []int{7}, result.SentenceLengths)
}

// TestSegmentResegmentation checks that concatenating the runs of one
// category and segmenting again gives a single run of that category only.
func TestSegmentResegmentation(t *testing.T) {
	texts := []string{
		"ゴジラはモスラと一所懸命に打ち合った。",
		"「はい、そうです」と彼は言った！本当？",
		"GoとＲｕｓｔ、そしてＪａｖａ。",
	}
	for _, text := range texts {
		first := Segment(text, SegmentOptions{})
		for _, category := range schema.LetterCategories {
			runs := first.Runs[category]
			if len(runs) == 0 {
				continue
			}
			joined := strings.Join(runs, "")
			second := Segment(joined, SegmentOptions{FlushTrailing: true})

			require.Equal(t, 1, second.RunCount(), "%s in %q", category, text)
			assert.Equal(t, []string{joined}, second.Runs[category])
		}
	}
}
