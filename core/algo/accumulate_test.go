package algo

import (
	"testing"

	"github.com/huangsam/yomu/schema"
	"github.com/stretchr/testify/assert"
)

func wago(surface, pos string) schema.Token {
	return schema.Token{Surface: surface, POS: pos, Etymology: schema.WagoEtymology, HasEtymology: true}
}

func kango(surface, pos string) schema.Token {
	return schema.Token{Surface: surface, POS: pos, Etymology: schema.KangoEtymology, HasEtymology: true}
}

func TestAccumulate(t *testing.T) {
	tokens := []schema.Token{
		{Surface: "ゴジラ", POS: "名詞"},
		wago("は", "助詞"),
		{Surface: "モスラ", POS: "名詞"},
		wago("と", "助詞"),
		kango("一所懸命", "名詞"),
		wago("に", "助詞"),
		wago("打ち合っ", schema.VerbPOS),
		wago("た", schema.AuxiliaryVerbPOS),
		{Surface: "。", POS: "補助記号", Etymology: "記号", HasEtymology: true},
	}

	counts := Accumulate(tokens)
	assert.Equal(t, 9, counts.TokenCount)
	assert.Equal(t, 1, counts.VerbCount)
	assert.Equal(t, 1, counts.AuxVerbCount)
	assert.Equal(t, 5, counts.WagoCount)
	assert.Equal(t, 1, counts.KangoCount)
	assert.Equal(t, 0, counts.Skipped)
	assert.Equal(t, []int{18}, counts.SentenceLengths)
}

func TestAccumulateSkipsMalformed(t *testing.T) {
	tokens := []schema.Token{
		wago("見", schema.VerbPOS),
		{Surface: "broken-record"},
		{POS: schema.VerbPOS},
		wago("た", schema.AuxiliaryVerbPOS),
		{},
	}

	counts := Accumulate(tokens)
	assert.Equal(t, 2, counts.TokenCount)
	assert.Equal(t, 3, counts.Skipped)
	assert.Equal(t, len(tokens)-counts.Skipped, counts.TokenCount)
	assert.Equal(t, 1, counts.VerbCount)
	assert.Equal(t, 1, counts.AuxVerbCount)
	assert.Equal(t, 2, counts.WagoCount)
	assert.Equal(t, []int{2}, counts.SentenceLengths)
}

func TestAccumulateEtymologyPresence(t *testing.T) {
	tokens := []schema.Token{
		{Surface: "犬", POS: "名詞", Etymology: schema.WagoEtymology},
		{Surface: "猫", POS: "名詞", Etymology: schema.KangoEtymology},
		{Surface: "テレビ", POS: "名詞", Etymology: "外", HasEtymology: true},
	}
	counts := Accumulate(tokens)
	assert.Equal(t, 3, counts.TokenCount)
	assert.Equal(t, 0, counts.WagoCount)
	assert.Equal(t, 0, counts.KangoCount)
}

func TestAccumulateSentences(t *testing.T) {
	tokens := []schema.Token{
		{Surface: "「", POS: "補助記号"},
		wago("はい", "感動詞"),
		{Surface: "」", POS: "補助記号"},
		{Surface: "。", POS: "補助記号"},
		{Surface: "、", POS: "補助記号"},
		{Surface: "1", POS: "名詞"},
		wago("犬", "名詞"),
		{Surface: "！", POS: "補助記号"},
		wago("走る", schema.VerbPOS),
	}

	counts := Accumulate(tokens)
	// The kuten right after the closing quote does not add an empty sentence,
	// and the end of the slice closes the last one.
	assert.Equal(t, []int{2, 1, 2}, counts.SentenceLengths)
}

func TestAccumulateEmpty(t *testing.T) {
	counts := Accumulate(nil)
	assert.Equal(t, 0, counts.TokenCount)
	assert.NotNil(t, counts.SentenceLengths)
	assert.Empty(t, counts.SentenceLengths)
}

func TestTokenCountsAdd(t *testing.T) {
	total := TokenCounts{}
	total.Add(Accumulate([]schema.Token{wago("見", schema.VerbPOS), wago("た", schema.AuxiliaryVerbPOS)}))
	total.Add(Accumulate([]schema.Token{kango("勉強", "名詞"), {Surface: "x"}}))

	assert.Equal(t, 3, total.TokenCount)
	assert.Equal(t, 1, total.Skipped)
	assert.Equal(t, 2, total.WagoCount)
	assert.Equal(t, 1, total.KangoCount)
	assert.Equal(t, []int{2, 2}, total.SentenceLengths)
}
