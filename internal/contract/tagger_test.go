package contract

import (
	"context"
	"testing"

	"github.com/huangsam/yomu/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMeCabOutput = "ゴジラ\t名詞,固有名詞,一般,*,*,*,ゴジラ,ゴジラ,ゴジラ,ゴジラ,ゴジラ,ゴジラ,固\n" +
	"は\t助詞,係助詞,*,*,*,*,ハ,は,は,ワ,は,ワ,和\n" +
	"一所懸命\t名詞,普通名詞,形状詞可能,*,*,*,イッショケンメイ,一所懸命,一所懸命,イッショケンメー,一所懸命,イッショケンメー,漢\n" +
	"打ち合っ\t動詞,一般,*,*,五段-ワア行,連用形-促音便,ウチアウ,打ち合う,打ち合っ,ウチアッ,打ち合う,ウチアウ,和\n" +
	"た\t助動詞,*,*,*,助動詞-タ,終止形-一般,タ,た,た,タ,た,タ,和\n" +
	"。\t補助記号,句点,*,*,*,*,,。,。,,。,,記号\n" +
	"EOS\n"

func TestParseMeCabOutput(t *testing.T) {
	tokens := ParseMeCabOutput([]byte(sampleMeCabOutput))
	require.Len(t, tokens, 6)

	assert.Equal(t, schema.Token{Surface: "ゴジラ", POS: "名詞", Etymology: "固", HasEtymology: true}, tokens[0])
	assert.Equal(t, schema.WagoEtymology, tokens[1].Etymology)
	assert.Equal(t, schema.KangoEtymology, tokens[2].Etymology)
	assert.Equal(t, schema.VerbPOS, tokens[3].POS)
	assert.Equal(t, schema.AuxiliaryVerbPOS, tokens[4].POS)
	assert.Equal(t, "補助記号", tokens[5].POS)
}

func TestParseMeCabOutputMalformed(t *testing.T) {
	raw := "猫\t名詞,普通名詞,一般\n" + // too few features for an etymology
		"no separator here\n" +
		"\n" +
		"犬\t名詞,普通名詞,一般,*,*,*,イヌ,犬,犬,イヌ,犬,イヌ,*\r\n" +
		"EOS\n" +
		"after\t名詞\n"

	tokens := ParseMeCabOutput([]byte(raw))
	require.Len(t, tokens, 3)

	assert.Equal(t, "名詞", tokens[0].POS)
	assert.False(t, tokens[0].HasEtymology)

	assert.False(t, tokens[1].Valid())
	assert.Equal(t, "no separator here", tokens[1].Surface)

	assert.Equal(t, "犬", tokens[2].Surface)
	assert.False(t, tokens[2].HasEtymology)
}

func TestTokenFromFeatures(t *testing.T) {
	tok := tokenFromFeatures("X", nil)
	assert.False(t, tok.Valid())

	tok = tokenFromFeatures("X", []string{"名詞"})
	assert.True(t, tok.Valid())
	assert.False(t, tok.HasEtymology)
}

func TestNewTaggerMeCabMissing(t *testing.T) {
	cfg := &Config{Tagger: schema.MeCabTagger, MeCabPath: "/nonexistent/mecab-binary"}
	_, err := NewTagger(cfg)
	assert.Error(t, err)
}

func TestKagomeTagger(t *testing.T) {
	if testing.Short() {
		t.Skip("loading the UniDic dictionary is slow")
	}
	tagger, err := NewKagomeTagger()
	require.NoError(t, err)
	assert.Equal(t, "kagome-uni", tagger.Name())

	tokens, err := tagger.Tag(context.Background(), "猫が走った。")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)

	var surface string
	for _, tok := range tokens {
		assert.True(t, tok.Valid())
		surface += tok.Surface
	}
	assert.Equal(t, "猫が走った。", surface)
	assert.Equal(t, "名詞", tokens[0].POS)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tagger.Tag(ctx, "猫")
	assert.ErrorIs(t, err, context.Canceled)
}
