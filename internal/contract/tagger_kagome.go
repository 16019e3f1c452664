package contract

import (
	"context"
	"fmt"

	"github.com/huangsam/yomu/schema"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// UniDic feature positions.
const (
	uniPOSField   = 0
	uniGoshuField = 12
)

// KagomeTagger tags sentences in process with kagome and the UniDic dictionary.
type KagomeTagger struct {
	t *tokenizer.Tokenizer
}

// NewKagomeTagger loads the UniDic dictionary and builds a tokenizer.
func NewKagomeTagger() (*KagomeTagger, error) {
	t, err := tokenizer.New(uni.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to create kagome tokenizer: %w", err)
	}
	return &KagomeTagger{t: t}, nil
}

// Name implements Tagger.
func (k *KagomeTagger) Name() string {
	return "kagome-uni"
}

// Tag implements Tagger.
func (k *KagomeTagger) Tag(ctx context.Context, sentence string) ([]schema.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tokens := k.t.Tokenize(sentence)
	result := make([]schema.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		result = append(result, tokenFromFeatures(tok.Surface, tok.Features()))
	}
	return result, nil
}

// tokenFromFeatures builds a token from UniDic features.
// Unknown words carry fewer features and so no etymology.
func tokenFromFeatures(surface string, features []string) schema.Token {
	token := schema.Token{Surface: surface}
	if len(features) > uniPOSField {
		token.POS = features[uniPOSField]
	}
	if len(features) > uniGoshuField && features[uniGoshuField] != "" && features[uniGoshuField] != "*" {
		token.Etymology = schema.Etymology(features[uniGoshuField])
		token.HasEtymology = true
	}
	return token
}
