package core

import (
	"context"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/huangsam/yomu/core/algo"
	"github.com/huangsam/yomu/internal/contract"
	"github.com/huangsam/yomu/schema"
)

// testNow is a fixed clock for record tests.
var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

// godzilla is a one-sentence text with katakana, hiragana and kanji runs.
const godzilla = "ゴジラはモスラと一所懸命に打ち合った。"

// fakeTagger emits one token per character: kanji are kango nouns,
// hiragana are wago verbs, katakana are nouns without etymology and the rest
// are symbols.
type fakeTagger struct {
	calls  atomic.Int32
	err    error
	failOn string
}

var _ contract.Tagger = &fakeTagger{}

func (f *fakeTagger) Name() string { return "fake" }

func (f *fakeTagger) Tag(ctx context.Context, sentence string) ([]schema.Token, error) {
	f.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.err != nil && (f.failOn == "" || strings.Contains(sentence, f.failOn)) {
		return nil, f.err
	}
	tokens := make([]schema.Token, 0, len(sentence))
	for _, r := range sentence {
		tok := schema.Token{Surface: string(r), POS: "補助記号"}
		switch algo.Classify(r) {
		case schema.CategoryKanji:
			tok.POS, tok.Etymology, tok.HasEtymology = "名詞", schema.KangoEtymology, true
		case schema.CategoryHiragana:
			tok.POS, tok.Etymology, tok.HasEtymology = schema.VerbPOS, schema.WagoEtymology, true
		case schema.CategoryKatakana:
			tok.POS = "名詞"
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// useFakeTagger swaps the tagger factory for the duration of a test.
func useFakeTagger(t interface{ Cleanup(func()) }, tagger contract.Tagger) {
	prev := newTagger
	newTagger = func(*contract.Config) (contract.Tagger, error) { return tagger, nil }
	t.Cleanup(func() { newTagger = prev })
}

// testConfig returns a config with defaults for scoring tests.
func testConfig() *contract.Config {
	return &contract.Config{
		Workers:           2,
		Sort:              schema.SortByTitle,
		Tagger:            schema.KagomeTagger,
		LeeSentenceSource: schema.TateisiSentences,
		Precision:         2,
		Output:            schema.JSONOut,
	}
}

// sortedCopy returns a sorted copy of s.
func sortedCopy(s []string) []string {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}
