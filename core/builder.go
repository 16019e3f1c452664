package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/yomu/core/algo"
	"github.com/huangsam/yomu/internal/contract"
	"github.com/huangsam/yomu/schema"
)

// TitleResultBuilder scores one text with both formulas.
type TitleResultBuilder struct {
	ctx    context.Context
	cfg    *contract.Config
	tagger contract.Tagger
	text   schema.Text
	result *schema.TitleResult

	// Internal data collected during the build process
	segment algo.SegmentResult
	counts  algo.TokenCounts
	tagErr  error
	fatal   error
}

// NewTitleResultBuilder is the starting point for scoring a text.
func NewTitleResultBuilder(ctx context.Context, cfg *contract.Config, tagger contract.Tagger, text schema.Text) *TitleResultBuilder {
	return &TitleResultBuilder{
		ctx:    ctx,
		cfg:    cfg,
		tagger: tagger,
		text:   text,
		result: &schema.TitleResult{Title: text.Title, Path: text.Path},
	}
}

// SegmentText runs the character segmenter over the whole text.
func (b *TitleResultBuilder) SegmentText() *TitleResultBuilder {
	b.segment = algo.Segment(b.text.Body, algo.SegmentOptions{FlushTrailing: b.cfg.FlushTrailing})
	b.result.Characters = b.segment.CharCount
	b.result.Letters = b.segment.LetterCount
	b.result.Sentences = len(b.segment.SentenceLengths)
	return b
}

// ScoreTateisi computes the Tateisi factors and score.
func (b *TitleResultBuilder) ScoreTateisi() *TitleResultBuilder {
	if b.fatal != nil {
		return b
	}
	factors, err := ComputeTateisiFactors(b.segment)
	if err != nil {
		b.result.TateisiErr = err.Error()
		return b
	}
	b.result.Tateisi = b.score(factors, schema.TateisiWeights)
	return b
}

// TagSentences splits the text into sentences and tags each one on its own.
// Counts of all sentences are summed. A tagger failure leaves the Lee formula
// without data but does not stop the build.
//
// An unterminated tail at the end of the text follows the same flush rule as
// the segmenter: its tokens are counted but it is only a sentence when
// FlushTrailing is set.
func (b *TitleResultBuilder) TagSentences() *TitleResultBuilder {
	b.counts = algo.TokenCounts{SentenceLengths: []int{}}
	pieces := algo.SplitSentences(b.text.Body)
	for i, sentence := range pieces {
		tokens, err := b.tagger.Tag(b.ctx, sentence)
		if err != nil {
			b.tagErr = fmt.Errorf("tagger %s failed: %w", b.tagger.Name(), err)
			return b
		}
		counts := algo.Accumulate(tokens)
		if i == len(pieces)-1 && !b.cfg.FlushTrailing && !algo.EndsSentence(sentence) {
			counts.SentenceLengths = counts.SentenceLengths[:0]
		}
		b.counts.Add(counts)
	}
	b.result.Tokens = b.counts.TokenCount
	b.result.Skipped = b.counts.Skipped
	return b
}

// ScoreLee computes the Lee factors, score and level.
func (b *TitleResultBuilder) ScoreLee() *TitleResultBuilder {
	if b.fatal != nil {
		return b
	}
	if b.tagErr != nil {
		b.result.LeeErr = b.tagErr.Error()
		return b
	}
	lengths := leeSentenceLengths(b.cfg.LeeSentenceSource, b.segment, b.counts)
	factors, err := ComputeLeeFactors(b.counts, lengths)
	if err != nil {
		b.result.LeeErr = err.Error()
		return b
	}
	if r := b.score(factors, schema.LeeWeights); r != nil {
		r.Level = schema.GetLeeLevel(r.Score)
		b.result.Lee = r
	}
	return b
}

// score runs the weighted sum and keeps a cardinality error for Build.
func (b *TitleResultBuilder) score(factors schema.Factors, table *schema.WeightTable) *schema.FormulaResult {
	r, err := algo.WeightedScore(factors, table)
	if err != nil {
		b.fatal = err
		return nil
	}
	return &r
}

// Build returns the final result. The error is only set when a factor set did
// not match its weight table; formula-level data problems live in the result.
func (b *TitleResultBuilder) Build() (schema.TitleResult, error) {
	if b.fatal != nil {
		return schema.TitleResult{}, fmt.Errorf("scoring %q: %w", b.text.Title, b.fatal)
	}
	return *b.result, nil
}

// scoreText executes the full builder chain for one text.
func scoreText(ctx context.Context, cfg *contract.Config, tagger contract.Tagger, text schema.Text) (schema.TitleResult, error) {
	return NewTitleResultBuilder(ctx, cfg, tagger, text).
		SegmentText().  // Runs and sentence lengths
		ScoreTateisi(). // Character based formula
		TagSentences(). // Token counts
		ScoreLee().     // Token based formula
		Build()
}

// isFatal reports whether err must stop the whole batch.
func isFatal(err error) bool {
	return errors.Is(err, schema.ErrFactorCardinality)
}
