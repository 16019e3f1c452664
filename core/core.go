// Package core has core logic for scoring, ranking and orchestration.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/yomu/core/algo"
	"github.com/huangsam/yomu/internal/contract"
	"github.com/huangsam/yomu/internal/outwriter"
	"github.com/huangsam/yomu/schema"
)

// inlineTitle is the title given to text passed on the command line or stdin.
const inlineTitle = "text"

// ExecutorFunc defines the function signature for executing the scoring commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// newTagger builds the configured tagger. Tests replace it with a fake.
var newTagger = contract.NewTagger

// buildTagger creates the configured tagger backed by the tag cache.
func buildTagger(cfg *contract.Config, mgr contract.CacheManager) (contract.Tagger, error) {
	tagger, err := newTagger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tagger: %w", err)
	}
	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetTagStore()
	}
	return NewCachedTagger(tagger, store), nil
}

// GetScoreResults scores every text of the corpus and returns ranked results.
func GetScoreResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (*schema.CorpusOutput, time.Duration, error) {
	start := time.Now()
	texts, err := LoadCorpus(cfg)
	if err != nil {
		return nil, 0, err
	}
	tagger, err := buildTagger(cfg, mgr)
	if err != nil {
		return nil, 0, err
	}
	output, err := runCorpusCore(ctx, cfg, tagger, mgr, texts)
	if err != nil {
		return nil, 0, err
	}
	output.Results = algo.RankTitles(output.Results, cfg.Sort, cfg.ResultLimit)
	return output, time.Since(start), nil
}

// GetTextResult scores the inline text of cfg with both formulas.
func GetTextResult(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.TitleResult, time.Duration, error) {
	start := time.Now()
	if cfg.Text == "" {
		return schema.TitleResult{}, 0, errors.New("no text to score")
	}
	tagger, err := buildTagger(cfg, mgr)
	if err != nil {
		return schema.TitleResult{}, 0, err
	}
	result, err := scoreText(ctx, cfg, tagger, schema.Text{Title: inlineTitle, Body: cfg.Text})
	if err != nil {
		return schema.TitleResult{}, 0, err
	}
	return result, time.Since(start), nil
}

// ClassifyText returns the category of every character of text.
func ClassifyText(text string) []schema.CharClass {
	out := make([]schema.CharClass, 0, len(text))
	i := 0
	for _, r := range text {
		out = append(out, schema.CharClass{
			Index:     i,
			Char:      string(r),
			CodePoint: fmt.Sprintf("U+%04X", r),
			Category:  algo.Classify(r).String(),
		})
		i++
	}
	return out
}

// ExecuteScore runs both formulas over the corpus and prints ranked results.
// It serves as the main entry point for the 'score' command.
func ExecuteScore(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	output, duration, err := GetScoreResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteTitleResults(output, cfg, duration)
}

// ExecuteText scores a single inline text and prints the factor breakdown.
func ExecuteText(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	result, duration, err := GetTextResult(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteTitleDetail(result, cfg, duration)
}

// ExecuteClassify prints the category of each character of the inline text.
func ExecuteClassify(_ context.Context, cfg *contract.Config, _ contract.CacheManager) error {
	if cfg.Text == "" {
		return errors.New("no text to classify")
	}
	return outwriter.WriteClassification(ClassifyText(cfg.Text), cfg)
}

// ExecuteFormulas displays the weight tables of both formulas.
// This is a static display that does not require a corpus.
func ExecuteFormulas(_ context.Context, cfg *contract.Config, _ contract.CacheManager) error {
	return outwriter.WriteFormulas([]*schema.WeightTable{schema.TateisiWeights, schema.LeeWeights}, cfg)
}
