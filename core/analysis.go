package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/huangsam/yomu/internal/contract"
	"github.com/huangsam/yomu/schema"
)

// runCorpusCore scores every text and tracks the run when an analysis store is configured.
// Results come back sorted by title. A factor cardinality error aborts the batch.
func runCorpusCore(ctx context.Context, cfg *contract.Config, tagger contract.Tagger, mgr contract.CacheManager, texts []schema.Text) (*schema.CorpusOutput, error) {
	if len(texts) == 0 {
		return nil, errors.New("no texts found")
	}
	if !shouldSuppressHeader(ctx) {
		contract.LogCorpusHeader(cfg, len(texts))
	}

	// Add cache manager to context for use in worker goroutines
	ctx = contextWithCacheManager(ctx, mgr)
	output := &schema.CorpusOutput{}

	// --- 0. Begin Analysis Tracking (if configured) ---
	var analysisStore contract.AnalysisStore
	if mgr != nil {
		analysisStore = mgr.GetAnalysisStore()
	}
	if analysisStore != nil {
		analysisID, runUUID, err := analysisStore.BeginAnalysis(time.Now(), trackingParams(cfg, tagger))
		if err != nil {
			contract.LogWarn("Analysis tracking initialization failed", err)
		} else if analysisID > 0 {
			ctx = withAnalysisID(ctx, analysisID)
			output.AnalysisID = analysisID
			output.RunUUID = runUUID
		}
	}

	// --- 1. Core Analysis ---
	results, err := analyzeCorpus(ctx, cfg, tagger, texts)
	if err != nil {
		return nil, err
	}
	output.Results = results

	// --- 2. End Analysis Tracking ---
	if analysisStore != nil && output.AnalysisID > 0 {
		if err := analysisStore.EndAnalysis(output.AnalysisID, time.Now(), len(results)); err != nil {
			contract.LogWarn("Failed to finalize analysis tracking", err)
		}
	}
	return output, nil
}

// trackingParams is the configuration snapshot stored with each run.
func trackingParams(cfg *contract.Config, tagger contract.Tagger) map[string]any {
	return map[string]any{
		"corpus_paths":        cfg.CorpusPaths,
		"title_filter":        cfg.TitleFilter,
		"tagger":              tagger.Name(),
		"flush_trailing":      cfg.FlushTrailing,
		"lee_sentence_source": string(cfg.LeeSentenceSource),
		"workers":             cfg.Workers,
	}
}

// analyzeCorpus processes all texts in parallel using a worker pool.
// It spawns cfg.Workers goroutines and cancels the rest of the batch on the
// first fatal error.
func analyzeCorpus(ctx context.Context, cfg *contract.Config, tagger contract.Tagger, texts []schema.Text) ([]schema.TitleResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	textCh := make(chan schema.Text, len(texts))
	resultCh := make(chan schema.TitleResult, len(texts))
	var wg sync.WaitGroup

	var fatalOnce sync.Once
	var fatalErr error

	workers := max(cfg.Workers, 1)
	for range workers {
		wg.Go(func() {
			for text := range textCh {
				if ctx.Err() != nil {
					continue // Drain after a fatal error
				}
				result, err := scoreText(ctx, cfg, tagger, text)
				if err != nil {
					if isFatal(err) {
						fatalOnce.Do(func() {
							fatalErr = err
							cancel()
						})
					}
					continue
				}
				recordTitleAnalysis(ctx, &result)
				resultCh <- result
			}
		})
	}

	for _, text := range texts {
		textCh <- text
	}
	close(textCh)

	wg.Wait()
	close(resultCh)

	if fatalErr != nil {
		return nil, fatalErr
	}

	results := make([]schema.TitleResult, 0, len(texts))
	for r := range resultCh {
		results = append(results, r)
	}
	slices.SortFunc(results, func(a, b schema.TitleResult) int {
		return strings.Compare(a.Title, b.Title)
	})
	return results, nil
}

// recordTitleAnalysis stores both formula outcomes of a title in the analysis store.
func recordTitleAnalysis(ctx context.Context, result *schema.TitleResult) {
	analysisID, ok := getAnalysisID(ctx)
	if !ok || analysisID <= 0 {
		return
	}
	mgr := cacheManagerFromContext(ctx)
	if mgr == nil {
		return
	}
	analysisStore := mgr.GetAnalysisStore()
	if analysisStore == nil {
		return
	}

	if err := analysisStore.RecordTitleScores(analysisID, toTitleScoresRecord(result, time.Now())); err != nil {
		logTrackingError("RecordTitleScores", result.Title, err)
	}
}

// toTitleScoresRecord flattens a title result into its storage row.
func toTitleScoresRecord(result *schema.TitleResult, now time.Time) schema.TitleScoresRecord {
	record := schema.TitleScoresRecord{
		Title:        result.Title,
		AnalysisTime: now,
		Characters:   int32(result.Characters),
		Sentences:    int32(result.Sentences),
		Tokens:       int32(result.Tokens),
	}
	if r := result.Tateisi; r != nil {
		record.TateisiScore = &r.Score
		record.TateisiFactors = factorsJSON(r.RawFactors)
	}
	if r := result.Lee; r != nil {
		record.LeeScore = &r.Score
		record.LeeLevel = &r.Level
		record.LeeFactors = factorsJSON(r.RawFactors)
	}
	return record
}

// factorsJSON encodes a factor map, or nil when encoding fails.
func factorsJSON(f schema.Factors) *string {
	data, err := json.Marshal(f)
	if err != nil {
		return nil
	}
	s := string(data)
	return &s
}

// logTrackingError logs database tracking errors to stderr without disrupting analysis.
func logTrackingError(operation, title string, err error) {
	contract.LogWarn(fmt.Sprintf("Analysis tracking failed for %s on %s", operation, title), err)
}
