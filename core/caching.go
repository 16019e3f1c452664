package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/yomu/internal/contract"
	"github.com/huangsam/yomu/schema"
)

// currentCacheVersion defines the version of the cached token layout
const currentCacheVersion = 1

// CachedTagger serves tagger output from the tag cache and fills it on a miss.
// Tagger output only depends on the tagger and the sentence, so entries never go stale.
type CachedTagger struct {
	inner contract.Tagger
	store contract.CacheStore
}

var _ contract.Tagger = &CachedTagger{} // Compile-time check

// NewCachedTagger wraps inner with store. A nil store returns inner unchanged.
func NewCachedTagger(inner contract.Tagger, store contract.CacheStore) contract.Tagger {
	if store == nil {
		return inner
	}
	return &CachedTagger{inner: inner, store: store}
}

// Name implements the Tagger interface.
func (c *CachedTagger) Name() string {
	return c.inner.Name()
}

// Tag implements the Tagger interface.
func (c *CachedTagger) Tag(ctx context.Context, sentence string) ([]schema.Token, error) {
	key := generateCacheKey(c.inner.Name(), sentence)

	if tokens, ok := c.checkCacheHit(key); ok {
		return tokens, nil
	}
	return c.computeAndStore(ctx, key, sentence)
}

// checkCacheHit attempts to retrieve and validate a cached result
func (c *CachedTagger) checkCacheHit(key string) ([]schema.Token, bool) {
	data, version, _, err := c.store.Get(key)
	if err != nil || version != currentCacheVersion {
		return nil, false // Cache miss
	}
	var tokens []schema.Token
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, false
	}
	return tokens, true
}

// computeAndStore tags the sentence and stores the tokens in cache
func (c *CachedTagger) computeAndStore(ctx context.Context, key, sentence string) ([]schema.Token, error) {
	tokens, err := c.inner.Tag(ctx, sentence)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(tokens); err == nil {
		if err := c.store.Set(key, data, currentCacheVersion, time.Now().Unix()); err != nil {
			contract.LogWarn("Tag cache write failed", err)
		}
	}
	return tokens, nil
}

// generateCacheKey creates a unique key from the tagger name and the sentence
func generateCacheKey(taggerName, sentence string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(taggerName+"\x00"+sentence)))
}

// CacheVersion reports the cached token layout version. Entries written with
// another version are re-tagged.
func CacheVersion() int { return currentCacheVersion }
