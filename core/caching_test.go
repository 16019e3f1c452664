package core

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/huangsam/yomu/internal/iocache"
	"github.com/huangsam/yomu/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateCacheKey(t *testing.T) {
	a := generateCacheKey("kagome-uni", "猫。")
	assert.Len(t, a, 64)
	assert.Equal(t, a, generateCacheKey("kagome-uni", "猫。"))
	assert.NotEqual(t, a, generateCacheKey("mecab", "猫。"), "the tagger is part of the key")
	assert.NotEqual(t, a, generateCacheKey("kagome-uni", "犬。"))
}

func TestNewCachedTaggerWithoutStore(t *testing.T) {
	inner := &fakeTagger{}
	assert.Same(t, inner, NewCachedTagger(inner, nil))
}

func TestCachedTaggerMissThenStore(t *testing.T) {
	inner := &fakeTagger{}
	key := generateCacheKey(inner.Name(), "猫。")

	store := &iocache.MockCacheStore{}
	store.On("Get", key).Return(nil, 0, int64(0), sql.ErrNoRows)
	store.On("Set", key, mock.Anything, currentCacheVersion, mock.Anything).Return(nil)

	tagger := NewCachedTagger(inner, store)
	assert.Equal(t, "fake", tagger.Name())

	tokens, err := tagger.Tag(context.Background(), "猫。")
	require.NoError(t, err)
	assert.Len(t, tokens, 2)
	assert.Equal(t, int32(1), inner.calls.Load())
	store.AssertExpectations(t)
}

func TestCachedTaggerHit(t *testing.T) {
	inner := &fakeTagger{}
	cached := []schema.Token{{Surface: "猫", POS: "名詞", Etymology: schema.WagoEtymology, HasEtymology: true}}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	store := &iocache.MockCacheStore{}
	store.On("Get", mock.Anything).Return(data, currentCacheVersion, int64(1), nil)

	tokens, err := NewCachedTagger(inner, store).Tag(context.Background(), "猫")
	require.NoError(t, err)
	assert.Equal(t, cached, tokens)
	assert.Zero(t, inner.calls.Load())
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedTaggerVersionMismatch(t *testing.T) {
	inner := &fakeTagger{}
	store := &iocache.MockCacheStore{}
	store.On("Get", mock.Anything).Return([]byte(`[]`), currentCacheVersion+1, int64(1), nil)
	store.On("Set", mock.Anything, mock.Anything, currentCacheVersion, mock.Anything).Return(nil)

	tokens, err := NewCachedTagger(inner, store).Tag(context.Background(), "犬")
	require.NoError(t, err)
	assert.Len(t, tokens, 1)
	assert.Equal(t, int32(1), inner.calls.Load())
}

func TestCachedTaggerSQLiteStore(t *testing.T) {
	store, err := iocache.NewCacheStore("yomu_tag_cache", schema.SQLiteBackend, t.TempDir()+"/tags.db")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	inner := &fakeTagger{}
	tagger := NewCachedTagger(inner, store)
	for range 3 {
		tokens, err := tagger.Tag(context.Background(), godzilla)
		require.NoError(t, err)
		assert.Len(t, tokens, 19)
	}
	assert.Equal(t, int32(1), inner.calls.Load(), "only the first call reaches the tagger")
}
