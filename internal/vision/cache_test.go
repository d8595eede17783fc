package vision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCacheStore is an in-memory CacheStore for tests.
type memCacheStore struct {
	entries map[string][]byte
}

func newMemCacheStore() *memCacheStore {
	return &memCacheStore{entries: make(map[string][]byte)}
}

func (m *memCacheStore) GetAnalysisCache(imageHash string) ([]byte, error) {
	return m.entries[imageHash], nil
}

func (m *memCacheStore) SetAnalysisCache(imageHash string, record []byte) error {
	m.entries[imageHash] = record
	return nil
}

func TestCachedAnalyzerCachesResults(t *testing.T) {
	inner := &fakeProvider{name: "inner", text: minimalResponse}
	orchestrator := NewOrchestrator([]Provider{inner}, OrchestratorOpts{})
	store := newMemCacheStore()
	cached := NewCachedAnalyzer(orchestrator, store)

	first, usage, err := cached.Analyze(context.Background(), testImages)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, int64(15), usage.TotalTokens)

	second, usage, err := cached.Analyze(context.Background(), testImages)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls, "second call must be served from cache")
	assert.Equal(t, Usage{}, usage, "cached result has zero usage")
	assert.Equal(t, first, second)
}

func TestCachedAnalyzerDistinguishesImageSets(t *testing.T) {
	inner := &fakeProvider{name: "inner", text: minimalResponse}
	orchestrator := NewOrchestrator([]Provider{inner}, OrchestratorOpts{})
	cached := NewCachedAnalyzer(orchestrator, newMemCacheStore())

	_, _, err := cached.Analyze(context.Background(), testImages)
	require.NoError(t, err)

	other := []Image{{Data: []byte("different-bytes"), MimeType: "image/png"}}
	_, _, err = cached.Analyze(context.Background(), other)
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestCachedAnalyzerNilStore(t *testing.T) {
	inner := &fakeProvider{name: "inner", text: minimalResponse}
	orchestrator := NewOrchestrator([]Provider{inner}, OrchestratorOpts{})
	cached := NewCachedAnalyzer(orchestrator, nil)

	_, _, err := cached.Analyze(context.Background(), testImages)
	require.NoError(t, err)
	_, _, err = cached.Analyze(context.Background(), testImages)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestHashImagesBoundaries(t *testing.T) {
	// [A,B] and [AB] must hash differently because of the length prefix.
	ab := hashImages([]Image{{Data: []byte("A")}, {Data: []byte("B")}})
	joined := hashImages([]Image{{Data: []byte("AB")}})
	assert.NotEqual(t, ab, joined)
}
