package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAnalysisCacheRoundTrip(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetAnalysisCache("nonexistent")
	require.NoError(t, err)
	assert.Nil(t, got, "cache miss returns nil without error")

	record := []byte(`{"itemType":"Dress"}`)
	require.NoError(t, store.SetAnalysisCache("abc123", record))

	got, err = store.GetAnalysisCache("abc123")
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestAnalysisCacheOverwrite(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SetAnalysisCache("hash", []byte(`{"v":1}`)))
	require.NoError(t, store.SetAnalysisCache("hash", []byte(`{"v":2}`)))

	got, err := store.GetAnalysisCache("hash")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), got)
}

func TestSaveAndGetListings(t *testing.T) {
	store := newTestStore(t)

	first := &SavedListing{
		Title:       "Gucci Belt",
		SKU:         "GUC-BEL-90-123456",
		Description: "desc",
		Brand:       "Gucci",
		Tier:        "luxury",
		PriceMin:    625,
		PriceMax:    2250,
	}
	require.NoError(t, store.SaveListing(first))
	assert.NotZero(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second := &SavedListing{Title: "Zara Dress", SKU: "ZAR-DRE-M-000001", Description: "d"}
	require.NoError(t, store.SaveListing(second))

	listings, err := store.GetListings(10)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	// Newest first
	assert.Equal(t, "Zara Dress", listings[0].Title)
	assert.Equal(t, "Gucci Belt", listings[1].Title)
	assert.Equal(t, "Gucci", listings[1].Brand)
	assert.Equal(t, 625.0, listings[1].PriceMin)
}

func TestGetListingsLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveListing(&SavedListing{Title: "t", SKU: "s", Description: "d"}))
	}

	listings, err := store.GetListings(3)
	require.NoError(t, err)
	assert.Len(t, listings, 3)
}
