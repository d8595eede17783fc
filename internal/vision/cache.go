package vision

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// CacheStore persists normalized analysis records keyed by image hash.
type CacheStore interface {
	GetAnalysisCache(imageHash string) ([]byte, error)
	SetAnalysisCache(imageHash string, record []byte) error
}

// CachedAnalyzer wraps an Analyzer with a persistent result cache, so
// re-analyzing the same photos costs nothing.
type CachedAnalyzer struct {
	inner Analyzer
	store CacheStore
}

// NewCachedAnalyzer creates a cached analyzer. A nil store disables
// caching entirely.
func NewCachedAnalyzer(inner Analyzer, store CacheStore) *CachedAnalyzer {
	return &CachedAnalyzer{inner: inner, store: store}
}

// hashImages creates a SHA256 hash from image data.
// Includes length prefix for each image to prevent boundary collisions.
func hashImages(images []Image) string {
	h := sha256.New()
	for _, img := range images {
		// Write length to prevent boundary collisions (e.g. [A,B] vs [AB])
		binary.Write(h, binary.LittleEndian, int64(len(img.Data)))
		h.Write(img.Data)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Analyze implements the Analyzer interface with caching.
func (c *CachedAnalyzer) Analyze(ctx context.Context, images []Image) (*AnalysisRecord, Usage, error) {
	if c.store == nil {
		return c.inner.Analyze(ctx, images)
	}

	hash := hashImages(images)

	cached, err := c.store.GetAnalysisCache(hash)
	if err != nil {
		log.Warn().Err(err).Msg("failed to check analysis cache")
	} else if cached != nil {
		var rec AnalysisRecord
		if err := json.Unmarshal(cached, &rec); err != nil {
			log.Warn().Err(err).Msg("failed to decode cached analysis, ignoring")
		} else {
			log.Debug().Str("hash", hash[:16]).Msg("analysis cache hit")
			// Zero usage for cached result
			return &rec, Usage{}, nil
		}
	}

	rec, usage, err := c.inner.Analyze(ctx, images)
	if err != nil {
		return nil, usage, err
	}

	if data, err := json.Marshal(rec); err != nil {
		log.Warn().Err(err).Msg("failed to encode analysis for cache")
	} else if err := c.store.SetAnalysisCache(hash, data); err != nil {
		log.Warn().Err(err).Msg("failed to cache analysis result")
	} else {
		log.Debug().Str("hash", hash[:16]).Msg("cached analysis result")
	}

	return rec, usage, nil
}
