// Package pipeline runs the full photo-to-listing chain: provider
// orchestration, response normalization, brand and pricing enrichment and
// listing artifact generation. The caller sees exactly one of a fully
// enriched item or an error message, never a partial result.
package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/snaplist-app/snaplist/internal/catalog"
	"github.com/snaplist-app/snaplist/internal/listing"
	"github.com/snaplist-app/snaplist/internal/pricing"
	"github.com/snaplist-app/snaplist/internal/storage"
	"github.com/snaplist-app/snaplist/internal/vision"
)

// Item is one fully processed garment: the normalized analysis record plus
// the generated listing artifact and pricing enrichment.
type Item struct {
	vision.AnalysisRecord
	listing.Artifact

	BrandTier       string       `json:"brandTier"`
	PriceBand       pricing.Band `json:"priceBand"`
	ResaleEstimate  pricing.Band `json:"resaleEstimate"`
	PriceMultiplier float64      `json:"priceMultiplier"`
	ImageCount      int          `json:"imageCount"`
	ProcessedAt     string       `json:"processedAt"`
	Usage           vision.Usage `json:"usage"`
}

// Result is the pipeline's caller-facing envelope.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Items   []Item `json:"items"`
}

// Opts configures a Pipeline.
type Opts struct {
	// Store persists generated listings. Nil disables persistence.
	Store storage.Store
	// Clock overrides the timestamp source for tests.
	Clock func() time.Time
}

// Pipeline wires the analyzer, brand catalog, pricing engine and artifact
// generator into a single Process call.
type Pipeline struct {
	analyzer  vision.Analyzer
	catalog   *catalog.Catalog
	generator *listing.Generator
	store     storage.Store
	now       func() time.Time
}

// New creates a pipeline over the given analyzer and catalog.
func New(analyzer vision.Analyzer, cat *catalog.Catalog, opts Opts) *Pipeline {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &Pipeline{
		analyzer:  analyzer,
		catalog:   cat,
		generator: listing.NewGeneratorWithClock(now),
		store:     opts.Store,
		now:       now,
	}
}

// Process runs the full pipeline for one image set. It returns a failure
// envelope rather than an error: provider and parse failures are terminal
// only once every provider is exhausted, and a brand resolution miss
// degrades to the unknown tier instead of failing.
func (p *Pipeline) Process(ctx context.Context, images []vision.Image) Result {
	if len(images) == 0 {
		return Result{Success: false, Error: "no images provided", Items: []Item{}}
	}

	rec, usage, err := p.analyzer.Analyze(ctx, images)
	if err != nil {
		log.Error().Err(err).Int("imageCount", len(images)).Msg("analysis failed")
		return Result{Success: false, Error: err.Error(), Items: []Item{}}
	}

	item := p.enrich(rec, usage, len(images))

	if p.store != nil {
		saved := &storage.SavedListing{
			Title:       item.Title,
			SKU:         item.SKU,
			Description: item.Description,
			Brand:       item.Brand.Name,
			Tier:        item.BrandTier,
			PriceMin:    item.ResaleEstimate.Min,
			PriceMax:    item.ResaleEstimate.Max,
		}
		if err := p.store.SaveListing(saved); err != nil {
			log.Warn().Err(err).Msg("failed to persist listing")
		}
	}

	return Result{Success: true, Items: []Item{item}}
}

// ProcessBatch runs one pipeline run per image set, sequentially. Each
// item's run is independent; a failure stops the batch only through
// context cancellation.
func (p *Pipeline) ProcessBatch(ctx context.Context, imageSets [][]vision.Image) []Result {
	results := make([]Result, 0, len(imageSets))
	for _, images := range imageSets {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{Success: false, Error: err.Error(), Items: []Item{}})
			continue
		}
		results = append(results, p.Process(ctx, images))
	}
	return results
}

// enrich resolves the brand against the catalog, attaches the price band
// and multiplier, and generates the listing artifact.
func (p *Pipeline) enrich(rec *vision.AnalysisRecord, usage vision.Usage, imageCount int) Item {
	tier := catalog.TierUnknown
	multiplier := 1.0

	match := p.catalog.Resolve(rec.Brand.Name)
	if match.Found() {
		rec.Brand.Name = match.Brand
		if match.Confidence > rec.Brand.Confidence {
			rec.Brand.Confidence = match.Confidence
		}
		tier = match.Tier
		multiplier = match.Multiplier
	}

	band := pricing.PriceBand(tier, rec.ItemType)

	log.Debug().
		Str("brand", rec.Brand.Name).
		Str("tier", tier).
		Float64("confidence", rec.Brand.Confidence).
		Float64("bandMin", band.Min).
		Float64("bandMax", band.Max).
		Msg("brand enrichment")

	return Item{
		AnalysisRecord:  *rec,
		Artifact:        p.generator.Generate(rec),
		BrandTier:       tier,
		PriceBand:       band,
		ResaleEstimate:  band.Scale(multiplier),
		PriceMultiplier: multiplier,
		ImageCount:      imageCount,
		ProcessedAt:     p.now().UTC().Format(time.RFC3339),
		Usage:           usage,
	}
}
