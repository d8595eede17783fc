// Package listing turns an enriched analysis record into ready-to-publish
// marketplace listing artifacts: title, SKU and description. Generation is
// deterministic apart from the SKU's timestamp suffix and never mutates
// the record.
package listing

import (
	"fmt"
	"strings"
	"time"

	"github.com/snaplist-app/snaplist/internal/vision"
)

// Sentinel values the vision providers use for fields they could not read
// from the photos. They are skipped in titles and detail bullets.
const (
	sentinelUnknownBrand = "unknown"
	sentinelNotVisible   = "not visible"
	sentinelNotSpecified = "not specified"
)

const maxTitleLen = 80

// Artifact is the generated listing bundle.
type Artifact struct {
	Title       string `json:"title"`
	SKU         string `json:"sku"`
	Description string `json:"description"`
}

// Generator builds listing artifacts. The clock is injectable for
// deterministic SKU tests.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a generator using the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock creates a generator with a fixed clock for tests.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Generate derives the listing artifact from an analysis record.
func (g *Generator) Generate(rec *vision.AnalysisRecord) Artifact {
	return Artifact{
		Title:       buildTitle(rec),
		SKU:         g.buildSKU(rec),
		Description: buildDescription(rec),
	}
}

func isSentinel(value, sentinel string) bool {
	return strings.EqualFold(strings.TrimSpace(value), sentinel)
}

// buildTitle joins the record's headline attributes in a fixed order,
// skipping empties and not-readable sentinels. Titles longer than 80
// characters are truncated to 77 plus "...".
func buildTitle(rec *vision.AnalysisRecord) string {
	var parts []string
	add := func(s string) {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, strings.TrimSpace(s))
		}
	}

	if !isSentinel(rec.Brand.Name, sentinelUnknownBrand) {
		add(rec.Brand.Name)
	}
	add(rec.Department)
	add(rec.ItemType)
	add(rec.Style)
	add(rec.Color)
	if rec.Size != "" && !isSentinel(rec.Size, sentinelNotVisible) {
		add("Size " + rec.Size)
	}
	if !isSentinel(rec.Material, sentinelNotSpecified) {
		add(rec.Material)
	}
	add(rec.Pattern)

	title := strings.Join(parts, " ")
	if title == "" {
		return "Fashion Item"
	}
	// Truncate on runes so a multibyte brand or color on the boundary
	// cannot produce invalid UTF-8.
	if runes := []rune(title); len(runes) > maxTitleLen {
		title = string(runes[:maxTitleLen-3]) + "..."
	}
	return title
}

// buildSKU builds a {brand}-{type}-{size}-{timestamp} code. Each segment
// is defaulted when empty, stripped to uppercase alphanumerics and
// truncated to three characters; the suffix is the last six digits of a
// millisecond epoch timestamp. Low collision probability under normal
// call rates, not global uniqueness.
func (g *Generator) buildSKU(rec *vision.AnalysisRecord) string {
	brand := skuSegment(rec.Brand.Name, "UNK")
	item := skuSegment(rec.ItemType, "ITEM")
	size := skuSegment(rec.Size, "NS")
	suffix := g.now().UnixMilli() % 1_000_000
	return fmt.Sprintf("%s-%s-%s-%06d", brand, item, size, suffix)
}

func skuSegment(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		value = fallback
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(value) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if len(s) > 3 {
		s = s[:3]
	}
	return s
}
