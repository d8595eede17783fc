package listing

import (
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/snaplist-app/snaplist/internal/vision"
	"github.com/stretchr/testify/assert"
)

func fixedClock() time.Time {
	return time.UnixMilli(1700000123456)
}

func record(mutate func(*vision.AnalysisRecord)) *vision.AnalysisRecord {
	rec := &vision.AnalysisRecord{
		ItemType:     "Dress",
		Brand:        vision.BrandInfo{Name: "Zara", Confidence: 0.9},
		Size:         "M",
		Color:        "Blue",
		Material:     "Cotton",
		Condition:    vision.ConditionInfo{Score: 8, Description: "Light wear consistent with age", Defects: []string{}},
		Gender:       "Women",
		Department:   "Women",
		Season:       "All Seasons",
		Features:     []string{},
		KeyFeatures:  []string{},
		Measurements: map[string]string{},
	}
	if mutate != nil {
		mutate(rec)
	}
	return rec
}

func TestTitleOrdering(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock)
	rec := record(func(r *vision.AnalysisRecord) {
		r.Department = ""
	})

	artifact := g.Generate(rec)
	assert.Equal(t, "Zara Dress Blue Size M Cotton", artifact.Title)
	assert.LessOrEqual(t, len(artifact.Title), 80)

	// Relative order: brand, item type, color, size
	idxZara := strings.Index(artifact.Title, "Zara")
	idxDress := strings.Index(artifact.Title, "Dress")
	idxBlue := strings.Index(artifact.Title, "Blue")
	idxSize := strings.Index(artifact.Title, "Size M")
	assert.True(t, idxZara < idxDress && idxDress < idxBlue && idxBlue < idxSize)
}

func TestTitleOmitsSentinels(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock)
	rec := record(func(r *vision.AnalysisRecord) {
		r.Brand.Name = "Unknown"
		r.Size = "Not Visible"
		r.Material = "Not Specified"
		r.Color = ""
		r.Department = ""
	})

	artifact := g.Generate(rec)
	assert.Equal(t, "Dress", artifact.Title)
}

func TestTitleFallback(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock)
	rec := record(func(r *vision.AnalysisRecord) {
		r.Brand.Name = "Unknown"
		r.ItemType = ""
		r.Size = "Not Visible"
		r.Material = "Not Specified"
		r.Color = ""
		r.Department = ""
		r.Pattern = ""
	})

	artifact := g.Generate(rec)
	assert.Equal(t, "Fashion Item", artifact.Title)
}

func TestTitleTruncation(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock)
	rec := record(func(r *vision.AnalysisRecord) {
		r.Brand.Name = "Maison Martin Margiela Artisanal"
		r.ItemType = "Double-Breasted Trench Coat"
		r.Style = "Deconstructed Avant-Garde"
		r.Color = "Midnight Navy Blue"
	})

	artifact := g.Generate(rec)
	assert.Len(t, artifact.Title, 80)
	assert.True(t, strings.HasSuffix(artifact.Title, "..."))
}

func TestTitleTruncationMultibyte(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock)
	rec := record(func(r *vision.AnalysisRecord) {
		// 50 two-byte runes put the 77-byte mark mid-rune.
		r.Brand.Name = strings.Repeat("é", 50)
	})

	artifact := g.Generate(rec)
	assert.True(t, utf8.ValidString(artifact.Title))
	assert.Len(t, []rune(artifact.Title), 80)
	assert.True(t, strings.HasSuffix(artifact.Title, "..."))
}

var skuPattern = regexp.MustCompile(`^[A-Z0-9]{1,3}-[A-Z0-9]{1,3}-[A-Z0-9]{0,3}-\d{6}$`)

func TestSKUFormat(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock)

	tests := map[string]struct {
		mutate func(*vision.AnalysisRecord)
		want   string
	}{
		"normal": {
			mutate: nil,
			want:   "ZAR-DRE-M-123456",
		},
		"missing brand and size": {
			mutate: func(r *vision.AnalysisRecord) {
				r.Brand.Name = ""
				r.Size = ""
			},
			want: "UNK-DRE-NS-123456",
		},
		"missing item type": {
			mutate: func(r *vision.AnalysisRecord) {
				r.ItemType = ""
			},
			want: "ZAR-ITE-M-123456",
		},
		"size with punctuation": {
			mutate: func(r *vision.AnalysisRecord) {
				r.Size = "38/40"
			},
			want: "ZAR-DRE-384-123456",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			artifact := g.Generate(record(tc.mutate))
			assert.Equal(t, tc.want, artifact.SKU)
			assert.Regexp(t, skuPattern, artifact.SKU)
		})
	}
}

func TestSKUWallClock(t *testing.T) {
	g := NewGenerator()
	artifact := g.Generate(record(nil))
	assert.Regexp(t, skuPattern, artifact.SKU)
}

func TestDescriptionSections(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock)
	rec := record(func(r *vision.AnalysisRecord) {
		r.Condition.Defects = []string{"small stain on hem"}
		r.Features = []string{"Pockets", "Belted"}
		r.Measurements = map[string]string{"chest": "48cm", "length": "95cm"}
		r.KeyFeatures = []string{"Great for summer"}
	})

	artifact := g.Generate(rec)
	desc := artifact.Description

	assert.True(t, strings.HasPrefix(desc, "Zara Dress"))
	assert.Contains(t, desc, "CONDITION\n8/10 - Light wear consistent with age")
	assert.Contains(t, desc, "Please note: small stain on hem")
	assert.Contains(t, desc, "DETAILS\n- Size: M")
	assert.Contains(t, desc, "- Color: Blue")
	assert.Contains(t, desc, "FEATURES\n- Pockets\n- Belted")
	assert.Contains(t, desc, "MEASUREMENTS\n- Chest: 48cm\n- Length: 95cm")
	assert.Contains(t, desc, "KEY FEATURES\n- Great for summer")
	assert.Contains(t, desc, "SHIPPING")
	assert.Contains(t, desc, "RETURNS")
}

func TestDescriptionOmitsEmptySections(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock)
	artifact := g.Generate(record(nil))
	desc := artifact.Description

	assert.NotContains(t, desc, "FEATURES\n")
	assert.NotContains(t, desc, "MEASUREMENTS")
	assert.NotContains(t, desc, "Please note:")
	assert.Contains(t, desc, "SHIPPING")
	assert.Contains(t, desc, "RETURNS")
}

func TestDescriptionSkipsSentinelDetails(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock)
	rec := record(func(r *vision.AnalysisRecord) {
		r.Material = "Not Specified"
		r.Size = "Not Visible"
	})

	artifact := g.Generate(rec)
	assert.NotContains(t, artifact.Description, "- Material:")
	assert.NotContains(t, artifact.Description, "- Size:")
	assert.Contains(t, artifact.Description, "- Color: Blue")
}

func TestGenerateDoesNotMutateRecord(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock)
	rec := record(nil)
	before := *rec
	g.Generate(rec)
	assert.Equal(t, before, *rec)
}
