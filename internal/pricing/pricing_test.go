package pricing

import (
	"testing"

	"github.com/snaplist-app/snaplist/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestPriceBand(t *testing.T) {
	tests := map[string]struct {
		tier     string
		itemType string
		want     Band
	}{
		"luxury bag": {
			tier:     catalog.TierLuxury,
			itemType: "bag",
			want:     Band{Min: 1500, Max: 8000},
		},
		"item type is case insensitive": {
			tier:     catalog.TierLuxury,
			itemType: "Bag",
			want:     Band{Min: 1500, Max: 8000},
		},
		"unseen item type falls back to tier default": {
			tier:     catalog.TierLuxury,
			itemType: "fedora",
			want:     Band{Min: 300, Max: 2000},
		},
		"unknown tier falls back to global default": {
			tier:     catalog.TierUnknown,
			itemType: "anything-unseen",
			want:     Band{Min: 5, Max: 30},
		},
		"unrecognized tier falls back to global default": {
			tier:     "couture",
			itemType: "dress",
			want:     Band{Min: 5, Max: 30},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, PriceBand(tc.tier, tc.itemType))
		})
	}
}

func TestEveryTierHasDefaultBand(t *testing.T) {
	for tier, tierBands := range bands {
		_, ok := tierBands[defaultKey]
		assert.True(t, ok, "tier %s has no default band", tier)
	}
}

func TestBandScale(t *testing.T) {
	b := Band{Min: 100, Max: 400}
	assert.Equal(t, Band{Min: 250, Max: 1000}, b.Scale(2.5))
	assert.Equal(t, b, b.Scale(0))
	assert.Equal(t, b, b.Scale(-1))
}
