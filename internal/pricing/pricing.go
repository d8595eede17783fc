// Package pricing maps a brand tier and item type to a resale price band.
// Bands are base ranges; a brand's price multiplier is a separate scaling
// knob applied by the caller via Band.Scale.
package pricing

import (
	"strings"

	"github.com/snaplist-app/snaplist/internal/catalog"
)

// Band is a min/max price range in euros.
type Band struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Scale multiplies both bounds by a brand's price multiplier. A zero or
// negative multiplier leaves the band unchanged.
func (b Band) Scale(multiplier float64) Band {
	if multiplier <= 0 {
		return b
	}
	return Band{Min: b.Min * multiplier, Max: b.Max * multiplier}
}

const defaultKey = "default"

// bands is the tier -> item type price table. Every tier has a "default"
// band for unseen item types; the "unknown" tier's default is the global
// low-end fallback.
var bands = map[string]map[string]Band{
	catalog.TierLuxury: {
		"bag":     {Min: 1500, Max: 8000},
		"handbag": {Min: 1500, Max: 8000},
		"dress":   {Min: 600, Max: 3500},
		"coat":    {Min: 800, Max: 4500},
		"jacket":  {Min: 500, Max: 3000},
		"shoes":   {Min: 400, Max: 2500},
		"belt":    {Min: 250, Max: 900},
		"scarf":   {Min: 150, Max: 700},
		defaultKey: {Min: 300, Max: 2000},
	},
	catalog.TierDesigner: {
		"bag":    {Min: 250, Max: 1200},
		"dress":  {Min: 150, Max: 700},
		"coat":   {Min: 200, Max: 900},
		"jacket": {Min: 150, Max: 800},
		"shoes":  {Min: 120, Max: 600},
		"jeans":  {Min: 80, Max: 350},
		defaultKey: {Min: 80, Max: 400},
	},
	catalog.TierHighStreet: {
		"dress":  {Min: 15, Max: 60},
		"coat":   {Min: 25, Max: 100},
		"jacket": {Min: 20, Max: 80},
		"jeans":  {Min: 15, Max: 50},
		"shoes":  {Min: 15, Max: 60},
		"bag":    {Min: 15, Max: 70},
		defaultKey: {Min: 10, Max: 50},
	},
	catalog.TierSportswear: {
		"sneakers": {Min: 40, Max: 200},
		"shoes":    {Min: 40, Max: 200},
		"jacket":   {Min: 30, Max: 150},
		"hoodie":   {Min: 25, Max: 100},
		"leggings": {Min: 20, Max: 80},
		"shorts":   {Min: 15, Max: 60},
		defaultKey: {Min: 20, Max: 100},
	},
	catalog.TierUnknown: {
		defaultKey: {Min: 5, Max: 30},
	},
}

// PriceBand looks up the price band for a tier and item type. An unseen
// item type falls back to the tier's default band; an unrecognized tier
// falls back to the unknown tier's default band.
func PriceBand(tier, itemType string) Band {
	tierBands, ok := bands[tier]
	if !ok {
		tierBands = bands[catalog.TierUnknown]
	}
	if b, ok := tierBands[normalizeItemType(itemType)]; ok {
		return b
	}
	return tierBands[defaultKey]
}

func normalizeItemType(itemType string) string {
	return strings.ToLower(strings.TrimSpace(itemType))
}
