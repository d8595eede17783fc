package catalog

import "strings"

// Resolution confidence levels for the three match passes.
const (
	confidenceCanonical = 0.95
	confidenceAlias     = 0.90
	confidenceTokenBase = 0.7
)

// Match is the result of resolving free text against the catalog. Brand is
// "" and Tier is "unknown" when nothing matched.
type Match struct {
	Brand      string
	Tier       string
	Confidence float64
	Multiplier float64
}

// Found reports whether the resolution produced a brand.
func (m Match) Found() bool { return m.Brand != "" }

// Resolve fuzzy-matches free text against the catalog. Three ordered
// passes, case-insensitive:
//
//  1. text contains a canonical brand name as a substring -> 0.95
//  2. text contains an alias as a substring -> 0.90
//  3. token-overlap fallback: if at least half of a brand's own name
//     tokens appear in the text's whitespace tokens, confidence is
//     0.7 x fraction. Only runs when passes 1-2 found nothing.
//
// A candidate replaces the current best only when strictly more confident,
// so ties go to the first brand in catalog declaration order. Resolve is a
// pure function over the immutable catalog and safe to call concurrently.
func (c *Catalog) Resolve(freeText string) Match {
	query := strings.ToUpper(freeText)
	best := Match{Tier: TierUnknown}

	for _, t := range c.tiers {
		for _, e := range t.Entries {
			if strings.Contains(query, strings.ToUpper(e.Name)) {
				if confidenceCanonical > best.Confidence {
					best = Match{Brand: e.Name, Tier: t.Tier, Confidence: confidenceCanonical, Multiplier: e.PriceMultiplier}
				}
				continue
			}
			for _, alias := range e.Aliases {
				if strings.Contains(query, strings.ToUpper(alias)) {
					if confidenceAlias > best.Confidence {
						best = Match{Brand: e.Name, Tier: t.Tier, Confidence: confidenceAlias, Multiplier: e.PriceMultiplier}
					}
					break
				}
			}
		}
	}
	if best.Found() {
		return best
	}

	queryTokens := make(map[string]bool)
	for _, tok := range strings.Fields(query) {
		queryTokens[tok] = true
	}

	for _, t := range c.tiers {
		for _, e := range t.Entries {
			nameTokens := strings.Fields(strings.ToUpper(e.Name))
			matched := 0
			for _, tok := range nameTokens {
				if queryTokens[tok] {
					matched++
				}
			}
			fraction := float64(matched) / float64(len(nameTokens))
			if fraction >= 0.5 {
				confidence := confidenceTokenBase * fraction
				if confidence > best.Confidence {
					best = Match{Brand: e.Name, Tier: t.Tier, Confidence: confidence, Multiplier: e.PriceMultiplier}
				}
			}
		}
	}

	return best
}
