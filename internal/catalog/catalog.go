package catalog

import (
	"strings"

	"github.com/pkg/errors"
)

// Brand tier names, ordered by market prestige. Resolution iterates tiers
// in this declared order, so a confidence tie resolves to the
// earlier-declared brand.
const (
	TierLuxury     = "luxury"
	TierDesigner   = "designer"
	TierHighStreet = "highStreet"
	TierSportswear = "sportswear"
	TierUnknown    = "unknown"
)

// Entry is one canonical brand with its alias list, category tags and
// price multiplier.
type Entry struct {
	Name            string
	Aliases         []string
	Categories      []string
	PriceMultiplier float64
}

// TierEntries is one tier's ordered brand list.
type TierEntries struct {
	Tier    string
	Entries []Entry
}

// Catalog is an explicitly ordered, immutable brand table. It is loaded
// once at startup and safe for concurrent reads.
type Catalog struct {
	tiers []TierEntries
}

// New builds a catalog from ordered tier data. A canonical brand name may
// not appear in more than one tier, compared case-insensitively.
func New(tiers []TierEntries) (*Catalog, error) {
	type declaration struct {
		name string
		tier string
	}
	seen := make(map[string]declaration)
	for _, t := range tiers {
		for _, e := range t.Entries {
			key := strings.ToUpper(e.Name)
			if prev, ok := seen[key]; ok {
				// Report the first-declared casing, not the duplicate's.
				return nil, errors.Errorf("brand %q declared in both %s and %s tiers", prev.name, prev.tier, t.Tier)
			}
			seen[key] = declaration{name: e.Name, tier: t.Tier}
		}
	}
	return &Catalog{tiers: tiers}, nil
}

// MustNew is like New but panics on invalid data. Intended for the static
// default catalog.
func MustNew(tiers []TierEntries) *Catalog {
	c, err := New(tiers)
	if err != nil {
		panic(err)
	}
	return c
}

// Tiers returns the ordered tier data.
func (c *Catalog) Tiers() []TierEntries {
	return c.tiers
}

// Lookup returns the entry and tier for a canonical brand name,
// case-insensitively.
func (c *Catalog) Lookup(name string) (Entry, string, bool) {
	for _, t := range c.tiers {
		for _, e := range t.Entries {
			if strings.EqualFold(e.Name, name) {
				return e, t.Tier, true
			}
		}
	}
	return Entry{}, TierUnknown, false
}
