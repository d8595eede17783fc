package listing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/snaplist-app/snaplist/internal/vision"
)

var shippingSection = strings.TrimSpace(dedent.Dedent(`
	SHIPPING
	Ships within 1-2 business days. Carefully packaged in recycled materials.
	Combined shipping available for multiple purchases.`))

var returnsSection = strings.TrimSpace(dedent.Dedent(`
	RETURNS
	Returns accepted within 30 days of delivery. Item must be returned in
	the same condition as sold. Buyer pays return shipping.`))

// measurementOrder lists the known measurement keys in display order.
// Unknown keys follow, sorted, so output stays deterministic.
var measurementOrder = []string{"chest", "length", "waist", "inseam"}

// buildDescription composes the multi-section listing description. Empty
// optional sections are omitted entirely, headers included.
func buildDescription(rec *vision.AnalysisRecord) string {
	var sections []string

	if header := buildHeader(rec); header != "" {
		sections = append(sections, header)
	}
	if s := buildConditionSection(rec); s != "" {
		sections = append(sections, s)
	}
	if s := buildDetailsSection(rec); s != "" {
		sections = append(sections, s)
	}
	if s := buildBulletSection("FEATURES", rec.Features); s != "" {
		sections = append(sections, s)
	}
	if s := buildMeasurementsSection(rec.Measurements); s != "" {
		sections = append(sections, s)
	}
	if s := buildBulletSection("KEY FEATURES", rec.KeyFeatures); s != "" {
		sections = append(sections, s)
	}
	sections = append(sections, shippingSection, returnsSection)

	return strings.Join(sections, "\n\n")
}

func buildHeader(rec *vision.AnalysisRecord) string {
	var parts []string
	if !isSentinel(rec.Brand.Name, sentinelUnknownBrand) && rec.Brand.Name != "" {
		parts = append(parts, rec.Brand.Name)
	}
	if rec.ItemType != "" {
		parts = append(parts, rec.ItemType)
	}
	if len(parts) == 0 {
		return "Fashion Item"
	}
	return strings.Join(parts, " ")
}

func buildConditionSection(rec *vision.AnalysisRecord) string {
	cond := rec.Condition
	if cond.Description == "" && cond.Score == 0 && len(cond.Defects) == 0 {
		return ""
	}

	lines := []string{"CONDITION"}
	switch {
	case cond.Description != "" && cond.Score > 0:
		lines = append(lines, fmt.Sprintf("%d/10 - %s", cond.Score, cond.Description))
	case cond.Description != "":
		lines = append(lines, cond.Description)
	default:
		lines = append(lines, fmt.Sprintf("%d/10", cond.Score))
	}
	if len(cond.Defects) > 0 {
		lines = append(lines, "Please note: "+strings.Join(cond.Defects, ", "))
	}
	return strings.Join(lines, "\n")
}

// detailAttributes returns the DETAILS bullets in their fixed order. A
// bullet is included only when the value is present and not a
// "not specified" style sentinel.
func detailAttributes(rec *vision.AnalysisRecord) [][2]string {
	return [][2]string{
		{"Size", rec.Size},
		{"Size Type", rec.SizeType},
		{"Color", rec.Color},
		{"Material", rec.Material},
		{"Style", rec.Style},
		{"Pattern", rec.Pattern},
		{"Sleeve Length", rec.SleeveLength},
		{"Occasion", rec.Occasion},
		{"Season", rec.Season},
		{"Theme", rec.Theme},
		{"Care", rec.GarmentCare},
		{"Made In", rec.CountryOfManufacture},
	}
}

func buildDetailsSection(rec *vision.AnalysisRecord) string {
	lines := []string{"DETAILS"}
	for _, attr := range detailAttributes(rec) {
		label, value := attr[0], attr[1]
		if strings.TrimSpace(value) == "" {
			continue
		}
		if isSentinel(value, sentinelNotSpecified) || isSentinel(value, sentinelNotVisible) {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", label, value))
	}
	if len(lines) == 1 {
		return ""
	}
	return strings.Join(lines, "\n")
}

func buildBulletSection(header string, items []string) string {
	var lines []string
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		lines = append(lines, "- "+item)
	}
	if len(lines) == 0 {
		return ""
	}
	return header + "\n" + strings.Join(lines, "\n")
}

func buildMeasurementsSection(measurements map[string]string) string {
	if len(measurements) == 0 {
		return ""
	}

	var keys []string
	used := make(map[string]bool)
	for _, k := range measurementOrder {
		if v, ok := measurements[k]; ok && strings.TrimSpace(v) != "" {
			keys = append(keys, k)
			used[k] = true
		}
	}
	var extras []string
	for k, v := range measurements {
		if !used[k] && strings.TrimSpace(v) != "" {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	keys = append(keys, extras...)

	if len(keys) == 0 {
		return ""
	}

	lines := []string{"MEASUREMENTS"}
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("- %s: %s", titleCase(k), measurements[k]))
	}
	return strings.Join(lines, "\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
