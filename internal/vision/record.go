package vision

// BrandInfo describes the brand identification for an item.
type BrandInfo struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// ConditionInfo describes the item's condition on a 1-10 scale.
type ConditionInfo struct {
	Score       int      `json:"score"`
	Description string   `json:"description"`
	Defects     []string `json:"defects"`
}

// PriceEstimate is the provider's own guess at a resale price range.
type PriceEstimate struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Reasoning string  `json:"reasoning"`
}

// AnalysisRecord is the normalized structured description of one garment
// derived from its photos. After normalization every optional string field
// is "" rather than absent and every array is empty rather than nil, so
// downstream consumers never need nil checks.
type AnalysisRecord struct {
	ItemType             string            `json:"itemType"`
	Brand                BrandInfo         `json:"brand"`
	Size                 string            `json:"size"`
	Color                string            `json:"color"`
	Material             string            `json:"material"`
	Condition            ConditionInfo     `json:"condition"`
	Gender               string            `json:"gender"`
	Department           string            `json:"department"`
	SizeType             string            `json:"sizeType"`
	Style                string            `json:"style"`
	Pattern              string            `json:"pattern"`
	SleeveLength         string            `json:"sleeveLength"`
	Occasion             string            `json:"occasion"`
	Season               string            `json:"season"`
	Theme                string            `json:"theme"`
	Features             []string          `json:"features"`
	GarmentCare          string            `json:"garmentCare"`
	CountryOfManufacture string            `json:"countryOfManufacture"`
	Measurements         map[string]string `json:"measurements"`
	KeyFeatures          []string          `json:"keyFeatures"`
	EstimatedPrice       PriceEstimate     `json:"estimatedPrice"`
}
