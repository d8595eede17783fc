package catalog

// defaultTiers is the curated brand table. Order matters: tiers are listed
// by prestige and entries within a tier in declaration order, which is the
// resolver's tie-break order.
var defaultTiers = []TierEntries{
	{
		Tier: TierLuxury,
		Entries: []Entry{
			{Name: "Gucci", Aliases: []string{"GG", "Gucci Italy"}, Categories: []string{"bags", "belts", "clothing", "shoes"}, PriceMultiplier: 2.5},
			{Name: "Louis Vuitton", Aliases: []string{"LV", "Vuitton Paris"}, Categories: []string{"bags", "accessories"}, PriceMultiplier: 2.5},
			{Name: "Chanel", Aliases: []string{"Coco Chanel", "CC logo"}, Categories: []string{"bags", "clothing", "jewelry"}, PriceMultiplier: 2.5},
			{Name: "Hermès", Aliases: []string{"Hermes", "Hermes Paris"}, Categories: []string{"bags", "scarves"}, PriceMultiplier: 2.5},
			{Name: "Dior", Aliases: []string{"Christian Dior", "CD logo"}, Categories: []string{"bags", "clothing"}, PriceMultiplier: 2.3},
			{Name: "Prada", Aliases: []string{"Prada Milano"}, Categories: []string{"bags", "shoes", "clothing"}, PriceMultiplier: 2.0},
			{Name: "Saint Laurent", Aliases: []string{"YSL", "Yves Saint Laurent"}, Categories: []string{"bags", "clothing"}, PriceMultiplier: 2.0},
			{Name: "Balenciaga", Aliases: []string{"Balenciaga Paris"}, Categories: []string{"clothing", "shoes"}, PriceMultiplier: 1.9},
			{Name: "Bottega Veneta", Aliases: []string{"Intrecciato"}, Categories: []string{"bags"}, PriceMultiplier: 2.0},
			{Name: "Burberry", Aliases: []string{"Burberrys", "Nova Check"}, Categories: []string{"coats", "scarves", "clothing"}, PriceMultiplier: 1.8},
		},
	},
	{
		Tier: TierDesigner,
		Entries: []Entry{
			{Name: "Ralph Lauren", Aliases: []string{"Polo Ralph Lauren", "Polo RL"}, Categories: []string{"clothing"}, PriceMultiplier: 1.5},
			{Name: "Hugo Boss", Aliases: []string{"BOSS"}, Categories: []string{"suits", "clothing"}, PriceMultiplier: 1.4},
			{Name: "Acne Studios", Aliases: []string{"Acne"}, Categories: []string{"clothing", "denim"}, PriceMultiplier: 1.5},
			{Name: "Tommy Hilfiger", Aliases: []string{"Tommy Jeans"}, Categories: []string{"clothing"}, PriceMultiplier: 1.2},
			{Name: "Calvin Klein", Aliases: []string{"CK Jeans"}, Categories: []string{"clothing", "underwear"}, PriceMultiplier: 1.2},
			{Name: "Michael Kors", Aliases: []string{"MK logo"}, Categories: []string{"bags", "clothing"}, PriceMultiplier: 1.2},
			{Name: "Coach", Aliases: []string{"Coach New York"}, Categories: []string{"bags"}, PriceMultiplier: 1.3},
			{Name: "Kate Spade", Aliases: []string{"Kate Spade New York"}, Categories: []string{"bags"}, PriceMultiplier: 1.2},
			{Name: "Ted Baker", Aliases: []string{"Ted Baker London"}, Categories: []string{"clothing"}, PriceMultiplier: 1.3},
			{Name: "A.P.C.", Aliases: []string{"APC", "Atelier de Production"}, Categories: []string{"denim", "clothing"}, PriceMultiplier: 1.4},
		},
	},
	{
		Tier: TierHighStreet,
		Entries: []Entry{
			{Name: "Zara", Aliases: []string{"Zara Basic", "Trafaluc"}, Categories: []string{"clothing"}, PriceMultiplier: 0.8},
			{Name: "H&M", Aliases: []string{"H & M", "Divided"}, Categories: []string{"clothing"}, PriceMultiplier: 0.6},
			{Name: "Uniqlo", Aliases: []string{"UT"}, Categories: []string{"clothing"}, PriceMultiplier: 0.7},
			{Name: "Mango", Aliases: []string{"MNG"}, Categories: []string{"clothing"}, PriceMultiplier: 0.7},
			{Name: "Marks & Spencer", Aliases: []string{"M&S", "Marks and Spencer"}, Categories: []string{"clothing"}, PriceMultiplier: 0.7},
			{Name: "Topshop", Aliases: []string{"Topman"}, Categories: []string{"clothing"}, PriceMultiplier: 0.6},
			{Name: "Gap", Aliases: []string{"GapKids"}, Categories: []string{"clothing"}, PriceMultiplier: 0.6},
			{Name: "Next", Aliases: []string{"Next UK"}, Categories: []string{"clothing"}, PriceMultiplier: 0.6},
			{Name: "ASOS", Aliases: []string{"ASOS Design"}, Categories: []string{"clothing"}, PriceMultiplier: 0.5},
			{Name: "Primark", Aliases: []string{"Atmosphere", "Cedarwood State"}, Categories: []string{"clothing"}, PriceMultiplier: 0.5},
		},
	},
	{
		Tier: TierSportswear,
		Entries: []Entry{
			{Name: "Nike", Aliases: []string{"Air Jordan", "Nike Air"}, Categories: []string{"shoes", "sportswear"}, PriceMultiplier: 1.0},
			{Name: "Adidas", Aliases: []string{"Adidas Originals", "Three Stripes"}, Categories: []string{"shoes", "sportswear"}, PriceMultiplier: 1.0},
			{Name: "The North Face", Aliases: []string{"TNF", "North Face"}, Categories: []string{"outerwear"}, PriceMultiplier: 1.2},
			{Name: "Patagonia", Aliases: []string{"Synchilla"}, Categories: []string{"outerwear"}, PriceMultiplier: 1.2},
			{Name: "Lululemon", Aliases: []string{"Lululemon Athletica"}, Categories: []string{"activewear"}, PriceMultiplier: 1.1},
			{Name: "New Balance", Aliases: []string{"NB logo"}, Categories: []string{"shoes"}, PriceMultiplier: 0.9},
			{Name: "Under Armour", Aliases: []string{"UA logo"}, Categories: []string{"sportswear"}, PriceMultiplier: 0.8},
			{Name: "Puma", Aliases: []string{"Puma Sport"}, Categories: []string{"shoes", "sportswear"}, PriceMultiplier: 0.8},
			{Name: "Reebok", Aliases: []string{"Reebok Classic"}, Categories: []string{"shoes"}, PriceMultiplier: 0.7},
			{Name: "Columbia", Aliases: []string{"Columbia Sportswear"}, Categories: []string{"outerwear"}, PriceMultiplier: 0.8},
		},
	},
}

var defaultCatalog = MustNew(defaultTiers)

// Default returns the built-in brand catalog.
func Default() *Catalog {
	return defaultCatalog
}
