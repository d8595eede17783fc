package vision

// analysisPrompt is the fixed prompt sent to every provider. All providers
// in the fallback chain receive this exact prompt so a fallback attempt is
// a true retry of the same question.
const analysisPrompt = `Analyze these photos of a single clothing item for resale on a secondhand marketplace.

The photos show the same physical item, possibly from different angles. Use all photos together to judge brand, size, material and condition.

Respond with a JSON object with exactly these fields:
- itemType: specific garment type, e.g. "Dress", "Denim Jacket", "Sneakers". Be specific, not just "clothing".
- brand: object with "name" (brand name, "Unknown" if not identifiable), "confidence" (0-1) and "reasoning" (what the identification is based on)
- size: size on the label, "Not Visible" if no label is readable
- color: primary color(s)
- material: fabric composition, "Not Specified" if no label is readable
- condition: object with "score" (1-10, 10 is new with tags), "description" (one sentence) and "defects" (array of visible flaws, empty if none)
- gender: "Men", "Women", "Unisex" or ""
- department: marketplace department, usually same as gender
- sizeType: "Regular", "Petite", "Plus", "Tall" or ""
- style: e.g. "Casual", "Formal", "Vintage"
- pattern: e.g. "Solid", "Striped", "Floral"
- sleeveLength: e.g. "Long Sleeve", "Short Sleeve", "" if not applicable
- occasion: e.g. "Everyday", "Party", "Work"
- season: e.g. "Summer", "Winter", "All Seasons"
- theme: e.g. "Y2K", "Boho", "" if none
- features: array of notable features, e.g. ["Pockets", "Belted"]
- garmentCare: care instructions if a care label is visible
- countryOfManufacture: from the label if visible
- measurements: object with any of "chest", "length", "waist", "inseam" that can be read or estimated, as strings with units
- keyFeatures: array of short selling points for the listing
- estimatedPrice: object with "min", "max" (numbers) and "reasoning"

Rules:
- Use "" for unknown string fields and [] for unknown arrays. Never use null.
- Base the condition score on visible wear, pilling, stains and fading across all photos. List every visible defect.
- Do not invent label information you cannot see.

Respond ONLY with the JSON object, no markdown or other text.`
