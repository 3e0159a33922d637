package services

import (
	"strings"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
	"github.com/ajaniguide/ajani/backend/pkg/utils"
)

// categoryTable maps canonical category keys to their surface forms,
// including common misspellings. Categories are scanned in declaration order
// and variants in list order; the first variant whose normalized form is a
// substring of the normalized query wins. Substring containment (not token
// matching) deliberately tolerates compound phrases like "cheapesthotels" and
// typos, at the cost of occasional false positives.
var categoryTable = []entities.Category{
	{Key: "hotel", Variants: []string{"hotel", "hotels", "hotle", "lodging", "guest house", "guesthouse", "shortlet", "short let"}},
	{Key: "restaurant", Variants: []string{"restaurant", "restaurants", "resturant", "restuarant", "eatery"}},
	{Key: "food", Variants: []string{"food", "foods", "buka", "amala", "canteen", "local dish"}},
	{Key: "cleaning", Variants: []string{"cleaning", "cleaner", "cleaners", "clean my", "fumigation"}},
	{Key: "laundry", Variants: []string{"laundry", "laundery", "dry cleaning", "drycleaner", "dry cleaner"}},
	{Key: "salon", Variants: []string{"salon", "saloon", "barber", "barbing", "hairdresser", "hair stylist"}},
	{Key: "gym", Variants: []string{"gym", "gyms", "fitness", "workout"}},
	{Key: "pharmacy", Variants: []string{"pharmacy", "pharmacies", "chemist", "drug store", "drugstore"}},
	{Key: "mechanic", Variants: []string{"mechanic", "mechanics", "auto repair", "car repair", "vulcanizer"}},
	{Key: "tailor", Variants: []string{"tailor", "tailors", "fashion designer", "aso ebi", "sewing"}},
	{Key: "event", Variants: []string{"event", "events", "event center", "event centre", "hall rental", "party hall"}},
}

// Categories returns the canonical category table in matching order.
func Categories() []entities.Category {
	out := make([]entities.Category, len(categoryTable))
	copy(out, categoryTable)
	return out
}

// MatchCategory resolves free text to a canonical category key. The text and
// every variant are normalized before the substring test, so punctuation,
// case and spacing never block a match. Returns false when no variant
// matches.
func MatchCategory(text string) (string, bool) {
	normalized := utils.Normalize(text)
	if normalized == "" {
		return "", false
	}
	for _, category := range categoryTable {
		for _, variant := range category.Variants {
			v := utils.Normalize(variant)
			if v != "" && strings.Contains(normalized, v) {
				return category.Key, true
			}
		}
	}
	return "", false
}
