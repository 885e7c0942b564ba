package services

import (
	"math"
	"testing"

	"restaurant-mapper/models"
	"restaurant-mapper/utils"
)

func newTestLogger() *utils.Logger { return utils.NewNopLogger() }

func TestCuisineLabel(t *testing.T) {
	tests := []struct {
		types []string
		want  string
	}{
		{[]string{"restaurant", "italian_restaurant", "food"}, "Italian restaurant"},
		{[]string{"cafe", "bakery"}, "Cafe"},
		{[]string{"restaurant", "food"}, "Not specified"},
		{[]string{"restaurant", "food", "establishment", "point_of_interest"}, "Not specified"},
		{[]string{"convenience_store", "liquor_store", "bar"}, "Bar"},
		{[]string{"grocery_or_supermarket_store"}, "Not specified"},
		{[]string{"No types available"}, "No types available"},
		{nil, "Not specified"},
		{[]string{"", "meal_takeaway"}, "Meal takeaway"},
	}

	for _, tt := range tests {
		got := CuisineLabel(tt.types)
		if got != tt.want {
			t.Errorf("CuisineLabel(%q) = %q; want %q", tt.types, got, tt.want)
		}
	}
}

func TestRatingBandLegacy(t *testing.T) {
	// The legacy first rule is satisfied by every non-NaN rating.
	for _, r := range []float64{5.0, 4.9, 4.8, 4.5, 3.0, 2.0, 0, 7.5} {
		if got := RatingBand(r, LegacyBands); got != Band48To50 {
			t.Errorf("RatingBand(%v, legacy) = %q; want %q", r, got, Band48To50)
		}
	}
	if got := RatingBand(math.NaN(), LegacyBands); got != BandNoRating {
		t.Errorf("RatingBand(NaN, legacy) = %q; want %q", got, BandNoRating)
	}
}

func TestRatingBandStrict(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{5.0, Band48To50},
		{4.8, Band48To50},
		{4.79, Band44To479},
		{4.4, Band44To479},
		{4.39, Band38To439},
		{3.8, Band38To439},
		{3.79, Band30To379},
		{3.0, Band30To379},
		{2.9, Band25To29},
		{2.5, Band25To29},
		{2.49, BandUpTo249},
		{0, BandUpTo249},
		{2.95, BandNoRating},
		{5.5, BandNoRating},
	}

	for _, tt := range tests {
		if got := RatingBand(tt.rating, StrictBands); got != tt.want {
			t.Errorf("RatingBand(%v, strict) = %q; want %q", tt.rating, got, tt.want)
		}
	}
}

func TestParseBandRules(t *testing.T) {
	if ParseBandRules("Strict") != StrictBands {
		t.Error("expected strict")
	}
	if ParseBandRules("") != LegacyBands || ParseBandRules("other") != LegacyBands {
		t.Error("expected legacy default")
	}
}

func TestCategorizeTypeIndexOneTagEach(t *testing.T) {
	rs := []*models.Restaurant{
		{Name: "A", Types: []string{"cafe"}, Rating: 4.9},
		{Name: "B", Types: []string{"bar"}, Rating: 4.1},
		{Name: "C", Types: []string{"cafe"}, Rating: 3.2},
		{Name: "D", Types: []string{"pub"}},
	}

	ix := NewCategorizer(StrictBands, newTestLogger()).Categorize(rs)

	if ix.TypeEntries() != len(rs) {
		t.Errorf("type entries: got %d, want %d", ix.TypeEntries(), len(rs))
	}
	for tag, bucket := range ix.ByType {
		seen := make(map[*models.Restaurant]bool)
		for _, r := range bucket {
			if seen[r] {
				t.Errorf("bucket %q holds %q twice", tag, r.Name)
			}
			seen[r] = true
		}
	}
	if len(ix.ByType["cafe"]) != 2 {
		t.Errorf("cafe bucket: got %d, want 2", len(ix.ByType["cafe"]))
	}
}

func TestCategorizeMultiTagDuplicates(t *testing.T) {
	r := &models.Restaurant{Name: "Multi", Types: []string{"restaurant", "food", "restaurant"}}

	ix := NewCategorizer(LegacyBands, newTestLogger()).Categorize([]*models.Restaurant{r})

	if got := len(ix.ByType["restaurant"]); got != 2 {
		t.Errorf("restaurant bucket: got %d entries, want 2", got)
	}
	if got := len(ix.ByType["food"]); got != 1 {
		t.Errorf("food bucket: got %d entries, want 1", got)
	}
	if ix.TypeEntries() != 3 {
		t.Errorf("type entries: got %d, want 3", ix.TypeEntries())
	}
}

func TestCategorizeEachRecordInOneBand(t *testing.T) {
	rs := []*models.Restaurant{
		{Name: "A", Rating: 4.9},
		{Name: "B", Rating: 4.5},
		{Name: "C", Rating: 3.0},
		{Name: "D", Rating: 0},
	}

	for _, rules := range []BandRules{LegacyBands, StrictBands} {
		ix := NewCategorizer(rules, newTestLogger()).Categorize(rs)
		total := 0
		for _, bucket := range ix.ByRating {
			total += len(bucket)
		}
		if total != len(rs) {
			t.Errorf("%s: band entries %d, want %d", rules, total, len(rs))
		}
	}
}

func TestCategorizeFreshIndexesPerCall(t *testing.T) {
	c := NewCategorizer(LegacyBands, newTestLogger())
	rs := []*models.Restaurant{{Name: "A", Types: []string{"cafe"}}}

	first := c.Categorize(rs)
	second := c.Categorize(rs)

	if len(first.ByType["cafe"]) != 1 || len(second.ByType["cafe"]) != 1 {
		t.Error("each call should build independent indexes")
	}
}

func TestHasFoodType(t *testing.T) {
	if !HasFoodType([]string{"point_of_interest", "ramen_restaurant"}) {
		t.Error("ramen_restaurant should be a food type")
	}
	if HasFoodType([]string{"establishment", "point_of_interest"}) {
		t.Error("generic tags are not food types")
	}
}
