package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"restaurant-mapper/models"
	"restaurant-mapper/utils"
)

// Rating band labels, highest first.
const (
	Band48To50   = "5.0-4.8"
	Band44To479  = "4.79-4.4"
	Band38To439  = "4.39-3.8"
	Band30To379  = "3.79-3.0"
	Band25To29   = "2.9-2.5"
	BandUpTo249  = "≤2.49"
	BandNoRating = "no rating"
)

// Bands lists every band label in display order.
var Bands = []string{Band48To50, Band44To479, Band38To439, Band30To379, Band25To29, BandUpTo249, BandNoRating}

// genericTypes never make a useful cuisine label.
var genericTypes = map[string]struct{}{
	"restaurant":        {},
	"food":              {},
	"establishment":     {},
	"point_of_interest": {},
}

// CuisineLabel picks the first specific tag, e.g. "italian_restaurant"
// becomes "Italian restaurant". Generic tags and "*_store" tags are skipped.
func CuisineLabel(types []string) string {
	for _, t := range types {
		if _, generic := genericTypes[t]; generic || strings.HasSuffix(t, "_store") {
			continue
		}
		label := strings.ReplaceAll(t, "_", " ")
		r, size := utf8.DecodeRuneInString(label)
		if r == utf8.RuneError {
			continue
		}
		return string(unicode.ToUpper(r)) + label[size:]
	}
	return models.CuisineNotSpecified
}

// BandRules selects how ratings are mapped to bands.
type BandRules int

const (
	// LegacyBands keeps the first rule as "r <= 5.0 || r >= 4.8", which
	// matches every rating that is not NaN. Pending product confirmation.
	LegacyBands BandRules = iota
	// StrictBands reads the first rule as 4.8 <= r <= 5.0.
	StrictBands
)

// ParseBandRules maps a config value to BandRules; anything but "strict" is legacy.
func ParseBandRules(s string) BandRules {
	if strings.EqualFold(strings.TrimSpace(s), "strict") {
		return StrictBands
	}
	return LegacyBands
}

func (b BandRules) String() string {
	if b == StrictBands {
		return "strict"
	}
	return "legacy"
}

// RatingBand returns the band label for rating; the first matching rule wins.
func RatingBand(rating float64, rules BandRules) string {
	top := rating <= 5.0 || rating >= 4.8
	if rules == StrictBands {
		top = rating <= 5.0 && rating >= 4.8
	}

	switch {
	case top:
		return Band48To50
	case rating >= 4.4 && rating <= 4.79:
		return Band44To479
	case rating >= 3.8 && rating <= 4.39:
		return Band38To439
	case rating >= 3.0 && rating <= 3.79:
		return Band30To379
	case rating >= 2.5 && rating <= 2.9:
		return Band25To29
	case rating <= 2.49:
		return BandUpTo249
	default:
		return BandNoRating
	}
}

// Categorizer files restaurants into type and rating-band indexes.
type Categorizer struct {
	rules  BandRules
	logger *utils.Logger
}

// NewCategorizer creates a Categorizer using the given band rules.
func NewCategorizer(rules BandRules, logger *utils.Logger) *Categorizer {
	return &Categorizer{rules: rules, logger: logger}
}

// Categorize builds fresh indexes over rs. Every tag a record carries adds
// one entry for it, duplicate tags included.
func (c *Categorizer) Categorize(rs []*models.Restaurant) *models.Indexes {
	ix := models.NewIndexes()

	for _, r := range rs {
		for _, t := range r.Types {
			ix.ByType[t] = append(ix.ByType[t], r)
		}
		band := RatingBand(r.Rating, c.rules)
		ix.ByRating[band] = append(ix.ByRating[band], r)
	}

	c.logger.Info("[categorizer] Filed %d restaurants into %d type buckets and %d rating bands (%s rules)",
		len(rs), len(ix.ByType), len(ix.ByRating), c.rules)
	return ix
}
