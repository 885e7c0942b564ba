package places

import (
	"context"
	"strconv"
	"time"

	"restaurant-mapper/config"
	"restaurant-mapper/models"
	"restaurant-mapper/utils"
)

// Unlimited disables the result limit of a Query.
const Unlimited = -1

const (
	nearbyPath  = "nearbysearch/json"
	detailsPath = "details/json"

	detailFields = "name,url,website,opening_hours,permanently_closed"
)

// Query describes one nearby search.
type Query struct {
	// Location is "lat,lng" in decimal degrees.
	Location string
	// Radius is in meters.
	Radius int
	// Limit caps the number of results; negative means Unlimited.
	Limit int
}

// FormatLocation renders a coordinate pair the way the API expects it.
func FormatLocation(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}

// Scraper drives the nearby-search and place-details endpoints.
type Scraper struct {
	client    *Client
	apiKey    string
	placeType string
	logger    *utils.Logger
	pacer     *utils.Pacer
	now       func() time.Time
}

// New creates a ready-to-use Places Scraper.
func New(cfg *config.Config, apiKey string, logger *utils.Logger) *Scraper {
	return &Scraper{
		client:    NewClient(cfg.PlacesBaseURL, cfg.RequestTimeout()),
		apiKey:    apiKey,
		placeType: cfg.PlaceType,
		logger:    logger,
		pacer:     utils.NewPacer(cfg.PageTokenDelay()),
		now:       time.Now,
	}
}

// Scrape runs a nearby search and then enriches every result with its
// details. A detail failure only affects that record. The returned error is
// the one that ended pagination early, if any; the records gathered before
// it are still returned and enriched.
func (s *Scraper) Scrape(ctx context.Context, q Query) ([]*models.Restaurant, error) {
	s.logger.Info("[places] Starting nearby search — location: %s | radius: %dm | limit: %s",
		q.Location, q.Radius, describeLimit(q.Limit))

	restaurants, searchErr := s.FetchNearby(ctx, q)
	if searchErr != nil {
		s.logger.Error("[places] Nearby search stopped early: %v", searchErr)
	}

	failed := 0
	for i, r := range restaurants {
		if err := s.FetchDetails(ctx, r); err != nil {
			failed++
			s.logger.Warn("[places] Details %d/%d for %q failed: %v", i+1, len(restaurants), r.Name, err)
			continue
		}
		s.logger.Debug("[places] Details %d/%d for %q — %s", i+1, len(restaurants), r.Name, r.CurrentStatus)
	}

	s.logger.Info("[places] Scrape complete — %d restaurants, %d detail lookups failed",
		len(restaurants), failed)
	return restaurants, searchErr
}

func describeLimit(limit int) string {
	if limit < 0 {
		return "unlimited"
	}
	return strconv.Itoa(limit)
}
