package places

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"restaurant-mapper/models"
	"restaurant-mapper/services"
)

// FetchNearby pages through nearby-search results until q.Limit records are
// collected or no continuation token is returned. Before each token request
// it waits out the page-token delay. Any request or decode error ends
// pagination and is returned alongside the records collected so far.
func (s *Scraper) FetchNearby(ctx context.Context, q Query) ([]*models.Restaurant, error) {
	restaurants := make([]*models.Restaurant, 0)
	token := ""

	for page := 1; q.Limit < 0 || len(restaurants) < q.Limit; page++ {
		params := url.Values{}
		if token == "" {
			params.Set("location", q.Location)
			params.Set("radius", strconv.Itoa(q.Radius))
			params.Set("type", s.placeType)
		} else {
			params.Set("pagetoken", token)
			s.logger.Info("[places] Getting page %d with continuation token...", page)
			if err := s.pacer.Wait(ctx); err != nil {
				return restaurants, fmt.Errorf("page %d: %w", page, err)
			}
		}
		params.Set("key", s.apiKey)

		body, err := s.client.Get(ctx, s.client.Endpoint(nearbyPath, params))
		if err != nil {
			return restaurants, fmt.Errorf("page %d: %w", page, err)
		}
		s.pacer.Mark()

		result, err := DecodeSearchPage(body)
		if err != nil {
			return restaurants, fmt.Errorf("page %d: %w", page, err)
		}

		added := 0
		for i, raw := range result.Results {
			if q.Limit >= 0 && len(restaurants) >= q.Limit {
				break
			}
			place, err := DecodePlace(raw)
			if err != nil {
				s.logger.Warn("[places] Page %d result %d skipped: %v", page, i, err)
				continue
			}
			restaurants = append(restaurants, fromSummary(place))
			added++
		}

		s.logger.Info("[places] Retrieved %d restaurants (total: %d)", added, len(restaurants))

		if result.NextPageToken == "" {
			break
		}
		token = result.NextPageToken
	}

	return restaurants, nil
}

// fromSummary maps a decoded search result to a record. The website is left
// at its sentinel until the detail call.
func fromSummary(p *PlaceSummary) *models.Restaurant {
	r := models.NewRestaurant(p.Name)
	r.Rating = p.Rating.Or(0)
	r.Address = p.Vicinity.Or(models.AddressNotAvailable)
	r.Location = models.LatLon{Lat: p.Lat, Lng: p.Lng}
	r.Types = p.Types.Or([]string{models.NoTypesAvailable})
	r.Cuisine = services.CuisineLabel(r.Types)
	r.PlaceID = p.PlaceID.Or("")

	if p.OpenNow.Present {
		r.Hours.OpenNow = p.OpenNow.Value
		if r.Hours.OpenNow {
			r.CurrentStatus = models.StatusOpen
		} else {
			r.CurrentStatus = models.StatusClosed
		}
	}
	return r
}
