package places

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"restaurant-mapper/models"
)

// FetchDetails adds website, closure flag, opening hours and a status line
// to r. On any failure r is left untouched.
func (s *Scraper) FetchDetails(ctx context.Context, r *models.Restaurant) error {
	if r.PlaceID == "" {
		return ErrNoPlaceID
	}

	params := url.Values{}
	params.Set("place_id", r.PlaceID)
	params.Set("fields", detailFields)
	params.Set("key", s.apiKey)

	body, err := s.client.Get(ctx, s.client.Endpoint(detailsPath, params))
	if err != nil {
		return fmt.Errorf("details %s: %w", r.PlaceID, err)
	}

	d, err := DecodeDetails(body)
	if err != nil {
		return fmt.Errorf("details %s: %w", r.PlaceID, err)
	}

	applyDetails(r, d, s.now())
	return nil
}

func applyDetails(r *models.Restaurant, d *DetailsResult, now time.Time) {
	r.URL = firstNonEmpty(d.Website.Or(""), d.URL.Or(""), models.NotAvailable)
	r.Operational = !d.PermanentlyClosed.Or(false)

	if d.Hours == nil {
		if r.Operational {
			r.CurrentStatus = models.StatusHoursNotAvailable
		} else {
			r.CurrentStatus = models.StatusPermanentlyClosed
		}
		return
	}

	hours := models.OpeningHours{
		OpenNow:     d.Hours.OpenNow.Or(false),
		WeekdayText: d.Hours.WeekdayText,
	}
	for _, p := range d.Hours.Periods {
		hours.Periods = append(hours.Periods, models.Period{
			Open:  p.Open,
			Close: p.Close.Or(models.AlwaysOpenClose),
		})
	}
	r.Hours = hours
	r.CurrentStatus = DescribeStatus(r.Operational, &r.Hours, now)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
