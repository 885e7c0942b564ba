package places

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Response status values returned by the Places API.
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

// Optional is a decoded JSON field that remembers whether it was present.
// An explicit null counts as absent.
type Optional[T any] struct {
	Value   T
	Present bool
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Present = true
	return nil
}

// Or returns the value when present and def otherwise.
func (o Optional[T]) Or(def T) T {
	if o.Present {
		return o.Value
	}
	return def
}

type wireLatLng struct {
	Lat Optional[float64] `json:"lat"`
	Lng Optional[float64] `json:"lng"`
}

type wireGeometry struct {
	Location Optional[wireLatLng] `json:"location"`
}

type wireHours struct {
	OpenNow     Optional[bool]     `json:"open_now"`
	WeekdayText Optional[[]string] `json:"weekday_text"`
	Periods     []wirePeriod       `json:"periods"`
}

type wireTimePoint struct {
	Day  Optional[int]    `json:"day"`
	Time Optional[string] `json:"time"`
}

type wirePeriod struct {
	Open  Optional[wireTimePoint] `json:"open"`
	Close Optional[wireTimePoint] `json:"close"`
}

type wireEnvelope struct {
	Status       Optional[string] `json:"status"`
	ErrorMessage Optional[string] `json:"error_message"`
}

// SearchPage is one decoded nearby-search response. Results are kept raw so
// a single bad entry can be rejected without losing the page.
type SearchPage struct {
	Status        string
	ErrorMessage  string
	NextPageToken string
	Results       []json.RawMessage
}

// PlaceSummary is one decoded nearby-search result.
type PlaceSummary struct {
	Name     string
	Lat      float64
	Lng      float64
	Rating   Optional[float64]
	Vicinity Optional[string]
	Types    Optional[[]string]
	OpenNow  Optional[bool]
	PlaceID  Optional[string]
}

// DetailsResult is a decoded place-details response.
type DetailsResult struct {
	Status            string
	ErrorMessage      string
	Website           Optional[string]
	URL               Optional[string]
	PermanentlyClosed Optional[bool]
	Hours             *HoursBlock
}

// HoursBlock is the opening_hours object of a details response.
type HoursBlock struct {
	OpenNow     Optional[bool]
	WeekdayText []string
	Periods     []PeriodTimes
}

// PeriodTimes is one opening period; Close is absent for round-the-clock places.
type PeriodTimes struct {
	Open  string
	Close Optional[string]
}

// apiError converts a non-OK envelope to *APIError.
func apiError(status, message string) error {
	if status == StatusOK {
		return nil
	}
	return &APIError{Status: status, Message: message}
}

// DecodeSearchPage parses a nearby-search body. It returns *APIError for a
// non-OK status other than ZERO_RESULTS, which decodes as an empty page.
func DecodeSearchPage(body []byte) (*SearchPage, error) {
	var w struct {
		wireEnvelope
		NextPageToken Optional[string]            `json:"next_page_token"`
		Results       Optional[[]json.RawMessage] `json:"results"`
	}
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !w.Status.Present {
		return nil, missingField("status")
	}

	page := &SearchPage{
		Status:        w.Status.Value,
		ErrorMessage:  w.ErrorMessage.Or(""),
		NextPageToken: w.NextPageToken.Or(""),
	}
	switch page.Status {
	case StatusZeroResults:
		return page, nil
	case StatusOK:
	default:
		return page, apiError(page.Status, page.ErrorMessage)
	}

	if !w.Results.Present {
		return nil, missingField("results")
	}
	page.Results = w.Results.Value
	return page, nil
}

// DecodePlace parses one nearby-search result. name and
// geometry.location.lat/lng are required.
func DecodePlace(raw json.RawMessage) (*PlaceSummary, error) {
	var w struct {
		Name         Optional[string]       `json:"name"`
		Rating       Optional[float64]      `json:"rating"`
		Vicinity     Optional[string]       `json:"vicinity"`
		Geometry     Optional[wireGeometry] `json:"geometry"`
		Types        Optional[[]string]     `json:"types"`
		OpeningHours Optional[wireHours]    `json:"opening_hours"`
		PlaceID      Optional[string]       `json:"place_id"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if !w.Name.Present {
		return nil, missingField("name")
	}
	if !w.Geometry.Present || !w.Geometry.Value.Location.Present {
		return nil, missingField("geometry.location")
	}
	loc := w.Geometry.Value.Location.Value
	if !loc.Lat.Present {
		return nil, missingField("geometry.location.lat")
	}
	if !loc.Lng.Present {
		return nil, missingField("geometry.location.lng")
	}

	p := &PlaceSummary{
		Name:     w.Name.Value,
		Lat:      loc.Lat.Value,
		Lng:      loc.Lng.Value,
		Rating:   w.Rating,
		Vicinity: w.Vicinity,
		Types:    w.Types,
		PlaceID:  w.PlaceID,
	}
	if w.OpeningHours.Present {
		p.OpenNow = w.OpeningHours.Value.OpenNow
	}
	return p, nil
}

// DecodeDetails parses a place-details body. A non-OK status yields *APIError.
func DecodeDetails(body []byte) (*DetailsResult, error) {
	var w struct {
		wireEnvelope
		Result Optional[struct {
			Website           Optional[string]    `json:"website"`
			URL               Optional[string]    `json:"url"`
			PermanentlyClosed Optional[bool]      `json:"permanently_closed"`
			OpeningHours      Optional[wireHours] `json:"opening_hours"`
		}] `json:"result"`
	}
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !w.Status.Present {
		return nil, missingField("status")
	}

	d := &DetailsResult{
		Status:       w.Status.Value,
		ErrorMessage: w.ErrorMessage.Or(""),
	}
	if err := apiError(d.Status, d.ErrorMessage); err != nil {
		return d, err
	}
	if !w.Result.Present {
		return nil, missingField("result")
	}

	res := w.Result.Value
	d.Website = res.Website
	d.URL = res.URL
	d.PermanentlyClosed = res.PermanentlyClosed
	if res.OpeningHours.Present {
		d.Hours = decodeHours(res.OpeningHours.Value)
	}
	return d, nil
}

// decodeHours keeps periods that carry an opening time; others are dropped.
func decodeHours(w wireHours) *HoursBlock {
	h := &HoursBlock{
		OpenNow:     w.OpenNow,
		WeekdayText: w.WeekdayText.Or(nil),
	}
	for _, p := range w.Periods {
		if !p.Open.Present || !p.Open.Value.Time.Present {
			continue
		}
		pt := PeriodTimes{Open: p.Open.Value.Time.Value}
		if p.Close.Present {
			pt.Close = p.Close.Value.Time
		}
		h.Periods = append(h.Periods, pt)
	}
	return h
}
