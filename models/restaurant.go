package models

// Sentinel values used when the upstream API omits a field.
const (
	NotAvailable        = "Not available"
	AddressNotAvailable = "Address not available"
	NoTypesAvailable    = "No types available"
	CuisineNotSpecified = "Not specified"
	AlwaysOpenClose     = "24:00"
)

// Human-readable status strings.
const (
	StatusHoursNotAvailable = "Hours not available"
	StatusOpen              = "Currently open"
	StatusClosed            = "Currently closed"
	StatusPermanentlyClosed = "Permanently closed"
)

// LatLon is a geographic position in decimal degrees.
type LatLon struct {
	Lat float64
	Lng float64
}

// Period is one opening interval. Times are the upstream "HHMM" strings;
// Close is AlwaysOpenClose when the upstream reports no closing time.
type Period struct {
	Open  string
	Close string
}

// OpeningHours holds the hours block captured from the search and detail calls.
type OpeningHours struct {
	OpenNow     bool
	Periods     []Period
	WeekdayText []string
}

// Restaurant is one place returned by nearby search, later enriched by the
// detail call. It is treated as read-only once categorized.
type Restaurant struct {
	Name          string
	URL           string
	Cuisine       string
	Types         []string
	Rating        float64
	Location      LatLon
	Address       string
	PlaceID       string
	Hours         OpeningHours
	Operational   bool
	CurrentStatus string
}

// NewRestaurant returns a record with every optional field at its sentinel default.
func NewRestaurant(name string) *Restaurant {
	return &Restaurant{
		Name:          name,
		URL:           NotAvailable,
		Cuisine:       CuisineNotSpecified,
		Address:       AddressNotAvailable,
		Operational:   true,
		CurrentStatus: StatusHoursNotAvailable,
	}
}

// Indexes are the two lookups built by the categorizer. A record appears
// once per type tag it carries in ByType, and in exactly one band in ByRating.
type Indexes struct {
	ByType   map[string][]*Restaurant
	ByRating map[string][]*Restaurant
}

// NewIndexes returns empty, ready-to-fill indexes.
func NewIndexes() *Indexes {
	return &Indexes{
		ByType:   make(map[string][]*Restaurant),
		ByRating: make(map[string][]*Restaurant),
	}
}

// TypeEntries returns the total number of record entries across all type buckets.
func (ix *Indexes) TypeEntries() int {
	n := 0
	for _, rs := range ix.ByType {
		n += len(rs)
	}
	return n
}

// InsightReport holds the computed summary over a categorized result set.
type InsightReport struct {
	TotalRestaurants int
	Operational      int
	OpenNow          int
	WithFoodType     int
	AverageRating    float64
	TopRated         []*Restaurant
	ByCuisine        map[string]int
	ByBand           map[string]int
}
