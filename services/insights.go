package services

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"restaurant-mapper/models"
	"restaurant-mapper/utils"
)

type InsightService struct {
	logger *utils.Logger
	out    io.Writer
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger, out: os.Stdout}
}

// SetOutput redirects Print and PrintRestaurant.
func (s *InsightService) SetOutput(w io.Writer) {
	s.out = w
}

func (s *InsightService) Generate(restaurants []*models.Restaurant, ix *models.Indexes) *models.InsightReport {
	report := &models.InsightReport{
		ByCuisine: make(map[string]int),
		ByBand:    make(map[string]int),
	}

	if ix != nil {
		for band, rs := range ix.ByRating {
			report.ByBand[band] = len(rs)
		}
	}

	if len(restaurants) == 0 {
		return report
	}

	report.TotalRestaurants = len(restaurants)

	var rated []*models.Restaurant
	var total float64

	for _, r := range restaurants {
		if r.Operational {
			report.Operational++
		}
		if r.Operational && r.Hours.OpenNow {
			report.OpenNow++
		}
		if HasFoodType(r.Types) {
			report.WithFoodType++
		}
		if r.Rating > 0 {
			rated = append(rated, r)
			total += r.Rating
		}
		report.ByCuisine[r.Cuisine]++
	}

	if len(rated) > 0 {
		report.AverageRating = round2(total / float64(len(rated)))
	}

	// Top 5 by rating
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].Rating > rated[j].Rating
	})
	if len(rated) > 5 {
		report.TopRated = rated[:5]
	} else {
		report.TopRated = rated
	}

	return report
}

func (s *InsightService) Print(r *models.InsightReport) {
	w := s.out
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(w, "\n%s\n", sep)
	fmt.Fprintf(w, "  NEARBY RESTAURANT INSIGHTS\n")
	fmt.Fprintf(w, "%s\n\n", sep)

	// Overview
	fmt.Fprintf(w, "  Overview\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Restaurants found      : %d\n", r.TotalRestaurants)
	fmt.Fprintf(w, "  Operational            : %d\n", r.Operational)
	fmt.Fprintf(w, "  Open right now         : %d\n", r.OpenNow)
	fmt.Fprintf(w, "  Known food/drink types : %d\n", r.WithFoodType)
	if r.AverageRating > 0 {
		fmt.Fprintf(w, "  Average rating         : %.2f\n", r.AverageRating)
	} else {
		fmt.Fprintf(w, "  Average rating         : n/a\n")
	}
	fmt.Fprintln(w)

	// ── TOP 5 HIGHEST RATED ──────────────────────────────────────────────
	fmt.Fprintf(w, "  Top 5 Highest Rated\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.TopRated) == 0 {
		fmt.Fprintf(w, "  No rated restaurants found\n")
	} else {
		for i, l := range r.TopRated {
			fmt.Fprintf(w, "  %d. %-40s %.1f ★\n", i+1, truncate(l.Name, 38), l.Rating)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Rating Bands\n")
	fmt.Fprintf(w, "  %s\n", thin)
	for _, band := range Bands {
		if n := r.ByBand[band]; n > 0 {
			fmt.Fprintf(w, "  %-12s %s (%d)\n", band, strings.Repeat("█", n), n)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Restaurants by Cuisine\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.ByCuisine) == 0 {
		fmt.Fprintf(w, "  No cuisine data\n")
	} else {
		type cuisineCount struct {
			cuisine string
			count   int
		}
		var cs []cuisineCount
		for c, n := range r.ByCuisine {
			cs = append(cs, cuisineCount{c, n})
		}
		sort.Slice(cs, func(i, j int) bool {
			if cs[i].count != cs[j].count {
				return cs[i].count > cs[j].count
			}
			return cs[i].cuisine < cs[j].cuisine
		})
		for _, cc := range cs {
			fmt.Fprintf(w, "  %-30s %s (%d)\n", truncate(cc.cuisine, 28), strings.Repeat("█", cc.count), cc.count)
		}
	}

	fmt.Fprintf(w, "\n%s\n\n", sep)
}

// PrintRestaurant renders a single record with its hours.
func (s *InsightService) PrintRestaurant(r *models.Restaurant, index int) {
	w := s.out
	fmt.Fprintf(w, "Restaurant #%d: %s\n", index+1, r.Name)
	fmt.Fprintf(w, "  Cuisine : %s\n", r.Cuisine)
	fmt.Fprintf(w, "  Types   : %s\n", strings.Join(r.Types, ", "))
	if r.Rating > 0 {
		fmt.Fprintf(w, "  Rating  : %.1f/5.0\n", r.Rating)
	} else {
		fmt.Fprintf(w, "  Rating  : No rating\n")
	}
	fmt.Fprintf(w, "  Address : %s\n", r.Address)
	fmt.Fprintf(w, "  Position: %.6f, %.6f\n", r.Location.Lat, r.Location.Lng)
	fmt.Fprintf(w, "  Website : %s\n", r.URL)
	fmt.Fprintf(w, "  Status  : %s\n", r.CurrentStatus)
	if len(r.Hours.WeekdayText) > 0 {
		fmt.Fprintf(w, "  Hours   :\n")
		for _, line := range r.Hours.WeekdayText {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
	fmt.Fprintln(w)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
