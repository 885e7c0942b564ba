package storage

import "restaurant-mapper/models"

// RestaurantWriter is the interface for exporting the scraped restaurant list.
type RestaurantWriter interface {
	WriteRestaurants(restaurants []*models.Restaurant, bandOf func(*models.Restaurant) string) error
	Close() error
}

// IndexWriter is the interface for exporting the categorized indexes.
type IndexWriter interface {
	WriteIndexes(ix *models.Indexes) error
}

var (
	_ RestaurantWriter = (*CSVWriter)(nil)
	_ IndexWriter      = (*YAMLWriter)(nil)
)
