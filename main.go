package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"restaurant-mapper/config"
	"restaurant-mapper/console"
	"restaurant-mapper/models"
	"restaurant-mapper/scraper/places"
	"restaurant-mapper/services"
	"restaurant-mapper/storage"
	"restaurant-mapper/utils"
)

// main always exits 0; failures are reported through the log only.
func main() {
	cfg := config.Load()
	runID := uuid.NewString()
	logger := utils.NewLoggerTo(os.Stdout, os.Stderr, cfg.LogLevel).WithField("run", runID)

	logger.Info("=== Restaurant Mapper starting ===")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	query, err := console.NewPrompter(os.Stdin, os.Stdout).AskQuery(cfg.DefaultRadius, cfg.DefaultLimit)
	if err != nil {
		logger.Error("Could not read search parameters: %v", err)
		return
	}

	cred := config.LoadAPIKey(cfg.APIKeyFile)
	switch cred.Status {
	case config.CredentialUnreadable:
		logger.Error("Credential file unreadable: %v", cred.Err)
		return
	case config.CredentialNotFound:
		logger.Error("No %s entry in %s — nothing to fetch", config.APIKeyVar, cfg.APIKeyFile)
		return
	}

	scraper := places.New(cfg, cred.Key, logger)
	restaurants, err := scraper.Scrape(ctx, query)
	if err != nil {
		logger.Warn("Continuing with %d restaurants gathered before the search stopped", len(restaurants))
	}
	if len(restaurants) == 0 {
		logger.Warn("No restaurants found. Nothing to categorize.")
		return
	}

	rules := services.ParseBandRules(cfg.RatingBands)
	indexes := services.NewCategorizer(rules, logger).Categorize(restaurants)

	exportSnapshots(cfg, runID, rules, restaurants, indexes, logger)

	insightSvc := services.NewInsightService(logger)
	for i, r := range restaurants {
		insightSvc.PrintRestaurant(r, i)
	}
	insightSvc.Print(insightSvc.Generate(restaurants, indexes))

	fmt.Printf("  Done. Restaurants → %s | Indexes → %s\n\n", cfg.CSVOutputPath, cfg.YAMLOutputPath)
}

// exportSnapshots hands the categorized result to the map renderer's inputs.
// Export failures are logged and do not affect the run.
func exportSnapshots(cfg *config.Config, runID string, rules services.BandRules,
	restaurants []*models.Restaurant, indexes *models.Indexes, logger *utils.Logger) {
	csvWriter, err := storage.NewCSVWriter(cfg.CSVOutputPath, runID)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
	} else {
		bandOf := func(r *models.Restaurant) string { return services.RatingBand(r.Rating, rules) }
		if err := csvWriter.WriteRestaurants(restaurants, bandOf); err != nil {
			logger.Error("CSV write failed: %v", err)
		} else {
			logger.Info("Restaurants saved to %s", cfg.CSVOutputPath)
		}
		if err := csvWriter.Close(); err != nil {
			logger.Error("CSV close failed: %v", err)
		}
	}

	var yamlWriter storage.IndexWriter = storage.NewYAMLWriter(cfg.YAMLOutputPath, runID, services.Bands)
	if err := yamlWriter.WriteIndexes(indexes); err != nil {
		logger.Error("YAML write failed: %v", err)
	} else {
		logger.Info("Indexes saved to %s", cfg.YAMLOutputPath)
	}
}
