// Command geocoder builds the geocode cache the dashboard server consumes.
// It reads the stakeholder table, derives the distinct location keys and
// resolves the uncached ones against Nominatim, pacing requests and
// recording misses so they are never retried on the next run.
package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/jpennells/stakeholder-map-go/internal/database"
	"github.com/jpennells/stakeholder-map-go/internal/geocode"
	"github.com/jpennells/stakeholder-map-go/internal/models"
	"github.com/jpennells/stakeholder-map-go/internal/repository"
	"github.com/jpennells/stakeholder-map-go/internal/store"
)

func main() {
	dataPath := flag.String("data", "./data/stakeholders.csv", "stakeholder CSV path")
	cachePath := flag.String("cache", "./data/geocode_cache.db", "geocode cache database path")
	importPath := flag.String("import", "", "seed the cache from a JSON cache file")
	exportPath := flag.String("export", "", "write the cache out as a JSON cache file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	db, err := database.Open(*cachePath)
	if err != nil {
		logger.Fatal("failed to open cache database", zap.Error(err))
	}
	defer db.Close()
	repo := repository.NewGeocodeRepository(db)

	if *importPath != "" {
		seeded, err := importJSON(repo, *importPath)
		if err != nil {
			logger.Fatal("failed to import JSON cache", zap.Error(err))
		}
		logger.Info("imported JSON cache", zap.String("path", *importPath), zap.Int("entries", seeded))
	}

	rows, err := store.ReadCSV(*dataPath)
	if err != nil {
		logger.Fatal("failed to load stakeholder table", zap.Error(err))
	}

	known, err := repo.Locations()
	if err != nil {
		logger.Fatal("failed to list cached locations", zap.Error(err))
	}

	client := geocode.NewClient()
	ctx := context.Background()

	resolved, missed := 0, 0
	for _, location := range pendingLocations(rows, known) {
		coord, err := client.Geocode(ctx, location)
		if err != nil {
			// Exhausted retries; record as unresolved, same as a miss.
			logger.Warn("geocoding failed", zap.String("location", location), zap.Error(err))
			coord = nil
		}
		if err := repo.Upsert(location, coord); err != nil {
			logger.Fatal("failed to store geocode result", zap.String("location", location), zap.Error(err))
		}
		if coord != nil {
			resolved++
			logger.Info("geocoded",
				zap.String("location", location),
				zap.Float64("latitude", coord.Latitude),
				zap.Float64("longitude", coord.Longitude),
			)
		} else {
			missed++
			logger.Info("no match", zap.String("location", location))
		}
	}
	logger.Info("geocoding done", zap.Int("resolved", resolved), zap.Int("missed", missed))

	if *exportPath != "" {
		entries, err := repo.All()
		if err != nil {
			logger.Fatal("failed to read cache for export", zap.Error(err))
		}
		if err := repository.WriteJSONCache(*exportPath, entries); err != nil {
			logger.Fatal("failed to export JSON cache", zap.Error(err))
		}
		logger.Info("exported JSON cache", zap.String("path", *exportPath), zap.Int("entries", len(entries)))
	}
}

// pendingLocations derives the distinct location keys in first-seen order,
// skipping rows without a country and locations already attempted.
func pendingLocations(rows []models.Row, known map[string]bool) []string {
	seen := make(map[string]bool)
	var pending []string
	for _, row := range rows {
		if row.Country == "" {
			continue
		}
		location := store.LocationKey(row.City, row.Country)
		if seen[location] || known[location] {
			continue
		}
		seen[location] = true
		pending = append(pending, location)
	}
	return pending
}

func importJSON(repo *repository.GeocodeRepository, path string) (int, error) {
	cache, err := repository.LoadJSONCache(path)
	if err != nil {
		return 0, err
	}
	for location, coord := range cache {
		c := coord
		if err := repo.Upsert(location, &c); err != nil {
			return 0, err
		}
	}
	return len(cache), nil
}
