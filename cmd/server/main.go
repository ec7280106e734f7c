package main

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jpennells/stakeholder-map-go/internal/api"
	"github.com/jpennells/stakeholder-map-go/internal/config"
	"github.com/jpennells/stakeholder-map-go/internal/database"
	"github.com/jpennells/stakeholder-map-go/internal/handler"
	"github.com/jpennells/stakeholder-map-go/internal/models"
	"github.com/jpennells/stakeholder-map-go/internal/repository"
	"github.com/jpennells/stakeholder-map-go/internal/service"
	"github.com/jpennells/stakeholder-map-go/internal/store"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	gin.SetMode(cfg.GinMode)

	cache, err := loadCache(cfg.CachePath)
	if err != nil {
		logger.Fatal("failed to load geocode cache", zap.String("path", cfg.CachePath), zap.Error(err))
	}

	rows, err := store.ReadCSV(cfg.DataPath)
	if err != nil {
		logger.Fatal("failed to load stakeholder table", zap.String("path", cfg.DataPath), zap.Error(err))
	}

	// Built once; everything served afterwards is a pure function of the
	// store and the request's filter state.
	st := store.Build(rows, cache)
	logger.Info("record store built",
		zap.Int("input_rows", len(rows)),
		zap.Int("records", st.Len()),
		zap.Int("cached_locations", len(cache)),
	)

	dashboard := handler.NewDashboardHandler(service.NewDashboardService(st))
	submissions := handler.NewSubmissionHandler(service.NewSubmissionService())
	router := api.SetupRouter(dashboard, submissions, logger)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

// loadCache reads the geocode cache artifact, either the sqlite database
// written by the batch geocoder or a legacy JSON cache file.
func loadCache(path string) (models.GeocodeCache, error) {
	if strings.HasSuffix(path, ".json") {
		return repository.LoadJSONCache(path)
	}

	db, err := database.Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return repository.NewGeocodeRepository(db).LoadCache()
}
