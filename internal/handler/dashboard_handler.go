package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jpennells/stakeholder-map-go/internal/models"
	"github.com/jpennells/stakeholder-map-go/internal/service"
	"github.com/jpennells/stakeholder-map-go/pkg/response"
)

// DashboardHandler handles HTTP requests for the dashboard projections.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetFilterOptions handles GET /api/v1/dashboard/filters
func (h *DashboardHandler) GetFilterOptions(c *gin.Context) {
	response.Success(c, h.service.FilterOptions())
}

// GetMap handles GET /api/v1/dashboard/map
func (h *DashboardHandler) GetMap(c *gin.Context) {
	state, err := parseFilterState(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	views := h.service.Views(state)
	response.Success(c, gin.H{
		"map":    views.Map,
		"legend": views.Legend,
	})
}

// GetLegend handles GET /api/v1/dashboard/legend
func (h *DashboardHandler) GetLegend(c *gin.Context) {
	state, err := parseFilterState(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	response.Success(c, h.service.Views(state).Legend)
}

// GetTable handles GET /api/v1/dashboard/table
func (h *DashboardHandler) GetTable(c *gin.Context) {
	state, err := parseFilterState(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	rows := h.service.Views(state).Table
	response.Success(c, gin.H{
		"data":  rows,
		"count": len(rows),
	})
}

// parseFilterState builds the filter state from repeated query params.
// Absent params leave their dimension inactive.
func parseFilterState(c *gin.Context) (models.FilterState, error) {
	state := models.FilterState{
		Categories:    c.QueryArray("category"),
		Subcategories: c.QueryArray("subcategory"),
		Countries:     c.QueryArray("country"),
		Affiliations:  c.QueryArray("affiliation"),
		Query:         c.Query("q"),
	}

	for _, label := range c.QueryArray("status") {
		level, ok := models.ParseStatusLevel(label)
		if !ok {
			return state, fmt.Errorf("unknown status: %s", label)
		}
		state.Statuses = append(state.Statuses, level)
	}

	bounds, err := parseBounds(c)
	if err != nil {
		return state, err
	}
	state.Bounds = bounds

	return state, nil
}

// parseBounds reads the viewport rectangle. All four params must be given
// together; none at all means no viewport restriction.
func parseBounds(c *gin.Context) (*models.Bounds, error) {
	keys := []string{"south", "west", "north", "east"}
	values := make([]float64, len(keys))

	present := 0
	for i, key := range keys {
		raw, ok := c.GetQuery(key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s parameter: %s", key, raw)
		}
		values[i] = v
		present++
	}

	switch present {
	case 0:
		return nil, nil
	case len(keys):
		return &models.Bounds{
			South: values[0],
			West:  values[1],
			North: values[2],
			East:  values[3],
		}, nil
	default:
		return nil, fmt.Errorf("bounds require south, west, north and east together")
	}
}
