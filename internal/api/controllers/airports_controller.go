package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripway/internal/services"
	"tripway/pkg/utils"
)

type AirportsController struct {
	airportService services.AirportServiceInterface
}

func NewAirportsController(airportService services.AirportServiceInterface) *AirportsController {
	return &AirportsController{
		airportService: airportService,
	}
}

func (ac *AirportsController) GetNearestAirports(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid or missing lat parameter")
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid or missing lon parameter")
		return
	}
	limit := parseLimit(c.DefaultQuery("limit", "3"))

	matches, err := ac.airportService.NearestAirports(c.Request.Context(), lat, lon, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, matches, "Nearest airports fetched successfully")
}

func (ac *AirportsController) ResolveCity(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City parameter is required")
		return
	}
	limit := parseLimit(c.DefaultQuery("limit", "3"))

	var refLat, refLon *float64
	if raw := c.Query("lat"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			refLat = &v
		}
	}
	if raw := c.Query("lon"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			refLon = &v
		}
	}

	resolution, err := ac.airportService.ResolveCity(c.Request.Context(), city, refLat, refLon, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resolution, "City resolved successfully")
}

func (ac *AirportsController) SuggestCities(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}
	limit := parseLimit(c.DefaultQuery("limit", "10"))

	suggestions := ac.airportService.SuggestCities(c.Request.Context(), query, limit)
	utils.RespondSuccess(c, suggestions, "City suggestions fetched successfully")
}

func parseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 3
	}
	if limit > 50 {
		return 50
	}
	return limit
}
