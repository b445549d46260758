package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripway/internal/models/request_models"
	"tripway/internal/services"
	"tripway/pkg/utils"
)

type FlightsController struct {
	flightService services.FlightServiceInterface
}

func NewFlightsController(flightService services.FlightServiceInterface) *FlightsController {
	return &FlightsController{
		flightService: flightService,
	}
}

func (fc *FlightsController) SearchFlights(c *gin.Context) {
	var req request_models.FlightSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := fc.flightService.SearchFlights(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Flights fetched successfully")
}
