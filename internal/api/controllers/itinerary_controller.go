package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripway/internal/models/request_models"
	"tripway/internal/services"
	"tripway/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	summaryService   services.SummaryServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	summaryService services.SummaryServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		summaryService:   summaryService,
	}
}

func (ic *ItineraryController) CreateItinerary(c *gin.Context) {
	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	itinerary, err := ic.itineraryService.CreateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary created successfully")
}

func (ic *ItineraryController) SaveItinerary(c *gin.Context) {
	planID := c.Param("id")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	itinerary, err := ic.itineraryService.CreateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := ic.itineraryService.SaveItinerary(c.Request.Context(), userID, planID, *itinerary); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary saved successfully")
}

func (ic *ItineraryController) GetSavedItinerary(c *gin.Context) {
	planID := c.Param("id")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	saved, err := ic.itineraryService.GetSavedItinerary(c.Request.Context(), userID, planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, saved, "Itinerary fetched successfully")
}

func (ic *ItineraryController) ListSavedItineraries(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	saved, err := ic.itineraryService.ListSavedItineraries(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, saved, "Itineraries fetched successfully")
}

func (ic *ItineraryController) SummarizeItinerary(c *gin.Context) {
	var req request_models.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	summary, err := ic.summaryService.Summarize(c.Request.Context(), req.Prompt)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Summary generated successfully")
}
