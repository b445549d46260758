package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripway/internal/models/request_models"
	"tripway/internal/services"
	"tripway/pkg/utils"
)

type HotelsController struct {
	hotelService services.HotelServiceInterface
}

func NewHotelsController(hotelService services.HotelServiceInterface) *HotelsController {
	return &HotelsController{
		hotelService: hotelService,
	}
}

func (hc *HotelsController) SearchHotels(c *gin.Context) {
	var req request_models.HotelSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := hc.hotelService.SearchHotels(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Hotels fetched successfully")
}
