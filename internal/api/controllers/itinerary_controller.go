package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelplanner/internal/api/validators"
	"travelplanner/internal/models/request_models"
	"travelplanner/internal/services"
	"travelplanner/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateHandler godoc
// @Summary Generate an itinerary
// @Description Sample a day-by-day itinerary from a trip form without creating a session
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.TripFormRequest true "Trip form"
// @Success 200 {object} response_models.Itinerary
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries [post]
func (ic *ItineraryController) GenerateHandler(c *gin.Context) {
	var req request_models.TripFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, validators.Describe(err))
		return
	}

	itinerary, err := ic.itineraryService.Generate(c.Request.Context(), req.ToTripForm())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}
