package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelplanner/internal/services"
	"travelplanner/pkg/utils"
)

type ShareController struct {
	shareService services.ShareServiceInterface
}

func NewShareController(shareService services.ShareServiceInterface) *ShareController {
	return &ShareController{
		shareService: shareService,
	}
}

// ResolveHandler godoc
// @Summary Open a shared itinerary
// @Tags Share
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} response_models.Itinerary
// @Failure 400 {object} utils.APIResponse
// @Failure 410 {object} utils.APIResponse
// @Router /shared/{token} [get]
func (s *ShareController) ResolveHandler(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		utils.RespondError(c, http.StatusBadRequest, "Share token is required")
		return
	}

	itinerary, err := s.shareService.ResolveShareLink(c.Request.Context(), token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Shared itinerary fetched successfully")
}
