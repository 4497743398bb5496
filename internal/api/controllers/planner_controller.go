package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelplanner/internal/api/validators"
	"travelplanner/internal/models/request_models"
	"travelplanner/internal/services"
	"travelplanner/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
	shareService   services.ShareServiceInterface
}

func NewPlannerController(
	plannerService services.PlannerServiceInterface,
	shareService services.ShareServiceInterface,
) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
		shareService:   shareService,
	}
}

// StartSession godoc
// @Summary Start a planner session
// @Description Create a session on the hero screen
// @Tags Planner
// @Produce json
// @Success 201 {object} response_models.SessionResponse
// @Router /sessions [post]
func (p *PlannerController) StartSession(c *gin.Context) {
	session, err := p.plannerService.Start(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, session, "Session started")
}

func (p *PlannerController) GetSession(c *gin.Context) {
	session, err := p.plannerService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Session fetched successfully")
}

func (p *PlannerController) GetStarted(c *gin.Context) {
	session, err := p.plannerService.GetStarted(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Trip form opened")
}

// Submit godoc
// @Summary Submit the trip form
// @Description Generate an itinerary for the session and move it to results
// @Tags Planner
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.TripFormRequest true "Trip form"
// @Success 200 {object} response_models.SessionResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /sessions/{id}/submit [post]
func (p *PlannerController) Submit(c *gin.Context) {
	var req request_models.TripFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, validators.Describe(err))
		return
	}

	session, err := p.plannerService.Submit(c.Request.Context(), c.Param("id"), req.ToTripForm())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Itinerary generated successfully")
}

func (p *PlannerController) Back(c *gin.Context) {
	session, err := p.plannerService.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Back to the trip form")
}

// Share godoc
// @Summary Share the current itinerary
// @Description Sign a share link for the session's itinerary and return the share payload
// @Tags Planner
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} response_models.ShareResponse
// @Failure 409 {object} utils.APIResponse
// @Router /sessions/{id}/share [post]
func (p *PlannerController) Share(c *gin.Context) {
	itinerary, err := p.plannerService.CurrentItinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	share, err := p.shareService.CreateShareLink(c.Request.Context(), *itinerary)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, share, "Share link created")
}

// Download always answers 501 once the session has an itinerary.
func (p *PlannerController) Download(c *gin.Context) {
	if _, err := p.plannerService.CurrentItinerary(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleServiceError(c, utils.ErrDownloadNotImplemented)
}
