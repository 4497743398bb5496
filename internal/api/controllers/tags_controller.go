package controllers

import (
	"github.com/gin-gonic/gin"

	"travelplanner/internal/services"
	"travelplanner/pkg/utils"
)

type TagController struct {
	tagService services.TagServiceInterface
}

func NewTagController(tagService services.TagServiceInterface) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

// ListAllTagsHandler godoc
// @Summary List interest tags
// @Description Fetch every interest the form offers, with label and icon
// @Tags Tags
// @Produce json
// @Success 200 {array} response_models.InterestResponse
// @Router /tags [get]
func (tc *TagController) ListAllTagsHandler(c *gin.Context) {
	tags := tc.tagService.GetAllTags(c.Request.Context())
	utils.RespondSuccess(c, tags, "Fetched tags successfully")
}

// FormDefaultsHandler godoc
// @Summary Trip form defaults
// @Description Initial values and bounds for the trip form
// @Tags Tags
// @Produce json
// @Success 200 {object} response_models.FormDefaultsResponse
// @Router /form/defaults [get]
func (tc *TagController) FormDefaultsHandler(c *gin.Context) {
	defaults := tc.tagService.GetFormDefaults(c.Request.Context())
	utils.RespondSuccess(c, defaults, "Fetched form defaults successfully")
}
