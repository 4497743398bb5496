package controllers

import (
	"github.com/gin-gonic/gin"

	"travelplanner/pkg/utils"
)

type HealthController struct {
	catalogSource string
}

func NewHealthController(catalogSource string) *HealthController {
	return &HealthController{catalogSource: catalogSource}
}

func (h *HealthController) Healthz(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"status":  "ok",
		"catalog": h.catalogSource,
	}, "Service is healthy")
}
