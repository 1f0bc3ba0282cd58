package controllers

import (
	"net/http"

	"newday-backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	app *services.App
}

func NewDashboardController(app *services.App) *DashboardController {
	return &DashboardController{app: app}
}

func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	c.JSON(http.StatusOK, dc.app.Overview())
}
