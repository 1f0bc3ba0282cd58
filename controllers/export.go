package controllers

import (
	"fmt"
	"io"
	"net/http"

	"newday-backend/services"
	"newday-backend/utils"

	"github.com/gin-gonic/gin"
)

const maxImportBytes = 10 << 20

type ExportController struct {
	app *services.App
}

func NewExportController(app *services.App) *ExportController {
	return &ExportController{app: app}
}

// Export downloads every collection as one JSON file
func (ec *ExportController) Export(c *gin.Context) {
	snap := ec.app.State.Export()
	name := fmt.Sprintf("newday-backup-%s.json", utils.FormatDate(snap.ExportedAt))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.JSON(http.StatusOK, snap)
}

// Import replaces all data with a previously exported file
func (ec *ExportController) Import(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes))
	if err != nil {
		utils.RespondWithError(c, http.StatusRequestEntityTooLarge, "Import file too large")
		return
	}

	snap, err := ec.app.State.Import(c.Request.Context(), body)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Import complete",
		"customers": len(snap.Customers),
		"jobs":      len(snap.Jobs),
		"chemicals": len(snap.Chemicals),
	})
}

// Status reports persistence health
func (ec *ExportController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, ec.app.State.Status())
}
