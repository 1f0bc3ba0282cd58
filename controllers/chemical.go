package controllers

import (
	"net/http"

	"newday-backend/models"
	"newday-backend/services"
	"newday-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateChemicalInput struct {
	Name      string `json:"name" binding:"required"`
	EPANumber string `json:"epaNumber"`
}

type ChemicalController struct {
	app *services.App
}

func NewChemicalController(app *services.App) *ChemicalController {
	return &ChemicalController{app: app}
}

// GetChemicals returns the chemical library with the selectable units
func (cc *ChemicalController) GetChemicals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"chemicals": cc.app.Chemicals.List(),
		"units":     models.Units,
	})
}

func (cc *ChemicalController) CreateChemical(c *gin.Context) {
	var input CreateChemicalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	chem, err := cc.app.Chemicals.Add(c.Request.Context(), input.Name, input.EPANumber)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, chem)
}

func (cc *ChemicalController) DeleteChemical(c *gin.Context) {
	if err := cc.app.Chemicals.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chemical deleted successfully"})
}

// GetCatalog returns the fixed choices of the ticket form
func (cc *ChemicalController) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"pests":        models.Pests,
		"servicePlans": models.ServicePlans,
		"units":        models.Units,
		"slots":        cc.app.Scheduler.Slots(),
		"taxRate":      cc.app.Scheduler.TaxRate(),
	})
}
