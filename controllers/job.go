package controllers

import (
	"net/http"

	"newday-backend/models"
	"newday-backend/services"
	"newday-backend/utils"

	"github.com/gin-gonic/gin"
)

// JobRequest defines the expected JSON structure for saving a job.
// Totals are always computed server side.
type JobRequest struct {
	CustomerID  string                 `json:"customerId"`
	Date        string                 `json:"date"`
	Time        string                 `json:"time"`
	ServiceType string                 `json:"serviceType"`
	Pests       []string               `json:"pests"`
	Chemicals   []models.ChemicalUsage `json:"chemicalsUsed"`
	Notes       string                 `json:"notes"`
	Subtotal    float64                `json:"subtotal" binding:"gte=0,lte=1000000000"`
	Address     string                 `json:"address"`
	Phone       string                 `json:"phone"`
	Email       string                 `json:"email"`
	Reschedule  bool                   `json:"reschedule"`
}

func (r JobRequest) toInput(id string) services.JobInput {
	return services.JobInput{
		ID:          id,
		CustomerID:  r.CustomerID,
		Date:        r.Date,
		Time:        r.Time,
		ServiceType: r.ServiceType,
		Pests:       r.Pests,
		Chemicals:   r.Chemicals,
		Notes:       r.Notes,
		Subtotal:    r.Subtotal,
		Address:     r.Address,
		Phone:       r.Phone,
		Email:       r.Email,
	}
}

type JobController struct {
	app *services.App
}

func NewJobController(app *services.App) *JobController {
	return &JobController{app: app}
}

// CreateJob places a new job for an existing customer
func (jc *JobController) CreateJob(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	job, err := jc.app.Scheduler.PlaceJob(c.Request.Context(), req.toInput(""), req.Reschedule)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// GetJobs lists jobs by date and time, optionally for one ?customerId=
func (jc *JobController) GetJobs(c *gin.Context) {
	if customerID := c.Query("customerId"); customerID != "" {
		c.JSON(http.StatusOK, jc.app.Scheduler.ForCustomer(customerID))
		return
	}
	c.JSON(http.StatusOK, jc.app.Scheduler.List())
}

func (jc *JobController) GetJob(c *gin.Context) {
	job, ok := jc.app.Scheduler.Get(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Job not found")
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateJob fully replaces a job; a new date or time moves it to another slot
func (jc *JobController) UpdateJob(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	id := c.Param("id")
	if req.CustomerID == "" {
		if existing, ok := jc.app.Scheduler.Get(id); ok {
			req.CustomerID = existing.CustomerID
		}
	}

	job, err := jc.app.Scheduler.PlaceJob(c.Request.Context(), req.toInput(id), req.Reschedule)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (jc *JobController) DeleteJob(c *gin.Context) {
	if err := jc.app.Scheduler.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// GetReceipt returns the plain-text receipt with its mailto and maps links
func (jc *JobController) GetReceipt(c *gin.Context) {
	receipt, err := jc.app.Receipt(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if c.Query("format") == "text" {
		c.String(http.StatusOK, receipt.Text)
		return
	}
	c.JSON(http.StatusOK, receipt)
}
