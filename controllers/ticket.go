package controllers

import (
	"net/http"

	"newday-backend/services"
	"newday-backend/utils"

	"github.com/gin-gonic/gin"
)

// TicketCustomer is the customer half of the service ticket form.
type TicketCustomer struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
	Plan    string `json:"plan"`
}

// TicketJob is the job half of the form. ID, when set, edits that job
// instead of creating one; customerId is ignored.
type TicketJob struct {
	ID string `json:"id"`
	JobRequest
}

// TicketRequest defines the expected JSON structure of a service ticket.
type TicketRequest struct {
	Customer   TicketCustomer `json:"customer"`
	Job        TicketJob      `json:"job"`
	Reschedule bool           `json:"reschedule"`
}

type TicketController struct {
	app *services.App
}

func NewTicketController(app *services.App) *TicketController {
	return &TicketController{app: app}
}

// SaveTicket upserts the customer and saves the job in one submission
func (tc *TicketController) SaveTicket(c *gin.Context) {
	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if req.Customer.Phone != "" && !utils.ValidatePhone(req.Customer.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	result, err := tc.app.Scheduler.SaveTicket(c.Request.Context(), services.TicketInput{
		Customer: services.CustomerInput{
			Name:    req.Customer.Name,
			Phone:   req.Customer.Phone,
			Email:   req.Customer.Email,
			Address: req.Customer.Address,
			Plan:    req.Customer.Plan,
		},
		Job:        req.Job.toInput(req.Job.ID),
		Reschedule: req.Reschedule || req.Job.Reschedule,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status := http.StatusCreated
	if req.Job.ID != "" {
		status = http.StatusOK
	}
	c.JSON(status, result)
}
