package controllers

import (
	"net/http"

	"newday-backend/services"
	"newday-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateCustomerInput defines the expected JSON structure for saving a customer.
// A customer with the same name and phone is updated instead of duplicated.
type CreateCustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
	Plan    string `json:"plan"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Plan    *string `json:"plan"`
}

type CustomerController struct {
	app *services.App
}

func NewCustomerController(app *services.App) *CustomerController {
	return &CustomerController{app: app}
}

// CreateCustomer upserts a customer by name and phone
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	customer, created, err := cc.app.Directory.UpsertByNameAndPhone(c.Request.Context(), services.CustomerInput{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
		Plan:    input.Plan,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, customer)
}

// GetCustomers lists customers in insertion order
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, cc.app.Directory.List())
}

// SearchCustomers matches ?q= against name, phone, email and address
func (cc *CustomerController) SearchCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, cc.app.Directory.Search(c.Query("q")))
}

// GetCustomer returns one customer with their jobs
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	id := c.Param("id")
	customer, ok := cc.app.Directory.Get(id)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"customer": customer,
		"jobs":     cc.app.Scheduler.ForCustomer(id),
	})
}

// UpdateCustomer applies the provided fields to a customer
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id := c.Param("id")
	existing, ok := cc.app.Directory.Get(id)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	fields := services.CustomerInput{
		Name:    existing.Name,
		Phone:   existing.Phone,
		Email:   existing.Email,
		Address: existing.Address,
		Plan:    string(existing.Plan),
	}
	if input.Name != nil {
		fields.Name = *input.Name
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		fields.Phone = *input.Phone
	}
	if input.Email != nil {
		if *input.Email != "" && !utils.ValidateEmail(*input.Email) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
			return
		}
		fields.Email = *input.Email
	}
	if input.Address != nil {
		fields.Address = *input.Address
	}
	if input.Plan != nil {
		fields.Plan = *input.Plan
	}

	customer, err := cc.app.Directory.Update(c.Request.Context(), id, fields)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer and all of their jobs
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	removed, err := cc.app.Directory.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully", "jobsRemoved": removed})
}
