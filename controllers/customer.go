package controllers

import (
	"net/http"
	"storepos-backend/services"
	"storepos-backend/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
	City  string `json:"city"`
}

type CustomerController struct {
	ledger *services.Ledger
}

func NewCustomerController(ledger *services.Ledger) *CustomerController {
	return &CustomerController{ledger: ledger}
}

// GetCustomers retrieves all customers in insertion order.
func (ctl *CustomerController) GetCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.ledger.Customers())
}

// CreateCustomer adds a new customer. Email is optional and defaults
// to "N/A" in the ledger.
func (ctl *CustomerController) CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate phone format
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	cust, err := ctl.ledger.AddCustomer(input.Name, input.Phone, input.Email, input.City)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cust)
}

// DeleteCustomer removes a customer after the confirmation gate.
// Historical sales keep the customer's name; they are plain snapshots.
func (ctl *CustomerController) DeleteCustomer(c *gin.Context) {
	if !requireConfirmation(c) {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	if err := ctl.ledger.DeleteCustomer(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
