package controllers

import (
	"net/http"
	"storepos-backend/models"
	"storepos-backend/services"
	"storepos-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateSaleInput defines the expected JSON structure for recording a sale.
// CustomerName is a free-text snapshot taken from the selection list; it is
// never resolved back to a customer record.
type CreateSaleInput struct {
	CustomerName  string `json:"customerName" form:"customerName"`
	ProductID     int64  `json:"productId" form:"productId" binding:"required"`
	Quantity      int    `json:"quantity" form:"quantity" binding:"required,min=1"`
	PaymentMethod string `json:"paymentMethod" form:"paymentMethod" binding:"required"`
}

type SaleController struct {
	ledger *services.Ledger
}

func NewSaleController(ledger *services.Ledger) *SaleController {
	return &SaleController{ledger: ledger}
}

// GetSales retrieves the sales history, newest first for display.
func (ctl *SaleController) GetSales(c *gin.Context) {
	c.JSON(http.StatusOK, reverseSales(ctl.ledger.Sales()))
}

// CreateSale records a transaction: stock is deducted and an immutable
// snapshot appended, or neither happens. A vanished product maps to 404
// and short stock to 409; both leave every collection untouched. Accepts
// JSON as well as the rendered sale form's urlencoded submission.
func (ctl *SaleController) CreateSale(c *gin.Context) {
	var input CreateSaleInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sale, err := ctl.ledger.RecordSale(input.CustomerName, input.ProductID, input.Quantity, input.PaymentMethod)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// GetSaleOptions retrieves the always-fresh selection lists for the sale
// form: products still in stock and all customers.
func (ctl *SaleController) GetSaleOptions(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.ledger.SaleOptions())
}

func reverseSales(sales []models.SaleRecord) []models.SaleRecord {
	out := make([]models.SaleRecord, len(sales))
	for i, s := range sales {
		out[len(sales)-1-i] = s
	}
	return out
}
