package controllers

import (
	"net/http"
	"storepos-backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	ledger *services.Ledger
}

func NewDashboardController(ledger *services.Ledger) *DashboardController {
	return &DashboardController{ledger: ledger}
}

// GetDashboardOverview recomputes the summary counters on every call:
// product count, customer count and total stock value.
func (ctl *DashboardController) GetDashboardOverview(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.ledger.Dashboard())
}
