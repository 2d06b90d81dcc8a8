package controllers

import (
	"html/template"
	"net/http"
	"storepos-backend/services"
	"storepos-backend/utils"

	"github.com/gin-gonic/gin"
)

// ViewsController projects the ledger into HTML. Every request is a full
// redraw from current state; nothing is diffed or cached.
type ViewsController struct {
	ledger *services.Ledger
}

func NewViewsController(ledger *services.Ledger) *ViewsController {
	return &ViewsController{ledger: ledger}
}

// TemplateFuncs are the helpers available inside the HTML templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"money":      utils.FormatMoney,
		"badgeClass": PaymentBadgeClass,
	}
}

// PaymentBadgeClass maps a payment method onto its display badge class.
func PaymentBadgeClass(method string) string {
	switch method {
	case "Cash":
		return "badge-cash"
	case "UPI":
		return "badge-upi"
	case "Card":
		return "badge-card"
	case "Pay Later":
		return "badge-paylater"
	}
	return ""
}

// Index renders the whole page: dashboard cards, all three tables and the
// sale form's selection lists.
func (ctl *ViewsController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{
		"StoreName": ctl.ledger.StoreName(),
		"Dashboard": ctl.ledger.Dashboard(),
		"Items":     ctl.ledger.Items(),
		"Sales":     reverseSales(ctl.ledger.Sales()),
		"Customers": ctl.ledger.Customers(),
		"Options":   ctl.ledger.SaleOptions(),
	})
}

// Dashboard renders the summary cards fragment.
func (ctl *ViewsController) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard_cards", ctl.ledger.Dashboard())
}

// Inventory renders the inventory table fragment in display order.
func (ctl *ViewsController) Inventory(c *gin.Context) {
	c.HTML(http.StatusOK, "inventory_table", ctl.ledger.Items())
}

// Sales renders the sales table fragment, newest first.
func (ctl *ViewsController) Sales(c *gin.Context) {
	c.HTML(http.StatusOK, "sales_table", reverseSales(ctl.ledger.Sales()))
}

// Customers renders the customers table fragment.
func (ctl *ViewsController) Customers(c *gin.Context) {
	c.HTML(http.StatusOK, "customers_table", ctl.ledger.Customers())
}
