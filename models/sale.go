package models

// Payment methods accepted at the counter.
const (
	PaymentCash     = "Cash"
	PaymentUPI      = "UPI"
	PaymentCard     = "Card"
	PaymentPayLater = "Pay Later"
)

// ValidPaymentMethod reports whether method is one of the four accepted values.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentUPI, PaymentCard, PaymentPayLater:
		return true
	}
	return false
}

// SaleRecord is an immutable snapshot of a completed transaction. Customer
// and product are stored as plain text copies taken at sale time, never as
// references, so deleting either afterwards leaves history untouched.
// Sales are append-only; there is no delete or edit path.
type SaleRecord struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"` // dd/mm/yyyy at sale time
	CustomerName  string  `json:"customerName"`
	ProductName   string  `json:"productName"`
	PaymentMethod string  `json:"paymentMethod"`
	Quantity      int     `json:"quantity"`
	Total         float64 `json:"total"` // quantity × unit price at sale time
}
