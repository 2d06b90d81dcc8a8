package models

// Customer is a store customer. Email defaults to the literal "N/A"
// when not supplied; there is no uniqueness constraint beyond the id.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	City  string `json:"city"`
}
