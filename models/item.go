package models

// PlaceholderImage is used when a product is added without a picture.
const PlaceholderImage = "https://via.placeholder.com/50?text=No+Img"

// MaxImageBytes caps inline product images at 500 KiB so the store
// quota is not eaten by a single encoded picture.
const MaxImageBytes = 500 * 1024

// LowStockThreshold marks the stock level below which an item is
// flagged as running low. Design constant, not user-configurable.
const LowStockThreshold = 5

// InventoryItem is a sellable product with price and on-hand quantity.
// Items live inside the JSON-encoded "inventory" store entry, oldest first.
type InventoryItem struct {
	ID       int64   `json:"id"`
	Image    string  `json:"image"` // data URI or placeholder URL
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}

// LowStock reports whether the item is below the low-stock threshold.
func (i InventoryItem) LowStock() bool {
	return i.Stock < LowStockThreshold
}
