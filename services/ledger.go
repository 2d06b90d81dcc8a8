// services/ledger.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"storepos-backend/models"
	"storepos-backend/store"
	"storepos-backend/utils"
	"strings"
	"sync"
	"time"
)

var (
	// ErrNotFound is returned when a delete targets an id that is not present.
	ErrNotFound = errors.New("record not found")
	// ErrProductNotFound is returned when a sale references a product id
	// that no longer exists, e.g. deleted while the sale form was open.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a sale asks for more units
	// than are on hand.
	ErrInsufficientStock = errors.New("not enough stock available")
	// ErrImageTooLarge is returned when an inline product image exceeds
	// the 500 KiB cap.
	ErrImageTooLarge = errors.New("image exceeds the 500KB limit")
	// ErrInvalidInput covers empty names, negative amounts and unknown
	// payment methods.
	ErrInvalidInput = errors.New("invalid input")
)

// DashboardSummary carries the derived counters shown on the dashboard.
// Always recomputed from current state, never stored.
type DashboardSummary struct {
	TotalProducts  int     `json:"totalProducts"`
	TotalCustomers int     `json:"totalCustomers"`
	StockValue     float64 `json:"stockValue"`
}

// ProductOption is a sellable product in the sale form's selection list.
type ProductOption struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// CustomerOption is a customer choice in the sale form's selection list.
type CustomerOption struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// SaleOptions are the always-fresh selection lists for the sale form.
// Out-of-stock products are excluded so they cannot be sold.
type SaleOptions struct {
	Products  []ProductOption  `json:"products"`
	Customers []CustomerOption `json:"customers"`
}

// Ledger owns the application state: the three ordered collections and the
// store name, loaded once from the persistent store at construction and
// written back in full on every mutation. All mutators prepare the change
// on copies and commit to the in-memory fields only after the store write
// succeeds, so memory never runs ahead of disk when a save fails.
type Ledger struct {
	mu        sync.Mutex
	kv        *store.KV
	inventory []models.InventoryItem
	customers []models.Customer
	sales     []models.SaleRecord
	storeName string
	nextID    int64
}

// NewLedger loads all four store entries. Absent entries initialize to
// empty collections; the store name falls back to defaultName. The id
// counter resumes past the highest persisted id.
func NewLedger(kv *store.KV, defaultName string) (*Ledger, error) {
	l := &Ledger{kv: kv, storeName: defaultName, nextID: 1}

	if err := loadJSON(kv, store.KeyInventory, &l.inventory); err != nil {
		return nil, err
	}
	if err := loadJSON(kv, store.KeySales, &l.sales); err != nil {
		return nil, err
	}
	if err := loadJSON(kv, store.KeyCustomers, &l.customers); err != nil {
		return nil, err
	}
	if raw, ok, err := kv.Load(store.KeyStoreName); err != nil {
		return nil, err
	} else if ok && len(raw) > 0 {
		l.storeName = string(raw)
	}

	for _, item := range l.inventory {
		if item.ID >= l.nextID {
			l.nextID = item.ID + 1
		}
	}
	for _, cust := range l.customers {
		if cust.ID >= l.nextID {
			l.nextID = cust.ID + 1
		}
	}
	for _, sale := range l.sales {
		if sale.ID >= l.nextID {
			l.nextID = sale.ID + 1
		}
	}

	return l, nil
}

func loadJSON(kv *store.KV, key string, out interface{}) error {
	raw, ok, err := kv.Load(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("corrupt %q entry: %w", key, err)
	}
	return nil
}

// allocID hands out process-unique monotonic ids. Caller holds the lock.
func (l *Ledger) allocID() int64 {
	id := l.nextID
	l.nextID++
	return id
}

// AddItem appends a new inventory item. An empty image falls back to the
// placeholder; an image over 500 KiB is rejected before any mutation.
func (l *Ledger) AddItem(name, category string, price float64, stock int, image string) (models.InventoryItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return models.InventoryItem{}, fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}
	if price < 0 {
		return models.InventoryItem{}, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if stock < 0 {
		return models.InventoryItem{}, fmt.Errorf("%w: stock must not be negative", ErrInvalidInput)
	}
	if len(image) > models.MaxImageBytes {
		return models.InventoryItem{}, ErrImageTooLarge
	}
	if image == "" {
		image = models.PlaceholderImage
	}

	item := models.InventoryItem{
		ID:       l.allocID(),
		Image:    image,
		Name:     name,
		Category: category,
		Price:    price,
		Stock:    stock,
	}

	updated := append(cloneItems(l.inventory), item)
	if err := l.persist(map[string]interface{}{store.KeyInventory: updated}); err != nil {
		return models.InventoryItem{}, err
	}
	l.inventory = updated
	return item, nil
}

// DeleteItem removes the item with the given id, preserving the order of
// the rest. Historical sales referencing the item are left untouched.
func (l *Ledger) DeleteItem(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	updated := make([]models.InventoryItem, 0, len(l.inventory))
	found := false
	for _, item := range l.inventory {
		if item.ID == id && !found {
			found = true
			continue
		}
		updated = append(updated, item)
	}
	if !found {
		return ErrNotFound
	}

	if err := l.persist(map[string]interface{}{store.KeyInventory: updated}); err != nil {
		return err
	}
	l.inventory = updated
	return nil
}

// AddCustomer appends a new customer. Email defaults to "N/A".
func (l *Ledger) AddCustomer(name, phone, email, city string) (models.Customer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return models.Customer{}, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if email == "" {
		email = "N/A"
	}

	cust := models.Customer{
		ID:    l.allocID(),
		Name:  name,
		Phone: phone,
		Email: email,
		City:  city,
	}

	updated := append(cloneCustomers(l.customers), cust)
	if err := l.persist(map[string]interface{}{store.KeyCustomers: updated}); err != nil {
		return models.Customer{}, err
	}
	l.customers = updated
	return cust, nil
}

// DeleteCustomer removes the customer with the given id.
func (l *Ledger) DeleteCustomer(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	updated := make([]models.Customer, 0, len(l.customers))
	found := false
	for _, cust := range l.customers {
		if cust.ID == id && !found {
			found = true
			continue
		}
		updated = append(updated, cust)
	}
	if !found {
		return ErrNotFound
	}

	if err := l.persist(map[string]interface{}{store.KeyCustomers: updated}); err != nil {
		return err
	}
	l.customers = updated
	return nil
}

// RecordSale checks the product still exists and has enough stock, then
// decrements stock and appends an immutable snapshot of the transaction.
// Both effects commit together; any failed precondition or a failed save
// leaves every collection unchanged.
func (l *Ledger) RecordSale(customerName string, productID int64, quantity int, payment string) (models.SaleRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if quantity < 1 {
		return models.SaleRecord{}, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}
	if !models.ValidPaymentMethod(payment) {
		return models.SaleRecord{}, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, payment)
	}

	idx := -1
	for i, item := range l.inventory {
		if item.ID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.SaleRecord{}, ErrProductNotFound
	}

	product := l.inventory[idx]
	if quantity > product.Stock {
		return models.SaleRecord{}, ErrInsufficientStock
	}

	sale := models.SaleRecord{
		ID:            l.allocID(),
		Date:          utils.FormatDate(time.Now()),
		CustomerName:  customerName,
		ProductName:   product.Name,
		PaymentMethod: payment,
		Quantity:      quantity,
		Total:         float64(quantity) * product.Price,
	}

	updatedInv := cloneItems(l.inventory)
	updatedInv[idx].Stock -= quantity
	updatedSales := append(cloneSales(l.sales), sale)

	err := l.persist(map[string]interface{}{
		store.KeyInventory: updatedInv,
		store.KeySales:     updatedSales,
	})
	if err != nil {
		return models.SaleRecord{}, err
	}

	l.inventory = updatedInv
	l.sales = updatedSales
	return sale, nil
}

// SetStoreName updates the store name. Blank names are rejected.
func (l *Ledger) SetStoreName(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: store name is required", ErrInvalidInput)
	}

	if err := l.kv.Save(store.KeyStoreName, []byte(name)); err != nil {
		return err
	}
	l.storeName = name
	return nil
}

// StoreName returns the current store name.
func (l *Ledger) StoreName() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.storeName
}

// Items returns the inventory in display order, oldest first.
func (l *Ledger) Items() []models.InventoryItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneItems(l.inventory)
}

// Customers returns all customers in insertion order.
func (l *Ledger) Customers() []models.Customer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneCustomers(l.customers)
}

// Sales returns the sales history, oldest first.
func (l *Ledger) Sales() []models.SaleRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneSales(l.sales)
}

// Dashboard recomputes the summary counters from current state.
func (l *Ledger) Dashboard() DashboardSummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	var stockValue float64
	for _, item := range l.inventory {
		stockValue += item.Price * float64(item.Stock)
	}
	return DashboardSummary{
		TotalProducts:  len(l.inventory),
		TotalCustomers: len(l.customers),
		StockValue:     stockValue,
	}
}

// SaleOptions derives the sale form's selection lists from current state.
func (l *Ledger) SaleOptions() SaleOptions {
	l.mu.Lock()
	defer l.mu.Unlock()

	opts := SaleOptions{
		Products:  []ProductOption{},
		Customers: []CustomerOption{},
	}
	for _, item := range l.inventory {
		if item.Stock > 0 {
			opts.Products = append(opts.Products, ProductOption{
				ID:    item.ID,
				Label: fmt.Sprintf("%s (Stock: %d) - %s", item.Name, item.Stock, utils.FormatMoney(item.Price)),
			})
		}
	}
	for _, cust := range l.customers {
		opts.Customers = append(opts.Customers, CustomerOption{
			Name:  cust.Name,
			Label: fmt.Sprintf("%s (%s)", cust.Name, cust.Phone),
		})
	}
	return opts
}

// LowStockItems returns items below the low-stock threshold.
func (l *Ledger) LowStockItems() []models.InventoryItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	var low []models.InventoryItem
	for _, item := range l.inventory {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low
}

// persist JSON-encodes the given collections and writes them in one store
// transaction, always including the store name so every mutation leaves all
// four entries current. Callers assign the new slices to the ledger fields
// only after this returns nil.
func (l *Ledger) persist(collections map[string]interface{}) error {
	entries := make(map[string][]byte, len(collections)+1)
	for key, value := range collections {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode %q: %w", key, err)
		}
		entries[key] = raw
	}
	entries[store.KeyStoreName] = []byte(l.storeName)
	return l.kv.SaveAll(entries)
}

func cloneItems(items []models.InventoryItem) []models.InventoryItem {
	out := make([]models.InventoryItem, len(items))
	copy(out, items)
	return out
}

func cloneCustomers(customers []models.Customer) []models.Customer {
	out := make([]models.Customer, len(customers))
	copy(out, customers)
	return out
}

func cloneSales(sales []models.SaleRecord) []models.SaleRecord {
	out := make([]models.SaleRecord, len(sales))
	copy(out, sales)
	return out
}
