package models

// StoreEntry is one keyed row of the persistent store. The whole
// application state lives in four entries: "inventory", "sales",
// "customers" (JSON arrays) and "storeName" (plain bytes). Every
// mutation rewrites the affected entry in full.
type StoreEntry struct {
	Key   string `gorm:"primaryKey"`
	Value []byte `gorm:"not null"`
}
