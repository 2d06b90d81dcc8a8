package store

import (
	"errors"
	"fmt"
	"storepos-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry keys. The layout mirrors the four independently keyed slots the
// application has always persisted; there is no schema version field.
const (
	KeyInventory = "inventory"
	KeySales     = "sales"
	KeyCustomers = "customers"
	KeyStoreName = "storeName"
)

// DefaultQuotaBytes caps total stored size when no quota is configured.
const DefaultQuotaBytes = 5 * 1024 * 1024

// ErrQuotaExceeded is returned when a save would push total stored size
// past the quota. Stored state is left untouched.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// KV is the persistent store: a keyed blob table over a local SQLite file.
type KV struct {
	db    *gorm.DB
	quota int64
}

// NewKV creates a key-value store with the given total-size quota.
// A quota of zero or less falls back to DefaultQuotaBytes.
func NewKV(db *gorm.DB, quota int64) *KV {
	if quota <= 0 {
		quota = DefaultQuotaBytes
	}
	return &KV{db: db, quota: quota}
}

// Load reads the value for key. A missing key is reported as absent,
// not as an error.
func (s *KV) Load(key string) ([]byte, bool, error) {
	var entry models.StoreEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load %q: %w", key, err)
	}
	return entry.Value, true, nil
}

// Save writes a single entry in full, subject to the quota.
func (s *KV) Save(key string, value []byte) error {
	return s.SaveAll(map[string][]byte{key: value})
}

// SaveAll writes every given entry inside one transaction, so multi-entry
// mutations (a sale touches both inventory and sales) commit together or
// not at all. The quota check covers the state as it would be after the
// write; on ErrQuotaExceeded nothing is persisted.
func (s *KV) SaveAll(entries map[string][]byte) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var total int64
		if err := tx.Model(&models.StoreEntry{}).
			Select("COALESCE(SUM(LENGTH(value)), 0)").Scan(&total).Error; err != nil {
			return fmt.Errorf("failed to measure store size: %w", err)
		}

		for key, value := range entries {
			var existing models.StoreEntry
			err := tx.First(&existing, "key = ?", key).Error
			switch {
			case err == nil:
				total += int64(len(value)) - int64(len(existing.Value))
			case errors.Is(err, gorm.ErrRecordNotFound):
				total += int64(len(value))
			default:
				return fmt.Errorf("failed to read %q: %w", key, err)
			}
		}
		if total > s.quota {
			return ErrQuotaExceeded
		}

		for key, value := range entries {
			entry := models.StoreEntry{Key: key, Value: value}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
				Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to save %q: %w", key, err)
			}
		}
		return nil
	})
}
