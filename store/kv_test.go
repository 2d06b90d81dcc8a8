package store

import (
	"storepos-backend/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestKV creates a store over an in-memory SQLite database.
func setupTestKV(t *testing.T, quota int64) *KV {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.AutoMigrate(&models.StoreEntry{}))

	return NewKV(db, quota)
}

func TestKV_LoadAbsent(t *testing.T) {
	kv := setupTestKV(t, 0)

	value, ok, err := kv.Load(KeyInventory)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestKV_SaveAndLoad(t *testing.T) {
	kv := setupTestKV(t, 0)

	require.NoError(t, kv.Save(KeyStoreName, []byte("Krushna's Store")))

	value, ok, err := kv.Load(KeyStoreName)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Krushna's Store", string(value))
}

func TestKV_SaveOverwritesInFull(t *testing.T) {
	kv := setupTestKV(t, 0)

	require.NoError(t, kv.Save(KeyInventory, []byte(`[{"id":1}]`)))
	require.NoError(t, kv.Save(KeyInventory, []byte(`[]`)))

	value, ok, err := kv.Load(KeyInventory)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(value))
}

func TestKV_QuotaExceeded(t *testing.T) {
	kv := setupTestKV(t, 10)

	require.NoError(t, kv.Save("a", []byte("12345")))

	err := kv.Save("b", []byte("123456"))
	require.ErrorIs(t, err, ErrQuotaExceeded)

	// The failed save left stored state untouched
	_, ok, err := kv.Load("b")
	require.NoError(t, err)
	assert.False(t, ok)

	value, ok, err := kv.Load("a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "12345", string(value))
}

func TestKV_QuotaCountsReplacedValueOnce(t *testing.T) {
	kv := setupTestKV(t, 10)

	require.NoError(t, kv.Save("a", []byte("1234567890")))
	// Rewriting the same key stays within quota because the old value is replaced
	require.NoError(t, kv.Save("a", []byte("0987654321")))

	err := kv.Save("a", []byte("12345678901"))
	require.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestKV_SaveAllCommitsTogether(t *testing.T) {
	kv := setupTestKV(t, 20)

	err := kv.SaveAll(map[string][]byte{
		"a": []byte("1234567890"),
		"b": []byte("1234567890123"),
	})
	require.ErrorIs(t, err, ErrQuotaExceeded)

	// Neither entry was written
	_, ok, err := kv.Load("a")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = kv.Load("b")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.SaveAll(map[string][]byte{
		"a": []byte("1234567890"),
		"b": []byte("1234567890"),
	}))
	value, ok, err := kv.Load("b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1234567890", string(value))
}
