package ledger

import (
	"context"
	"testing"

	"trade-entry-go/internal/entry"
	"trade-entry-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	// A named in-memory database keeps the schema visible across pooled
	// connections while staying isolated per test.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.TradeRecord{}))

	return NewStore(db, zap.NewNop())
}

func TestStoreSubmitAndRecent(t *testing.T) {
	store := setupTestStore(t)
	expiry := "2024-03-28"

	payload := entry.Payload{
		Username:  "alice",
		Date:      "2024-03-10",
		Item:      "GOLD",
		Expiry:    &expiry,
		LotSize:   10,
		NumberLot: 3,
		BuyQty:    30,
		SellQty:   0,
		SellPrice: 0,
		BuyPrice:  100,
	}

	require.NoError(t, store.Submit(context.Background(), payload))

	records, err := store.Recent(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "2024-03-10", got.TradeDate)
	assert.Equal(t, "GOLD", got.Item)
	require.NotNil(t, got.Expiry)
	assert.Equal(t, "2024-03-28", *got.Expiry)
	assert.Equal(t, 30.0, got.BuyQty)
	assert.Equal(t, 0.0, got.SellQty)
}

func TestStoreSubmitNilExpiry(t *testing.T) {
	store := setupTestStore(t)

	payload := entry.Payload{
		Username: "bob",
		Date:     "2024-05-01",
		Item:     "SILVER",
		BuyQty:   5,
		BuyPrice: 70,
	}

	require.NoError(t, store.Submit(context.Background(), payload))

	records, err := store.Recent(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Expiry)
}
