package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-manager-api/internal/config"
)

func TestStore_Defaults(t *testing.T) {
	store := NewStore(config.Session{
		DefaultAdAccountID: "3833310993548191",
		DefaultPageID:      "619312814603108",
	})

	assert.Equal(t, "3833310993548191", store.AdAccountID())
	assert.Equal(t, "619312814603108", store.PageID())
	assert.Empty(t, store.Token())
	assert.False(t, store.Authenticated())
}

func TestStore_SaveToken(t *testing.T) {
	store := NewStore(config.Session{})

	store.SaveToken("EAAG...abc")
	assert.Equal(t, "EAAG...abc", store.Token())
	assert.True(t, store.Authenticated())

	// última escrita vence, inclusive vazia
	store.SaveToken("")
	assert.Empty(t, store.Token())
	assert.False(t, store.Authenticated())
}

func TestStore_Selection(t *testing.T) {
	store := NewStore(config.Session{
		DefaultAdAccountID: "default-account",
		DefaultPageID:      "default-page",
	})

	store.SetAdAccountID("act_123")
	store.SetPageID("456")

	assert.Equal(t, "act_123", store.AdAccountID())
	assert.Equal(t, "456", store.PageID())
}
