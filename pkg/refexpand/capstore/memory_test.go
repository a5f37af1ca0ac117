package capstore_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/refexpand/pkg/refexpand/capstore"
)

// TestMemoryStore_Isolation tests that stored bindings are independent of
// the caller's maps.
func TestMemoryStore_Isolation(t *testing.T) {
	store := capstore.NewMemoryStore()
	defer store.Close()

	b := capstore.Bindings{Named: map[string]string{"name": "original"}}
	require.NoError(t, store.Save("set-1", b))

	// Mutating the saved-from map must not affect the store.
	b.Named["name"] = "mutated"

	loaded, err := store.Load("set-1")
	require.NoError(t, err)
	text, _ := loaded.Name("name")
	assert.Equal(t, "original", text)

	// Mutating a loaded copy must not affect later loads.
	loaded.Named["name"] = "mutated again"
	reloaded, err := store.Load("set-1")
	require.NoError(t, err)
	text, _ = reloaded.Name("name")
	assert.Equal(t, "original", text)
}

// TestMemoryStore_Len tests the test helper counter.
func TestMemoryStore_Len(t *testing.T) {
	store := capstore.NewMemoryStore()
	defer store.Close()

	assert.Equal(t, 0, store.Len())
	require.NoError(t, store.Save("a", capstore.Bindings{}))
	require.NoError(t, store.Save("b", capstore.Bindings{}))
	assert.Equal(t, 2, store.Len())

	require.NoError(t, store.Delete("a"))
	assert.Equal(t, 1, store.Len())
}

// TestMemoryStore_Concurrent tests concurrent save/load safety.
func TestMemoryStore_Concurrent(t *testing.T) {
	store := capstore.NewMemoryStore()
	defer store.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			setID := fmt.Sprintf("set-%d", n)
			_ = store.Save(setID, capstore.Bindings{
				Indexed: map[int]string{0: setID},
			})
		}(i)
		go func(n int) {
			defer wg.Done()
			_, _ = store.Load(fmt.Sprintf("set-%d", n))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, store.Len())
}
