package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListScopesByHouse(t *testing.T) {
	store := NewStore()
	for _, item := range sampleItems() {
		store.Append(item)
	}

	all := store.List("")
	require.Len(t, all, 4)

	scoped := store.List("House 2")
	require.Len(t, scoped, 2)
	for _, item := range scoped {
		require.Equal(t, "House 2", item.House)
	}

	// Scoped listing is a subset of the full listing, in insertion order.
	require.Equal(t, []string{"3", "4"}, []string{scoped[0].ID, scoped[1].ID})

	require.Empty(t, store.List("House 9"))
}

func TestListReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Append(Item{ID: "1", Name: "Sofa", House: "House 1"})

	listed := store.List("")
	listed[0].Name = "mutated"

	require.Equal(t, "Sofa", store.List("")[0].Name)
}
