package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleItems() []Item {
	return []Item{
		{ID: "1", Name: "Sofa", Category: "Furniture", House: "House 1"},
		{ID: "2", Name: "TV", Category: "Electronics", House: "House 1"},
		{ID: "3", Name: "Desk lamp", Category: "Lighting", House: "House 2"},
		{ID: "4", Name: "Floor lamp", Category: "Lighting", House: "House 2"},
	}
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	items := sampleItems()

	got := Search(items, "so")
	require.Len(t, got, 1)
	require.Equal(t, "Sofa", got[0].Name)

	got = Search(items, "LAMP")
	require.Len(t, got, 2)
	require.Equal(t, "Desk lamp", got[0].Name)
	require.Equal(t, "Floor lamp", got[1].Name)

	require.Empty(t, Search(items, "piano"))
}

func TestSearchEmptyQueryReturnsInputUnchanged(t *testing.T) {
	items := sampleItems()
	got := Search(items, "")
	require.Equal(t, items, got)
	require.Len(t, got, len(items))
}

func TestFilterCategory(t *testing.T) {
	items := sampleItems()

	got := FilterCategory(items, "Lighting")
	require.Len(t, got, 2)

	// Exact, case-sensitive match.
	require.Empty(t, FilterCategory(items, "lighting"))

	require.Equal(t, items, FilterCategory(items, ""))
}

func TestCategoriesFirstOccurrenceOrder(t *testing.T) {
	items := sampleItems()
	require.Equal(t, []string{"Furniture", "Electronics", "Lighting"}, Categories(items))
	require.Empty(t, Categories(nil))
}
