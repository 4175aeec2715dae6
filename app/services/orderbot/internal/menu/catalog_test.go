package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookup(t *testing.T) {
	cat := NewCatalog()

	item, ok := cat.Lookup("Waffle Potato Fries (Large)")
	require.True(t, ok)
	assert.Equal(t, int64(245), item.PriceCents)

	_, ok = cat.Lookup("waffle potato fries (large)")
	assert.True(t, ok, "lookup is case-insensitive")

	_, ok = cat.Lookup("Free Lunch")
	assert.False(t, ok)
}

func TestCatalogFamilies(t *testing.T) {
	cat := NewCatalog()

	base, ok := cat.SizeBase("sweet tea")
	require.True(t, ok)
	assert.Equal(t, "Freshly-Brewed Iced Tea Sweetened", base)

	assert.True(t, cat.SizeRequired("Waffle Potato Fries"))
	assert.True(t, cat.SizeRequired("soft drink"))
	assert.False(t, cat.SizeRequired("chicken sandwich"))

	assert.Equal(t, []string{"Small", "Medium", "Large"}, cat.SizesFor("soft drink"))
	assert.Equal(t, []string{"Small", "Large"}, cat.SizesFor("milkshake"))

	name, ok := cat.CountVariant("grilled nuggets", 12)
	require.True(t, ok)
	assert.Equal(t, "Grilled Nuggets (12-count)", name)

	_, ok = cat.CountVariant("grilled nuggets", 6)
	assert.False(t, ok)

	assert.Equal(t, []int{8, 12}, cat.CountsFor("nuggets"))
	assert.Equal(t, []int{3, 4}, cat.CountsFor("strips"))
}

func TestCatalogSizeVariantSpelling(t *testing.T) {
	cat := NewCatalog()
	assert.Equal(t, "Soft Drink (Medium)", cat.SizeVariant("soft drink", "medium"))
	assert.Equal(t, "Soft Drink (Large)", cat.SizeVariant("soft drink", "LARGE"))
}

func TestCatalogVariantsAllPriced(t *testing.T) {
	cat := NewCatalog()
	for _, item := range cat.Items() {
		if item.PriceCents == 0 {
			// sauces and dressings ride along free
			continue
		}
		price, ok := cat.Price(item.Name)
		require.True(t, ok)
		assert.Positive(t, price)
	}
}
