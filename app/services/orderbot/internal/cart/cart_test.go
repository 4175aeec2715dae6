package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePricer map[string]int64

func (p fakePricer) Price(name string) (int64, bool) {
	cents, ok := p[name]
	return cents, ok
}

var prices = fakePricer{
	"Chicken Sandwich":            429,
	"Waffle Potato Fries (Large)": 245,
	"Nuggets (8-count)":           479,
}

func TestNewLineItem(t *testing.T) {
	li, err := NewLineItem("Chicken Sandwich", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, li.Quantity)

	_, err = NewLineItem("Chicken Sandwich", 0)
	assert.Error(t, err)

	_, err = NewLineItem("  ", 1)
	assert.Error(t, err)
}

func TestCartAppendKeepsDuplicates(t *testing.T) {
	var c Cart
	li, _ := NewLineItem("Chicken Sandwich", 1)
	c.Append(li)
	c.Append(li)

	require.Len(t, c.Items, 2)
	assert.Equal(t, int64(858), c.TotalCents(prices))
}

func TestCartRemoveMatching(t *testing.T) {
	var c Cart
	for _, name := range []string{"Chicken Sandwich", "Waffle Potato Fries (Large)", "Nuggets (8-count)"} {
		li, _ := NewLineItem(name, 1)
		c.Append(li)
	}

	t.Run("term matches line name", func(t *testing.T) {
		removed := c.RemoveMatching("fries")
		assert.Equal(t, []string{"Waffle Potato Fries (Large)"}, removed)
	})

	t.Run("line base matches longer term", func(t *testing.T) {
		removed := c.RemoveMatching("the 8 piece nuggets please")
		assert.Equal(t, []string{"Nuggets (8-count)"}, removed)
	})

	t.Run("no match leaves cart alone", func(t *testing.T) {
		assert.Empty(t, c.RemoveMatching("milkshake"))
		assert.Len(t, c.Items, 1)
	})
}

func TestCartTotalSkipsUnknownItems(t *testing.T) {
	var c Cart
	li, _ := NewLineItem("Discontinued Special", 3)
	c.Append(li)
	sandwich, _ := NewLineItem("Chicken Sandwich", 1)
	c.Append(sandwich)

	assert.Equal(t, int64(429), c.TotalCents(prices))

	rows := c.Summary(prices)
	require.Len(t, rows, 2)
	assert.Zero(t, rows[0].UnitCents)
	assert.Equal(t, int64(429), rows[1].LineCents)
}

func TestCartClear(t *testing.T) {
	var c Cart
	li, _ := NewLineItem("Chicken Sandwich", 1)
	c.Append(li)
	c.Clear()
	assert.True(t, c.Empty())
	assert.Zero(t, c.TotalCents(prices))
}
