package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	r := NewResolver(NewCatalog())

	tests := []struct {
		name    string
		ref     string
		size    string
		count   string
		qty     int
		outcome Outcome
		want    string
		base    string
	}{
		{
			name:    "exact canonical name",
			ref:     "Chicken Sandwich",
			outcome: Found,
			want:    "Chicken Sandwich",
		},
		{
			name:    "alias with size",
			ref:     "fries",
			size:    "large",
			outcome: Found,
			want:    "Waffle Potato Fries (Large)",
		},
		{
			name:    "alias without required size",
			ref:     "coke",
			outcome: SizeNeeded,
			base:    "Soft Drink",
		},
		{
			name:    "size family spoken form",
			ref:     "sweet tea",
			size:    "medium",
			outcome: Found,
			want:    "Freshly-Brewed Iced Tea Sweetened (Medium)",
		},
		{
			name:    "count family without count",
			ref:     "nuggets",
			outcome: CountNeeded,
			base:    "Nuggets",
		},
		{
			name:    "count family with count",
			ref:     "nuggets",
			count:   "8",
			outcome: Found,
			want:    "Nuggets (8-count)",
		},
		{
			name:    "count family with impossible count",
			ref:     "nuggets",
			count:   "9",
			outcome: NotFound,
		},
		{
			name:    "count base that exists standalone",
			ref:     "cookie",
			outcome: Found,
			want:    "Chocolate Chunk Cookie",
		},
		{
			name:    "substring fallback",
			ref:     "deluxe",
			outcome: Found,
			want:    "Deluxe Chicken Sandwich",
		},
		{
			name:    "unknown item",
			ref:     "pizza",
			outcome: NotFound,
		},
		{
			name:    "quantity below one defaults to one",
			ref:     "Chicken Sandwich",
			qty:     -3,
			outcome: Found,
			want:    "Chicken Sandwich",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Resolve(tt.ref, tt.size, tt.count, tt.qty)
			assert.Equal(t, tt.outcome, res.Outcome)
			if tt.want != "" {
				assert.Equal(t, tt.want, res.Name)
			}
			if tt.base != "" {
				assert.Equal(t, tt.base, res.Base)
			}
			assert.GreaterOrEqual(t, res.Quantity, 1)
		})
	}
}

func TestResolveSegment(t *testing.T) {
	r := NewResolver(NewCatalog())

	t.Run("quantity and size words", func(t *testing.T) {
		res := r.ResolveSegment("two large fries")
		require.Equal(t, Found, res.Outcome)
		assert.Equal(t, "Waffle Potato Fries (Large)", res.Name)
		assert.Equal(t, 2, res.Quantity)
	})

	t.Run("number word quantity", func(t *testing.T) {
		res := r.ResolveSegment("three chicken sandwiches")
		// plural misses the exact key but the substring pass catches it
		require.Equal(t, Found, res.Outcome)
		assert.Equal(t, 3, res.Quantity)
	})

	t.Run("leading number reads as count when the family carries it", func(t *testing.T) {
		res := r.ResolveSegment("8 nuggets")
		require.Equal(t, Found, res.Outcome)
		assert.Equal(t, "Nuggets (8-count)", res.Name)
		assert.Equal(t, 1, res.Quantity)
	})

	t.Run("leading number stays a quantity otherwise", func(t *testing.T) {
		res := r.ResolveSegment("2 cookies")
		require.Equal(t, Found, res.Outcome)
		assert.Equal(t, "Chocolate Chunk Cookie", res.Name)
		assert.Equal(t, 2, res.Quantity)
	})
}

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "commas and and",
			in:   "a sandwich, large fries and a coke",
			want: []string{"a sandwich", "large fries", "a coke"},
		},
		{
			name: "mac and cheese survives splitting",
			in:   "mac and cheese and a lemonade",
			want: []string{"mac & cheese", "a lemonade"},
		},
		{
			name: "single segment",
			in:   "cobb salad",
			want: []string{"cobb salad"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSegments(tt.in))
		})
	}
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 4, ParseQuantity("4"))
	assert.Equal(t, 7, ParseQuantity("seven"))
	assert.Equal(t, 0, ParseQuantity("a bunch"))
	assert.Equal(t, 0, ParseQuantity(""))
}
