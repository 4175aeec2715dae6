package cart

import (
	"strings"

	"CluckAI/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

// LineItem is one ordered entry: a canonical catalog name, a quantity and
// optional ingredient modifications. Repeated orders of the same item stay
// separate lines; there is no dedup.
type LineItem struct {
	Name     string   `json:"food_item"`
	Quantity int      `json:"quantity"`
	Added    []string `json:"added,omitempty"`
	Removed  []string `json:"removed,omitempty"`
}

// NewLineItem enforces the quantity >= 1 invariant at creation.
func NewLineItem(name string, quantity int) (LineItem, error) {
	if strings.TrimSpace(name) == "" {
		return LineItem{}, errors.New(int(errno.InvalidParam), "line item name is empty")
	}
	if quantity < 1 {
		return LineItem{}, errors.New(int(errno.InvalidParam), "line item quantity must be at least 1")
	}
	return LineItem{Name: name, Quantity: quantity}, nil
}

// Pricer is the read-only slice of the menu catalog the cart needs.
type Pricer interface {
	Price(name string) (int64, bool)
}

// SummaryRow is one display row of the current order.
type SummaryRow struct {
	Quantity  int
	Name      string
	UnitCents int64
	LineCents int64
}

// Cart is the ordered sequence of line items for one session. Insertion
// order is display order. Callers serialize access per session.
type Cart struct {
	Items []LineItem `json:"items"`
}

func (c *Cart) Append(item LineItem) {
	c.Items = append(c.Items, item)
}

// RemoveMatching removes every line whose name matches the search term and
// returns the removed names. A line matches when its name contains the term
// or the term contains the line's base name (the part before any size or
// count qualifier), both case-insensitive.
func (c *Cart) RemoveMatching(term string) []string {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}

	var removed []string
	kept := c.Items[:0]
	for _, item := range c.Items {
		if lineMatches(item.Name, needle) {
			removed = append(removed, item.Name)
			continue
		}
		kept = append(kept, item)
	}
	c.Items = kept
	return removed
}

func lineMatches(name, needle string) bool {
	full := strings.ToLower(name)
	if strings.Contains(full, needle) {
		return true
	}
	base := full
	if i := strings.Index(base, " ("); i > 0 {
		base = base[:i]
	}
	return strings.Contains(needle, base)
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}

// TotalCents recomputes the total from current catalog prices on every call;
// nothing is cached. Items missing from the catalog contribute zero.
func (c *Cart) TotalCents(pricer Pricer) int64 {
	var total int64
	for _, item := range c.Items {
		if unit, ok := pricer.Price(item.Name); ok {
			total += unit * int64(item.Quantity)
		}
	}
	return total
}

// Summary returns display rows in insertion order.
func (c *Cart) Summary(pricer Pricer) []SummaryRow {
	rows := make([]SummaryRow, 0, len(c.Items))
	for _, item := range c.Items {
		unit, _ := pricer.Price(item.Name)
		rows = append(rows, SummaryRow{
			Quantity:  item.Quantity,
			Name:      item.Name,
			UnitCents: unit,
			LineCents: unit * int64(item.Quantity),
		})
	}
	return rows
}
