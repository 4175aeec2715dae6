package menu

import (
	"fmt"
	"strings"
)

// Item is one priced catalog entry. The canonical name is the identity used
// for pricing and cart storage, e.g. "Soft Drink (Medium)".
type Item struct {
	Name        string   `json:"name"`
	PriceCents  int64    `json:"price_cents"`
	Ingredients []string `json:"ingredients"`
	Modifiable  []string `json:"modifiable_ingredients,omitempty"`
}

// Catalog is the immutable menu shared by all sessions. Built once at
// startup, read-only afterwards.
type Catalog struct {
	items   map[string]Item // normalized name -> item
	names   []string        // canonical names in menu-board order
	aliases map[string]string
	sizes   map[string]string
	counts  map[string]string
}

func NewCatalog() *Catalog {
	c := &Catalog{
		items:   make(map[string]Item, len(allItems)),
		names:   make([]string, 0, len(allItems)),
		aliases: aliasTable,
		sizes:   sizeFamilies,
		counts:  countFamilies,
	}
	for _, item := range allItems {
		c.items[normalize(item.Name)] = item
		c.names = append(c.names, item.Name)
	}
	return c
}

// Items returns the catalog in menu-board order.
func (c *Catalog) Items() []Item {
	out := make([]Item, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.items[normalize(name)])
	}
	return out
}

// Lookup returns the item for a name, matching case-insensitively.
func (c *Catalog) Lookup(name string) (Item, bool) {
	item, ok := c.items[normalize(name)]
	return item, ok
}

// Price returns the unit price in cents. A miss is a recoverable condition
// reported through the boolean, never an error.
func (c *Catalog) Price(name string) (int64, bool) {
	item, ok := c.Lookup(name)
	if !ok {
		return 0, false
	}
	return item.PriceCents, true
}

// Ingredients returns the ingredient list and the modifiable subset.
func (c *Catalog) Ingredients(name string) (ingredients, modifiable []string, ok bool) {
	item, found := c.Lookup(name)
	if !found {
		return nil, nil, false
	}
	return item.Ingredients, item.Modifiable, true
}

// SizeRequired reports whether the base name must be qualified with a size
// before it maps to a catalog key.
func (c *Catalog) SizeRequired(base string) bool {
	_, ok := c.sizes[normalize(base)]
	return ok
}

// SizeBase returns the canonical sized base for a spoken form, e.g.
// "sweet tea" -> "Freshly-Brewed Iced Tea Sweetened".
func (c *Catalog) SizeBase(base string) (string, bool) {
	canonical, ok := c.sizes[normalize(base)]
	return canonical, ok
}

// SizeVariant assembles the canonical sized name for a base, e.g.
// ("sweet tea", "large") -> "Freshly-Brewed Iced Tea Sweetened (Large)".
// The result is not guaranteed to exist; callers resolve it against the
// catalog.
func (c *Catalog) SizeVariant(base, size string) string {
	canonical, ok := c.sizes[normalize(base)]
	if !ok {
		canonical = strings.TrimSpace(base)
	}
	return fmt.Sprintf("%s (%s)", canonical, CanonicalSize(size))
}

// CountBase returns the canonical counted base for a spoken form, e.g.
// "chicken nuggets" -> "Nuggets".
func (c *Catalog) CountBase(base string) (string, bool) {
	canonical, ok := c.counts[normalize(base)]
	return canonical, ok
}

// CountVariant assembles "<base> (<n>-count)" and reports whether it exists.
func (c *Catalog) CountVariant(base string, count int) (string, bool) {
	canonical, ok := c.counts[normalize(base)]
	if !ok {
		canonical = strings.TrimSpace(base)
	}
	name := fmt.Sprintf("%s (%d-count)", canonical, count)
	if _, exists := c.Lookup(name); !exists {
		return name, false
	}
	return name, true
}

// CountsFor lists the counts the catalog carries for a counted base, in
// menu-board order.
func (c *Catalog) CountsFor(base string) []int {
	canonical, ok := c.counts[normalize(base)]
	if !ok {
		canonical = strings.TrimSpace(base)
	}
	var counts []int
	prefix := normalize(canonical) + " ("
	for _, name := range c.names {
		n := normalize(name)
		if !strings.HasPrefix(n, prefix) || !strings.HasSuffix(n, "-count)") {
			continue
		}
		var count int
		if _, err := fmt.Sscanf(n[len(prefix):], "%d-count)", &count); err == nil {
			counts = append(counts, count)
		}
	}
	return counts
}

// SizesFor lists the sizes the catalog carries for a size-required base.
func (c *Catalog) SizesFor(base string) []string {
	canonical, ok := c.sizes[normalize(base)]
	if !ok {
		return nil
	}
	var sizes []string
	for _, size := range []string{"Small", "Medium", "Large"} {
		if _, exists := c.Lookup(fmt.Sprintf("%s (%s)", canonical, size)); exists {
			sizes = append(sizes, size)
		}
	}
	return sizes
}

// Alias maps an informal phrase to its canonical target, if one is declared.
func (c *Catalog) Alias(phrase string) (string, bool) {
	target, ok := c.aliases[normalize(phrase)]
	return target, ok
}

// Substring returns the first catalog key, in menu-board order, that
// contains the phrase case-insensitively.
func (c *Catalog) Substring(phrase string) (string, bool) {
	needle := normalize(phrase)
	if needle == "" {
		return "", false
	}
	for _, name := range c.names {
		if strings.Contains(normalize(name), needle) {
			return name, true
		}
	}
	return "", false
}

// CanonicalSize capitalizes a size word to the catalog's Small/Medium/Large
// spelling. Unknown sizes are title-cased as given.
func CanonicalSize(size string) string {
	switch normalize(size) {
	case "small", "sm":
		return "Small"
	case "medium", "med":
		return "Medium"
	case "large", "lg":
		return "Large"
	}
	size = strings.TrimSpace(size)
	if size == "" {
		return size
	}
	return strings.ToUpper(size[:1]) + strings.ToLower(size[1:])
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
