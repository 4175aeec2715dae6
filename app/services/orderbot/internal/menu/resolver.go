package menu

import (
	"strconv"
	"strings"
)

// Outcome tags a Resolution. Misses and missing qualifiers are recoverable
// conversational conditions, so they travel as values rather than errors.
type Outcome int

const (
	Found Outcome = iota
	SizeNeeded
	CountNeeded
	NotFound
)

// Resolution is the result of mapping a fuzzy food reference to the catalog.
type Resolution struct {
	Outcome   Outcome
	Name      string // canonical catalog key when Found
	Base      string // canonical family base when a qualifier is still needed
	Quantity  int
	Attempted string // the name we tried, echoed back in apologies
}

// Resolver turns heterogeneous references (NLU entity values, raw utterance
// fragments, size/count qualifiers) into canonical catalog keys. The matching
// strategy is best-effort by design; it sits behind this type so it can be
// swapped or tested independently of the dialogue logic.
type Resolver struct {
	cat *Catalog
}

func NewResolver(cat *Catalog) *Resolver {
	return &Resolver{cat: cat}
}

// Resolve maps a reference plus optional size and count qualifiers to one
// canonical catalog key and a quantity. Quantities below one default to one.
func (r *Resolver) Resolve(ref, size, count string, qty int) Resolution {
	ref = strings.TrimSpace(ref)
	if qty < 1 {
		qty = 1
	}
	if ref == "" {
		return Resolution{Outcome: NotFound, Attempted: ref, Quantity: qty}
	}

	base := ref
	if _, direct := r.cat.Lookup(base); !direct {
		if target, ok := r.cat.Alias(base); ok {
			base = target
		}
	}

	if n := parseCount(count); n > 0 {
		if _, ok := r.cat.CountBase(base); ok {
			name, exists := r.cat.CountVariant(base, n)
			if !exists {
				return Resolution{Outcome: NotFound, Attempted: name, Quantity: qty}
			}
			return Resolution{Outcome: Found, Name: name, Quantity: qty}
		}
	}

	if r.cat.SizeRequired(base) {
		if size == "" {
			canonical, _ := r.cat.SizeBase(base)
			return Resolution{Outcome: SizeNeeded, Base: canonical, Quantity: qty}
		}
		name := r.cat.SizeVariant(base, size)
		item, exists := r.cat.Lookup(name)
		if !exists {
			return Resolution{Outcome: NotFound, Attempted: name, Quantity: qty}
		}
		return Resolution{Outcome: Found, Name: item.Name, Quantity: qty}
	}

	if canonical, ok := r.cat.CountBase(base); ok {
		if item, direct := r.cat.Lookup(canonical); direct {
			return Resolution{Outcome: Found, Name: item.Name, Quantity: qty}
		}
		return Resolution{Outcome: CountNeeded, Base: canonical, Quantity: qty}
	}

	if item, ok := r.cat.Lookup(base); ok {
		return Resolution{Outcome: Found, Name: item.Name, Quantity: qty}
	}
	if name, ok := r.cat.Substring(base); ok {
		return Resolution{Outcome: Found, Name: name, Quantity: qty}
	}

	// plural references retry in singular form ("sandwiches" -> "sandwich")
	for _, suffix := range []string{"es", "s"} {
		if sing := strings.TrimSuffix(base, suffix); sing != base {
			if res := r.Resolve(sing, size, count, qty); res.Outcome != NotFound {
				return res
			}
		}
	}
	return Resolution{Outcome: NotFound, Attempted: ref, Quantity: qty}
}

// ResolveSegment resolves one free-text segment such as "two large fries" or
// "8 nuggets", extracting quantity and size words before matching.
func (r *Resolver) ResolveSegment(segment string) Resolution {
	tokens := strings.Fields(segment)

	qty := 0
	size := ""
	var nameTokens []string
	for i, tok := range tokens {
		switch normalize(tok) {
		case "a", "an", "the", "some", "please", "order", "of":
			continue
		case "small", "medium", "large":
			if size == "" {
				size = tok
				continue
			}
		}
		if qty == 0 && len(nameTokens) == 0 {
			if n := ParseQuantity(tok); n > 0 {
				qty = n
				continue
			}
		}
		nameTokens = append(nameTokens, tokens[i])
	}

	ref := strings.TrimSpace(strings.Join(nameTokens, " "))
	res := r.Resolve(ref, size, "", qty)

	// "8 nuggets" reads as a count, not a quantity, when the number is one
	// of the counts the catalog carries for that family.
	if res.Outcome == CountNeeded && qty > 0 {
		for _, n := range r.cat.CountsFor(res.Base) {
			if n == qty {
				return r.Resolve(ref, size, strconv.Itoa(qty), 1)
			}
		}
	}
	return res
}

// SplitSegments breaks a multi-item utterance into independent segments on
// commas and "and", so one unresolvable segment never discards its siblings.
func SplitSegments(text string) []string {
	// protect item names that legitimately contain "and"
	guarded := strings.ReplaceAll(strings.ToLower(text), "mac and cheese", "mac & cheese")
	guarded = strings.ReplaceAll(guarded, ",", " and ")

	var segments []string
	for _, part := range strings.Split(guarded, " and ") {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12,
}

// ParseQuantity reads a leading integer token or a small English number
// word. Zero means the token carried no quantity.
func ParseQuantity(s string) int {
	s = normalize(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	if tok := strings.Fields(s); len(tok) > 0 {
		if n, err := strconv.Atoi(tok[0]); err == nil && n > 0 {
			return n
		}
		if n, ok := numberWords[tok[0]]; ok {
			return n
		}
	}
	return 0
}

func parseCount(count string) int {
	count = normalize(count)
	if count == "" {
		return 0
	}
	count = strings.TrimSuffix(count, "-count")
	count = strings.TrimSuffix(count, " count")
	count = strings.TrimSuffix(count, " piece")
	return ParseQuantity(count)
}
