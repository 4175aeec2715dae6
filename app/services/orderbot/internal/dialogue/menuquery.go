package dialogue

import (
	"fmt"
	"strings"

	"CluckAI/app/services/orderbot/internal/menu"
	"CluckAI/app/services/orderbot/internal/session"
)

// menuQuery answers price and ingredient questions, then offers the
// complementary topic as a followup. Saying yes twice walks the chain
// price -> ingredients -> order one (or the reverse).
func (d *Dispatcher) menuQuery(sess *session.Session, in Input) Reply {
	q := strings.ToLower(in.Query)
	topic := session.FollowupPrice
	if wantsIngredients(q) {
		topic = session.FollowupIngredients
	}

	ref := paramString(in.Params, "FoodItem", "food_item")
	if ref == "" {
		ref = questionTarget(q)
	}

	answer, canonical, ok := d.topicAnswer(topic, ref)
	if !ok {
		return Reply{Text: textNotOnMenu(ref)}
	}

	sess.State.ToPhase(session.PhaseAwaitingMenuFollowup)
	sess.State.FollowupItem = canonical
	sess.State.LastAnswered = topic

	followup := textAskIngredientsFollowup()
	if topic == session.FollowupIngredients {
		followup = textAskPriceFollowup()
	}
	return Reply{Text: answer + " " + followup}
}

// menuFollowup consumes a yes/no while a menu answer is on the table.
func (d *Dispatcher) menuFollowup(sess *session.Session, yes bool) Reply {
	if !yes {
		if sess.Cart.Empty() {
			sess.State.Reset()
		} else {
			sess.State.ToPhase(session.PhaseAwaitingMoreItems)
		}
		return Reply{Text: textFollowupDone()}
	}

	item := sess.State.FollowupItem
	switch sess.State.LastAnswered {
	case session.FollowupPrice:
		answer, canonical, ok := d.topicAnswer(session.FollowupIngredients, item)
		if !ok {
			return Reply{Text: textNotOnMenu(item)}
		}
		sess.State.FollowupItem = canonical
		sess.State.LastAnswered = session.FollowupOrder
		return Reply{Text: answer + " " + textAskOrderFollowup()}
	case session.FollowupIngredients:
		answer, canonical, ok := d.topicAnswer(session.FollowupPrice, item)
		if !ok {
			return Reply{Text: textNotOnMenu(item)}
		}
		sess.State.FollowupItem = canonical
		sess.State.LastAnswered = session.FollowupOrder
		return Reply{Text: answer + " " + textAskOrderFollowup()}
	}

	// the item itself was offered
	return d.applyResolutions(sess, []menu.Resolution{d.resolver.Resolve(item, "", "", 1)})
}

// topicAnswer builds the price or ingredient answer for a reference that may
// be a single item or a whole size/count family. It returns the canonical
// name to keep in followup state.
func (d *Dispatcher) topicAnswer(topic, ref string) (answer, canonical string, ok bool) {
	r := d.resolver.Resolve(ref, "", "", 1)
	switch r.Outcome {
	case menu.Found:
		if topic == session.FollowupIngredients {
			ingredients, _, found := d.catalog.Ingredients(r.Name)
			if !found {
				return "", "", false
			}
			return textIngredients(r.Name, ingredients), r.Name, true
		}
		cents, found := d.catalog.Price(r.Name)
		if !found {
			return "", "", false
		}
		return textPrice(r.Name, cents), r.Name, true

	case menu.SizeNeeded:
		if topic == session.FollowupIngredients {
			// a family shares one recipe, so any variant answers for all
			sizes := d.catalog.SizesFor(r.Base)
			if len(sizes) == 0 {
				return "", "", false
			}
			name := d.catalog.SizeVariant(r.Base, sizes[0])
			ingredients, _, found := d.catalog.Ingredients(name)
			if !found {
				return "", "", false
			}
			return textIngredients(r.Base, ingredients), r.Base, true
		}
		var parts []string
		for _, size := range d.catalog.SizesFor(r.Base) {
			name := d.catalog.SizeVariant(r.Base, size)
			if cents, found := d.catalog.Price(name); found {
				parts = append(parts, fmt.Sprintf("%s (%s)", size, dollars(cents)))
			}
		}
		if len(parts) == 0 {
			return "", "", false
		}
		return fmt.Sprintf("%s comes in %s.", r.Base, joinNatural(parts)), r.Base, true

	case menu.CountNeeded:
		if topic == session.FollowupIngredients {
			counts := d.catalog.CountsFor(r.Base)
			if len(counts) == 0 {
				return "", "", false
			}
			name, found := d.catalog.CountVariant(r.Base, counts[0])
			if !found {
				return "", "", false
			}
			ingredients, _, ingOK := d.catalog.Ingredients(name)
			if !ingOK {
				return "", "", false
			}
			return textIngredients(r.Base, ingredients), r.Base, true
		}
		var parts []string
		for _, count := range d.catalog.CountsFor(r.Base) {
			if name, found := d.catalog.CountVariant(r.Base, count); found {
				if cents, priced := d.catalog.Price(name); priced {
					parts = append(parts, fmt.Sprintf("%d-count (%s)", count, dollars(cents)))
				}
			}
		}
		if len(parts) == 0 {
			return "", "", false
		}
		return fmt.Sprintf("%s comes in %s.", r.Base, joinNatural(parts)), r.Base, true
	}
	return "", "", false
}

func wantsIngredients(q string) bool {
	for _, marker := range []string{
		"ingredient", "what's in", "whats in", "what is in",
		"made of", "made with", "come with", "contain",
	} {
		if strings.Contains(q, marker) {
			return true
		}
	}
	return false
}

// questionTarget strips interrogative filler so the leftover tokens can be
// matched against the catalog.
func questionTarget(q string) string {
	q = strings.Map(func(r rune) rune {
		switch r {
		case '?', '!', '.', ',':
			return ' '
		}
		return r
	}, q)

	filler := map[string]bool{
		"how": true, "much": true, "many": true, "what": true, "whats": true,
		"what's": true, "is": true, "are": true, "in": true, "the": true,
		"a": true, "an": true, "of": true, "does": true, "do": true,
		"cost": true, "price": true, "for": true, "ingredients": true,
		"ingredient": true, "made": true, "with": true, "it": true,
		"there": true, "you": true, "have": true, "your": true, "tell": true,
		"me": true, "about": true, "come": true, "contain": true,
	}
	var kept []string
	for _, tok := range strings.Fields(q) {
		if !filler[tok] {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}
