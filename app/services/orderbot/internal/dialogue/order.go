package dialogue

import (
	"strings"

	"CluckAI/app/services/orderbot/internal/cart"
	"CluckAI/app/services/orderbot/internal/menu"
	"CluckAI/app/services/orderbot/internal/session"
)

// orderFood handles the main ordering intent. Entity parameters win when the
// NLU extracted them; otherwise the raw utterance is split and resolved
// segment by segment so one bad item never discards its siblings.
func (d *Dispatcher) orderFood(sess *session.Session, in Input) Reply {
	size := paramString(in.Params, "Size", "size")
	count := paramString(in.Params, "Count", "count")
	qty := paramQuantity(in.Params, "quantity", "Quantity", "number")
	refs := paramStrings(in.Params, "FoodItem", "food_item", "FoodItems", "food_items")

	var resolutions []menu.Resolution
	if len(refs) > 0 {
		for _, ref := range refs {
			resolutions = append(resolutions, d.resolver.Resolve(ref, size, count, qty))
		}
	} else {
		for _, seg := range menu.SplitSegments(in.Query) {
			resolutions = append(resolutions, d.resolver.ResolveSegment(seg))
		}
	}

	// "another one" repeats the most recent item in this session
	if allMisses(resolutions) && sess.State.LastItem != "" &&
		strings.Contains(strings.ToLower(in.Query), "another") {
		if qty < 1 {
			qty = 1
		}
		resolutions = []menu.Resolution{{Outcome: menu.Found, Name: sess.State.LastItem, Quantity: qty}}
	}

	return d.applyResolutions(sess, resolutions)
}

// applyResolutions folds a batch of resolutions into the cart. Found items
// are appended immediately; at most one pending question survives the turn,
// with size questions taking precedence over count questions.
func (d *Dispatcher) applyResolutions(sess *session.Session, resolutions []menu.Resolution) Reply {
	var added []cart.LineItem
	var parts []string
	var sizeAsk, countAsk *menu.Resolution

	for i := range resolutions {
		r := &resolutions[i]
		switch r.Outcome {
		case menu.Found:
			li, err := cart.NewLineItem(r.Name, r.Quantity)
			if err != nil {
				continue
			}
			sess.Cart.Append(li)
			sess.State.LastItem = r.Name
			added = append(added, li)
		case menu.SizeNeeded:
			if sizeAsk == nil {
				sizeAsk = r
			}
		case menu.CountNeeded:
			if countAsk == nil {
				countAsk = r
			}
		case menu.NotFound:
			parts = append(parts, textNotOnMenu(r.Attempted))
		}
	}

	if len(added) > 0 {
		parts = append([]string{textAdded(added)}, parts...)
	}

	switch {
	case sizeAsk != nil:
		sess.State.ToPhase(session.PhaseAwaitingSize)
		sess.State.PendingItem = sizeAsk.Base
		sess.State.PendingQuantity = sizeAsk.Quantity
		parts = append(parts, d.textAskSize(sizeAsk.Base))
	case countAsk != nil:
		parts = append(parts, d.startCountFlow(sess, countAsk))
	case len(added) > 0:
		sess.State.ToPhase(session.PhaseAwaitingMoreItems)
		parts = append(parts, textAnythingElse())
	}

	if len(parts) == 0 {
		return Reply{Text: textFallback()}
	}
	return Reply{Text: strings.Join(parts, " ")}
}

// startCountFlow routes a count-family base into the right clarification.
// Plain "nuggets" is ambiguous between regular and grilled, so it asks for
// the type first; everything else goes straight to the count question.
func (d *Dispatcher) startCountFlow(sess *session.Session, r *menu.Resolution) string {
	switch r.Base {
	case "Nuggets":
		sess.State.ToPhase(session.PhaseAwaitingNuggetType)
		sess.State.PendingQuantity = r.Quantity
		return textAskNuggetType()
	case "Grilled Nuggets":
		sess.State.ToPhase(session.PhaseAwaitingNuggetCount)
		sess.State.NuggetType = session.NuggetGrilled
		sess.State.PendingQuantity = r.Quantity
	case "Chick-n-Strips":
		sess.State.ToPhase(session.PhaseAwaitingNuggetCount)
		sess.State.NuggetType = session.NuggetStrips
		sess.State.PendingQuantity = r.Quantity
	default:
		sess.State.ToPhase(session.PhaseAwaitingNuggetCount)
		sess.State.PendingItem = r.Base
		sess.State.PendingQuantity = r.Quantity
	}
	return d.textAskCount(d.countBase(sess))
}

func (d *Dispatcher) specifySize(sess *session.Session, in Input) Reply {
	size := paramString(in.Params, "Size", "size")
	if size == "" {
		size = sizeWord(strings.ToLower(in.Query))
	}
	if size == "" {
		return Reply{Text: d.textAskSize(sess.State.PendingItem)}
	}
	return d.applySize(sess, size)
}

func (d *Dispatcher) applySize(sess *session.Session, size string) Reply {
	if sess.State.Phase != session.PhaseAwaitingSize || sess.State.PendingItem == "" {
		return Reply{Text: textFallback()}
	}
	r := d.resolver.Resolve(sess.State.PendingItem, size, "", sess.State.PendingQuantity)
	if r.Outcome != menu.Found {
		// e.g. "medium" for a family that only comes Small and Large
		return Reply{Text: d.textAskSize(sess.State.PendingItem)}
	}
	return d.appendResolved(sess, r.Name, r.Quantity)
}

func (d *Dispatcher) orderNuggets(sess *session.Session, in Input) Reply {
	qty := paramQuantity(in.Params, "quantity", "Quantity", "number")
	t := paramString(in.Params, "NuggetType", "nugget_type", "type")
	if t == "" {
		t = nuggetTypeWord(strings.ToLower(in.Query))
	}
	count := countNumber(paramString(in.Params, "Count", "count"))

	if t == "" {
		sess.State.ToPhase(session.PhaseAwaitingNuggetType)
		sess.State.PendingQuantity = qty
		return Reply{Text: textAskNuggetType()}
	}

	sess.State.ToPhase(session.PhaseAwaitingNuggetCount)
	sess.State.NuggetType = nuggetTypeWord(strings.ToLower(t))
	sess.State.PendingQuantity = qty
	if count > 0 {
		return d.applyNuggetCount(sess, count)
	}
	return Reply{Text: d.textAskCount(d.countBase(sess))}
}

func (d *Dispatcher) nuggetType(sess *session.Session, in Input) Reply {
	t := paramString(in.Params, "NuggetType", "nugget_type", "type")
	if t == "" {
		t = nuggetTypeWord(strings.ToLower(in.Query))
	}
	if t == "" {
		return Reply{Text: textAskNuggetType()}
	}
	return d.applyNuggetType(sess, nuggetTypeWord(strings.ToLower(t)))
}

func (d *Dispatcher) applyNuggetType(sess *session.Session, t string) Reply {
	qty := sess.State.PendingQuantity
	sess.State.ToPhase(session.PhaseAwaitingNuggetCount)
	sess.State.NuggetType = t
	sess.State.PendingQuantity = qty
	return Reply{Text: d.textAskCount(d.countBase(sess))}
}

func (d *Dispatcher) nuggetCount(sess *session.Session, in Input) Reply {
	n := paramQuantity(in.Params, "Count", "count", "number")
	if n == 0 {
		n = countNumber(paramString(in.Params, "Count", "count"))
	}
	if n == 0 {
		n = menu.ParseQuantity(firstNumberToken(strings.ToLower(in.Query)))
	}
	if n == 0 {
		return Reply{Text: d.textAskCount(d.countBase(sess))}
	}
	return d.applyNuggetCount(sess, n)
}

func (d *Dispatcher) applyNuggetCount(sess *session.Session, n int) Reply {
	base := d.countBase(sess)
	name, ok := d.catalog.CountVariant(base, n)
	if !ok {
		return Reply{Text: d.textAskCount(base)}
	}
	return d.appendResolved(sess, name, sess.State.PendingQuantity)
}

// countBase picks the count family the pending question is about.
func (d *Dispatcher) countBase(sess *session.Session) string {
	switch sess.State.NuggetType {
	case session.NuggetGrilled:
		return "Grilled Nuggets"
	case session.NuggetStrips:
		return "Chick-n-Strips"
	case session.NuggetRegular:
		return "Nuggets"
	}
	if sess.State.PendingItem != "" {
		return sess.State.PendingItem
	}
	return "Nuggets"
}

func (d *Dispatcher) askSpicy(sess *session.Session) Reply {
	sess.State.ToPhase(session.PhaseAwaitingSpicyChoice)
	return Reply{Text: textAskSpicy()}
}

func (d *Dispatcher) spicyChoice(sess *session.Session, spicy bool) Reply {
	name := "Chicken Sandwich"
	if spicy {
		name = "Spicy Chicken Sandwich"
	}
	return d.appendResolved(sess, name, sess.State.PendingQuantity)
}

// appendResolved puts one fully resolved item in the cart and moves the
// conversation on to the next-item question.
func (d *Dispatcher) appendResolved(sess *session.Session, name string, qty int) Reply {
	li, err := cart.NewLineItem(name, max(qty, 1))
	if err != nil {
		return Reply{Text: textFallback()}
	}
	sess.Cart.Append(li)
	sess.State.LastItem = name
	sess.State.ToPhase(session.PhaseAwaitingMoreItems)
	return Reply{Text: textAdded([]cart.LineItem{li}) + " " + textAnythingElse()}
}

func allMisses(resolutions []menu.Resolution) bool {
	for _, r := range resolutions {
		if r.Outcome != menu.NotFound {
			return false
		}
	}
	return true
}

// countNumber reads count entity values like "8", "8-count" or "8 piece".
func countNumber(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "-count")
	s = strings.TrimSuffix(s, " count")
	s = strings.TrimSuffix(s, " piece")
	return menu.ParseQuantity(s)
}
