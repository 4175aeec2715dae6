package dialogue

import (
	"strings"

	"CluckAI/app/services/orderbot/internal/menu"
	"CluckAI/app/services/orderbot/internal/session"
)

// modifyOrder adds or removes items on an existing order. The action comes
// from the NLU parameter when present, otherwise from verbs in the query.
func (d *Dispatcher) modifyOrder(sess *session.Session, in Input) Reply {
	action := strings.ToLower(paramString(in.Params, "Action", "action"))
	if action == "" {
		action = inferAction(strings.ToLower(in.Query))
	}
	refs := paramStrings(in.Params, "FoodItem", "food_item", "FoodItems", "food_items")

	switch action {
	case "clear":
		return d.cancelOrder(sess)
	case "remove":
		if len(refs) == 0 {
			refs = removalTargets(in.Query)
		}
		if len(refs) == 0 {
			return Reply{Text: textFallback()}
		}
		var removed []string
		var parts []string
		for _, ref := range refs {
			names := sess.Cart.RemoveMatching(ref)
			if len(names) == 0 {
				parts = append(parts, textNotInOrder(ref))
				continue
			}
			removed = append(removed, names...)
		}
		if len(removed) > 0 {
			parts = append([]string{textRemoved(removed)}, parts...)
			if sess.Cart.Empty() {
				sess.State.Reset()
			}
		}
		return Reply{Text: strings.Join(parts, " ")}
	}

	// default to adding
	qty := paramQuantity(in.Params, "quantity", "Quantity", "number")
	var resolutions []menu.Resolution
	if len(refs) > 0 {
		size := paramString(in.Params, "Size", "size")
		for _, ref := range refs {
			resolutions = append(resolutions, d.resolver.Resolve(ref, size, "", qty))
		}
	} else {
		for _, seg := range menu.SplitSegments(in.Query) {
			resolutions = append(resolutions, d.resolver.ResolveSegment(seg))
		}
	}
	return d.applyResolutions(sess, resolutions)
}

func inferAction(q string) string {
	switch {
	case strings.Contains(q, "remove"), strings.Contains(q, "take off"),
		strings.Contains(q, "take the"), strings.Contains(q, "get rid of"),
		strings.Contains(q, "don't want"), strings.Contains(q, "dont want"),
		strings.Contains(q, "delete"):
		return "remove"
	case strings.Contains(q, "clear"), strings.Contains(q, "start over"),
		strings.Contains(q, "empty"):
		return "clear"
	}
	return "add"
}

// removalTargets pulls item references out of a removal utterance by
// dropping the verbs and filler around them.
func removalTargets(query string) []string {
	q := strings.ToLower(query)
	for _, filler := range []string{
		"please", "remove", "take off", "take", "get rid of", "delete",
		"i don't want", "i dont want", "the", "my", "from my order",
		"from the order", "off", "anymore",
	} {
		q = strings.ReplaceAll(q, filler, " ")
	}
	var targets []string
	for _, seg := range menu.SplitSegments(q) {
		if seg = strings.TrimSpace(seg); seg != "" {
			targets = append(targets, seg)
		}
	}
	return targets
}

// reviewOrder reads the order back without touching the cart. The structured
// rows ride along for clients that render a receipt card. The readback ends
// with the confirm question, so the phase deliberately moves to
// awaiting-confirmation and a bare "yes" places the order.
func (d *Dispatcher) reviewOrder(sess *session.Session) Reply {
	if sess.Cart.Empty() {
		return Reply{Text: textEmptyCart()}
	}
	rows := sess.Cart.Summary(d.catalog)
	total := sess.Cart.TotalCents(d.catalog)
	sess.State.ToPhase(session.PhaseAwaitingConfirmation)
	return Reply{Text: textReview(total), Rows: rows, TotalCents: total}
}

// orderCompletion reads the full order back and asks for confirmation.
func (d *Dispatcher) orderCompletion(sess *session.Session) Reply {
	if sess.Cart.Empty() {
		return Reply{Text: textEmptyCart()}
	}
	rows := sess.Cart.Summary(d.catalog)
	total := sess.Cart.TotalCents(d.catalog)
	sess.State.ToPhase(session.PhaseAwaitingConfirmation)
	return Reply{Text: textSummary(rows, total), Rows: rows, TotalCents: total}
}

// confirmOrder finalizes the order: assigns an order number, empties the
// session and hands the placed order back for downstream processing.
func (d *Dispatcher) confirmOrder(sess *session.Session) Reply {
	if sess.Cart.Empty() {
		return Reply{Text: textNothingToConfirm()}
	}
	rows := sess.Cart.Summary(d.catalog)
	total := sess.Cart.TotalCents(d.catalog)
	placed := &PlacedOrder{
		OrderNo:    d.orderNo(),
		SessionID:  sess.ID,
		Rows:       rows,
		TotalCents: total,
	}
	sess.Cart.Clear()
	sess.State.Reset()
	return Reply{Text: textConfirmed(placed.OrderNo), Rows: rows, TotalCents: total, Order: placed}
}

func (d *Dispatcher) cancelOrder(sess *session.Session) Reply {
	sess.Cart.Clear()
	sess.State.Reset()
	return Reply{Text: textCanceled()}
}

// customizeItem records an ingredient change against the most recent cart
// line for the last-touched item. Only ingredients the kitchen marks as
// modifiable can be changed.
func (d *Dispatcher) customizeItem(sess *session.Session, in Input) Reply {
	if sess.Cart.Empty() {
		return Reply{Text: textNothingToCustomize()}
	}
	ingredient := strings.ToLower(paramString(in.Params, "Ingredient", "ingredient"))
	if ingredient == "" {
		return Reply{Text: textFallback()}
	}

	target := -1
	for i := len(sess.Cart.Items) - 1; i >= 0; i-- {
		if sess.State.LastItem == "" || sess.Cart.Items[i].Name == sess.State.LastItem {
			target = i
			break
		}
	}
	if target < 0 {
		target = len(sess.Cart.Items) - 1
	}
	line := &sess.Cart.Items[target]

	_, modifiable, ok := d.catalog.Ingredients(line.Name)
	if !ok {
		return Reply{Text: textNotModifiable(ingredient, line.Name)}
	}
	canonical, ok := matchIngredient(modifiable, ingredient)
	if !ok {
		return Reply{Text: textNotModifiable(ingredient, line.Name)}
	}

	adding := strings.Contains(strings.ToLower(in.Query), "extra") ||
		strings.Contains(strings.ToLower(in.Query), "add ")
	if adding {
		if !containsFold(line.Added, canonical) {
			line.Added = append(line.Added, canonical)
		}
		return Reply{Text: textCustomized(line.Name, "with extra "+canonical)}
	}
	if !containsFold(line.Removed, canonical) {
		line.Removed = append(line.Removed, canonical)
	}
	return Reply{Text: textCustomized(line.Name, "without "+canonical)}
}

// matchIngredient maps a spoken ingredient to the kitchen's listing, so
// "pickles" hits "pickle slices". Either side may be the longer phrase.
func matchIngredient(modifiable []string, spoken string) (string, bool) {
	spoken = strings.ToLower(strings.TrimSpace(spoken))
	singular := strings.TrimSuffix(spoken, "s")
	if singular == "" {
		singular = spoken
	}
	for _, ing := range modifiable {
		low := strings.ToLower(ing)
		if strings.Contains(low, spoken) || strings.Contains(spoken, low) ||
			strings.Contains(low, singular) {
			return ing, true
		}
	}
	return "", false
}

func containsFold(list []string, s string) bool {
	for _, e := range list {
		if strings.EqualFold(e, s) {
			return true
		}
	}
	return false
}
