package dialogue

import (
	"strings"

	"CluckAI/app/common/snowflake"
	"CluckAI/app/services/orderbot/internal/cart"
	"CluckAI/app/services/orderbot/internal/menu"
	"CluckAI/app/services/orderbot/internal/session"
)

// Intent display names produced by the NLU platform.
const (
	IntentOrderFood          = "OrderFood"
	IntentSpecifySize        = "SpecifySize"
	IntentOrderNuggets       = "OrderNuggets"
	IntentNuggetType         = "NuggetType"
	IntentNuggetCount        = "NuggetCount"
	IntentSandwichSpicyOrNot = "SandwichSpicyOrNot"
	IntentModifyOrder        = "ModifyOrder"
	IntentReviewOrder        = "ReviewOrder"
	IntentOrderCompletion    = "OrderCompletion"
	IntentConfirmOrder       = "ConfirmOrder"
	IntentCancelOrder        = "CancelOrder"
	IntentClearOrder         = "ClearOrder"
	IntentMenuQuery          = "MenuQuery"
	IntentCustomizeItem      = "CustomizeItem"
	IntentYes                = "Yes"
	IntentNo                 = "No"
)

// Input is one turn as handed over by the NLU platform: the classified
// intent, the raw utterance and the extracted parameters.
type Input struct {
	Intent string
	Query  string
	Params map[string]any
}

// PlacedOrder describes a just-confirmed order so the caller can hand it to
// the kitchen pipeline.
type PlacedOrder struct {
	OrderNo    int64
	SessionID  string
	Rows       []cart.SummaryRow
	TotalCents int64
}

// Reply is the dispatcher's answer for one turn. Text is always set; Rows
// and TotalCents accompany it when a structured payload should be rendered;
// Order is non-nil only on the confirmation turn.
type Reply struct {
	Text       string
	Rows       []cart.SummaryRow
	TotalCents int64
	Order      *PlacedOrder
}

// Dispatcher is the session state machine. Given the incoming intent and the
// session's dialogue state it mutates cart and state and picks the next
// prompt. All side effects are confined to the session it is handed.
type Dispatcher struct {
	catalog  *menu.Catalog
	resolver *menu.Resolver
	orderNo  func() int64
}

func NewDispatcher(catalog *menu.Catalog, resolver *menu.Resolver) *Dispatcher {
	return &Dispatcher{
		catalog:  catalog,
		resolver: resolver,
		orderNo:  snowflake.Next,
	}
}

func (d *Dispatcher) Dispatch(sess *session.Session, in Input) Reply {
	switch in.Intent {
	case IntentOrderFood:
		return d.orderFood(sess, in)
	case IntentSpecifySize:
		return d.specifySize(sess, in)
	case IntentOrderNuggets:
		return d.orderNuggets(sess, in)
	case IntentNuggetType:
		return d.nuggetType(sess, in)
	case IntentNuggetCount:
		return d.nuggetCount(sess, in)
	case IntentSandwichSpicyOrNot:
		return d.askSpicy(sess)
	case IntentModifyOrder:
		return d.modifyOrder(sess, in)
	case IntentReviewOrder:
		return d.reviewOrder(sess)
	case IntentOrderCompletion:
		return d.orderCompletion(sess)
	case IntentConfirmOrder:
		return d.confirmOrder(sess)
	case IntentCancelOrder, IntentClearOrder:
		return d.cancelOrder(sess)
	case IntentMenuQuery:
		return d.menuQuery(sess, in)
	case IntentCustomizeItem:
		return d.customizeItem(sess, in)
	case IntentYes:
		return d.answer(sess, true)
	case IntentNo:
		return d.answer(sess, false)
	}
	return d.freeformAnswer(sess, in)
}

// answer routes a bare yes/no by the active phase. The priority mirrors the
// closest-to-checkout-wins rule: confirmation, then menu followup, then
// more-items, then the spicy and nugget questions. Since the state is a
// single tagged value the order is defensive only.
func (d *Dispatcher) answer(sess *session.Session, yes bool) Reply {
	switch sess.State.Phase {
	case session.PhaseAwaitingConfirmation:
		if yes {
			return d.confirmOrder(sess)
		}
		sess.State.ToPhase(session.PhaseAwaitingMoreItems)
		return Reply{Text: textNotConfirmed()}
	case session.PhaseAwaitingMenuFollowup:
		return d.menuFollowup(sess, yes)
	case session.PhaseAwaitingMoreItems:
		if yes {
			return Reply{Text: textWhatElse()}
		}
		return d.orderCompletion(sess)
	case session.PhaseAwaitingSpicyChoice:
		return d.spicyChoice(sess, yes)
	case session.PhaseAwaitingNuggetType:
		return Reply{Text: textAskNuggetType()}
	case session.PhaseAwaitingNuggetCount:
		return Reply{Text: d.textAskCount(d.countBase(sess))}
	case session.PhaseAwaitingSize:
		return Reply{Text: d.textAskSize(sess.State.PendingItem)}
	}
	if yes {
		return Reply{Text: textInviteOrder()}
	}
	return Reply{Text: textStandingBy()}
}

// freeformAnswer interprets an unclassified utterance in the context of the
// pending question before giving up with the generic fallback. Unrecognized
// input mutates nothing.
func (d *Dispatcher) freeformAnswer(sess *session.Session, in Input) Reply {
	q := strings.ToLower(in.Query)
	switch sess.State.Phase {
	case session.PhaseAwaitingSize:
		if size := sizeWord(q); size != "" {
			return d.applySize(sess, size)
		}
	case session.PhaseAwaitingNuggetType:
		if t := nuggetTypeWord(q); t != "" {
			return d.applyNuggetType(sess, t)
		}
	case session.PhaseAwaitingNuggetCount:
		if n := menu.ParseQuantity(firstNumberToken(q)); n > 0 {
			return d.applyNuggetCount(sess, n)
		}
	case session.PhaseAwaitingSpicyChoice:
		if strings.Contains(q, "spicy") {
			return d.spicyChoice(sess, true)
		}
		if strings.Contains(q, "regular") || strings.Contains(q, "plain") {
			return d.spicyChoice(sess, false)
		}
	}
	if isAffirmative(q) {
		return d.answer(sess, true)
	}
	if isNegative(q) {
		return d.answer(sess, false)
	}
	return Reply{Text: textFallback()}
}
