package session

import (
	"time"

	"CluckAI/app/services/orderbot/internal/cart"
)

// Phase is the single pending-question context for a session. Exactly one
// phase is active at a time; there is no stacking, so generic yes/no answers
// are never ambiguous.
type Phase string

const (
	PhaseIdle                 Phase = "idle"
	PhaseAwaitingSize         Phase = "awaiting_size"
	PhaseAwaitingSpicyChoice  Phase = "awaiting_spicy_choice"
	PhaseAwaitingNuggetType   Phase = "awaiting_nugget_type"
	PhaseAwaitingNuggetCount  Phase = "awaiting_nugget_count"
	PhaseAwaitingMenuFollowup Phase = "awaiting_menu_followup"
	PhaseAwaitingMoreItems    Phase = "awaiting_more_items"
	PhaseAwaitingConfirmation Phase = "awaiting_confirmation"
)

// Followup topics for the menu Q&A chain.
const (
	FollowupPrice       = "price"
	FollowupIngredients = "ingredients"
	FollowupOrder       = "order"
)

// Nugget families for the count question.
const (
	NuggetRegular = "regular"
	NuggetGrilled = "grilled"
	NuggetStrips  = "strips"
)

// DialogueState carries the active phase plus whatever the pending question
// needs to remember across the turn boundary.
type DialogueState struct {
	Phase Phase `json:"phase"`

	// awaiting_size: the partial item and quantity preserved across turns
	PendingItem     string `json:"pending_item,omitempty"`
	PendingQuantity int    `json:"pending_quantity,omitempty"`

	// awaiting_nugget_count: "regular", "grilled" or "strips"
	NuggetType string `json:"nugget_type,omitempty"`

	// awaiting_menu_followup
	FollowupItem string `json:"followup_item,omitempty"`
	LastAnswered string `json:"last_answered,omitempty"`

	// last-touched cart line, for "another one" and customization
	LastItem string `json:"last_item,omitempty"`
}

// Reset returns the state to idle and drops all pending context, including
// the last-touched item.
func (s *DialogueState) Reset() {
	*s = DialogueState{Phase: PhaseIdle}
}

// ToPhase switches the phase and clears the context fields that belong to
// other phases, keeping the single-active-state invariant honest.
func (s *DialogueState) ToPhase(p Phase) {
	last := s.LastItem
	*s = DialogueState{Phase: p, LastItem: last}
}

// Session is the full per-session record: one cart, one dialogue state, one
// lock in the store. Created lazily on first reference.
type Session struct {
	ID        string        `json:"id"`
	Cart      cart.Cart     `json:"cart"`
	State     DialogueState `json:"state"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func New(id string) *Session {
	return &Session{
		ID:        id,
		State:     DialogueState{Phase: PhaseIdle},
		UpdatedAt: time.Now(),
	}
}

// Clone returns a copy whose cart slices share no backing memory with the
// receiver, so the copy stays valid while the live record keeps mutating
// under the store lock.
func (s *Session) Clone() Session {
	out := *s
	if s.Cart.Items != nil {
		out.Cart.Items = make([]cart.LineItem, len(s.Cart.Items))
		copy(out.Cart.Items, s.Cart.Items)
		for i := range out.Cart.Items {
			out.Cart.Items[i].Added = append([]string(nil), out.Cart.Items[i].Added...)
			out.Cart.Items[i].Removed = append([]string(nil), out.Cart.Items[i].Removed...)
		}
	}
	return out
}
