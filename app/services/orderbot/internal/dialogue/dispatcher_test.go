package dialogue

import (
	"testing"

	"CluckAI/app/services/orderbot/internal/menu"
	"CluckAI/app/services/orderbot/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher() *Dispatcher {
	cat := menu.NewCatalog()
	d := NewDispatcher(cat, menu.NewResolver(cat))
	d.orderNo = func() int64 { return 1001 }
	return d
}

func turn(intent, query string, params map[string]any) Input {
	return Input{Intent: intent, Query: query, Params: params}
}

func TestOrderFoodDirectAdd(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	reply := d.Dispatch(sess, turn(IntentOrderFood, "I'd like a chicken sandwich", map[string]any{
		"FoodItem": []any{"chicken sandwich"},
	}))

	require.Len(t, sess.Cart.Items, 1)
	assert.Equal(t, "Chicken Sandwich", sess.Cart.Items[0].Name)
	assert.Equal(t, session.PhaseAwaitingMoreItems, sess.State.Phase)
	assert.Contains(t, reply.Text, "I've added")
	assert.Contains(t, reply.Text, "anything else")
}

func TestOrderFoodSizeRoundTrip(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	reply := d.Dispatch(sess, turn(IntentOrderFood, "can I get two fries", map[string]any{
		"FoodItem": []any{"fries"},
		"quantity": float64(2),
	}))
	assert.Equal(t, session.PhaseAwaitingSize, sess.State.Phase)
	assert.Equal(t, "Waffle Potato Fries", sess.State.PendingItem)
	assert.Contains(t, reply.Text, "What size")
	assert.Empty(t, sess.Cart.Items, "nothing enters the cart before the size lands")

	reply = d.Dispatch(sess, turn(IntentSpecifySize, "large please", map[string]any{
		"Size": "large",
	}))
	require.Len(t, sess.Cart.Items, 1)
	assert.Equal(t, "Waffle Potato Fries (Large)", sess.Cart.Items[0].Name)
	assert.Equal(t, 2, sess.Cart.Items[0].Quantity)
	assert.Equal(t, session.PhaseAwaitingMoreItems, sess.State.Phase)
	assert.Contains(t, reply.Text, "Waffle Potato Fries (Large)")
}

func TestOrderFoodUnavailableSize(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	d.Dispatch(sess, turn(IntentOrderFood, "a milkshake", map[string]any{
		"FoodItem": []any{"milkshake"},
	}))
	require.Equal(t, session.PhaseAwaitingSize, sess.State.Phase)

	reply := d.Dispatch(sess, turn(IntentSpecifySize, "medium", map[string]any{"Size": "medium"}))
	assert.Empty(t, sess.Cart.Items)
	assert.Equal(t, session.PhaseAwaitingSize, sess.State.Phase, "a bad size re-asks instead of giving up")
	assert.Contains(t, reply.Text, "What size")
}

func TestOrderFoodMultiItemPartialFailure(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	reply := d.Dispatch(sess, turn(IntentOrderFood, "a cobb salad, a pizza and a cookie", nil))

	require.Len(t, sess.Cart.Items, 2)
	assert.Equal(t, "Cobb Salad", sess.Cart.Items[0].Name)
	assert.Equal(t, "Chocolate Chunk Cookie", sess.Cart.Items[1].Name)
	assert.Contains(t, reply.Text, "don't have pizza")
}

func TestNuggetFlow(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	reply := d.Dispatch(sess, turn(IntentOrderFood, "I want nuggets", map[string]any{
		"FoodItem": []any{"nuggets"},
	}))
	assert.Equal(t, session.PhaseAwaitingNuggetType, sess.State.Phase)
	assert.Contains(t, reply.Text, "regular or grilled")

	reply = d.Dispatch(sess, turn(IntentNuggetType, "grilled", nil))
	assert.Equal(t, session.PhaseAwaitingNuggetCount, sess.State.Phase)
	assert.Contains(t, reply.Text, "8-count or the 12-count")

	d.Dispatch(sess, turn(IntentNuggetCount, "twelve", nil))
	require.Len(t, sess.Cart.Items, 1)
	assert.Equal(t, "Grilled Nuggets (12-count)", sess.Cart.Items[0].Name)
}

func TestNuggetCountInline(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	// a leading 8 on a count family reads as the count, not a quantity
	d.Dispatch(sess, turn(IntentOrderFood, "8 nuggets please", nil))
	require.Len(t, sess.Cart.Items, 1)
	assert.Equal(t, "Nuggets (8-count)", sess.Cart.Items[0].Name)
	assert.Equal(t, 1, sess.Cart.Items[0].Quantity)
	assert.Equal(t, session.PhaseAwaitingMoreItems, sess.State.Phase)
}

func TestSpicyFlow(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	reply := d.Dispatch(sess, turn(IntentSandwichSpicyOrNot, "do you have a spicy one", nil))
	assert.Equal(t, session.PhaseAwaitingSpicyChoice, sess.State.Phase)
	assert.Contains(t, reply.Text, "spicy chicken sandwich")

	d.Dispatch(sess, turn(IntentYes, "yes", nil))
	require.Len(t, sess.Cart.Items, 1)
	assert.Equal(t, "Spicy Chicken Sandwich", sess.Cart.Items[0].Name)
}

func TestSpicyDeclinedFallsBackToRegular(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	d.Dispatch(sess, turn(IntentSandwichSpicyOrNot, "", nil))
	d.Dispatch(sess, turn(IntentNo, "no thanks", nil))

	require.Len(t, sess.Cart.Items, 1)
	assert.Equal(t, "Chicken Sandwich", sess.Cart.Items[0].Name)
}

func TestAnotherOneRepeatsLastItem(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	d.Dispatch(sess, turn(IntentOrderFood, "a cobb salad", map[string]any{
		"FoodItem": []any{"cobb salad"},
	}))
	d.Dispatch(sess, turn(IntentOrderFood, "another one", nil))

	require.Len(t, sess.Cart.Items, 2)
	assert.Equal(t, "Cobb Salad", sess.Cart.Items[1].Name)
}

func TestModifyOrderRemove(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	d.Dispatch(sess, turn(IntentOrderFood, "", map[string]any{
		"FoodItem": []any{"cobb salad", "cookie"},
	}))
	require.Len(t, sess.Cart.Items, 2)

	reply := d.Dispatch(sess, turn(IntentModifyOrder, "remove the cookie", map[string]any{
		"Action":   "remove",
		"FoodItem": []any{"cookie"},
	}))
	require.Len(t, sess.Cart.Items, 1)
	assert.Equal(t, "Cobb Salad", sess.Cart.Items[0].Name)
	assert.Contains(t, reply.Text, "removed")
}

func TestModifyOrderRemoveMiss(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	d.Dispatch(sess, turn(IntentOrderFood, "", map[string]any{"FoodItem": []any{"cobb salad"}}))
	reply := d.Dispatch(sess, turn(IntentModifyOrder, "remove the milkshake", map[string]any{
		"Action":   "remove",
		"FoodItem": []any{"milkshake"},
	}))

	assert.Len(t, sess.Cart.Items, 1)
	assert.Contains(t, reply.Text, "couldn't find")
}

func TestReviewAndConfirm(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	d.Dispatch(sess, turn(IntentOrderFood, "", map[string]any{"FoodItem": []any{"chicken sandwich"}}))
	d.Dispatch(sess, turn(IntentOrderFood, "", map[string]any{
		"FoodItem": []any{"fries"}, "Size": "large",
	}))

	reply := d.Dispatch(sess, turn(IntentReviewOrder, "what's my order", nil))
	require.Len(t, reply.Rows, 2)
	assert.Equal(t, int64(429+245), reply.TotalCents)
	assert.Equal(t, session.PhaseAwaitingConfirmation, sess.State.Phase)

	reply = d.Dispatch(sess, turn(IntentYes, "yes", nil))
	require.NotNil(t, reply.Order)
	assert.Equal(t, int64(1001), reply.Order.OrderNo)
	assert.Equal(t, int64(674), reply.Order.TotalCents)
	assert.True(t, sess.Cart.Empty(), "confirmation empties the session")
	assert.Equal(t, session.PhaseIdle, sess.State.Phase)
	assert.Contains(t, reply.Text, "#1001")
}

func TestConfirmWithEmptyCart(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	reply := d.Dispatch(sess, turn(IntentConfirmOrder, "confirm", nil))
	assert.Nil(t, reply.Order)
	assert.Contains(t, reply.Text, "no active order")
}

func TestCancelClearsEverything(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	d.Dispatch(sess, turn(IntentOrderFood, "", map[string]any{"FoodItem": []any{"cobb salad"}}))
	reply := d.Dispatch(sess, turn(IntentCancelOrder, "cancel my order", nil))

	assert.True(t, sess.Cart.Empty())
	assert.Equal(t, session.PhaseIdle, sess.State.Phase)
	assert.Nil(t, reply.Order)
}

func TestMenuFollowupChain(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	reply := d.Dispatch(sess, turn(IntentMenuQuery, "how much is the cobb salad", map[string]any{
		"FoodItem": []any{"cobb salad"},
	}))
	assert.Contains(t, reply.Text, "$8.19")
	assert.Equal(t, session.PhaseAwaitingMenuFollowup, sess.State.Phase)
	assert.Equal(t, session.FollowupPrice, sess.State.LastAnswered)

	reply = d.Dispatch(sess, turn(IntentYes, "yes", nil))
	assert.Contains(t, reply.Text, "made with")
	assert.Equal(t, session.FollowupOrder, sess.State.LastAnswered)

	reply = d.Dispatch(sess, turn(IntentYes, "sure", nil))
	require.Len(t, sess.Cart.Items, 1)
	assert.Equal(t, "Cobb Salad", sess.Cart.Items[0].Name)
	assert.Equal(t, session.PhaseAwaitingMoreItems, sess.State.Phase)
}

func TestMenuQueryIngredientsFirst(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	reply := d.Dispatch(sess, turn(IntentMenuQuery, "what's in the chicken sandwich", map[string]any{
		"FoodItem": []any{"chicken sandwich"},
	}))
	assert.Contains(t, reply.Text, "made with")
	assert.Contains(t, reply.Text, "price")
	assert.Equal(t, session.FollowupIngredients, sess.State.LastAnswered)
}

func TestMenuQueryFamilyPrices(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	reply := d.Dispatch(sess, turn(IntentMenuQuery, "how much is a soft drink", map[string]any{
		"FoodItem": []any{"soft drink"},
	}))
	assert.Contains(t, reply.Text, "Small ($1.65)")
	assert.Contains(t, reply.Text, "Large ($2.15)")
}

func TestMenuQueryUnknownItem(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	reply := d.Dispatch(sess, turn(IntentMenuQuery, "how much is a burger", map[string]any{
		"FoodItem": []any{"burger"},
	}))
	assert.Contains(t, reply.Text, "don't have")
	assert.Equal(t, session.PhaseIdle, sess.State.Phase, "a miss leaves no followup dangling")
}

func TestMenuFollowupDeclined(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	d.Dispatch(sess, turn(IntentMenuQuery, "", map[string]any{"FoodItem": []any{"cobb salad"}}))
	d.Dispatch(sess, turn(IntentNo, "no", nil))

	assert.Equal(t, session.PhaseIdle, sess.State.Phase)
}

func TestCustomizeItem(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	d.Dispatch(sess, turn(IntentOrderFood, "", map[string]any{"FoodItem": []any{"chicken sandwich"}}))
	reply := d.Dispatch(sess, turn(IntentCustomizeItem, "no pickles please", map[string]any{
		"Ingredient": "pickles",
	}))

	assert.Contains(t, reply.Text, "without pickle slices")
	require.Len(t, sess.Cart.Items, 1)
	assert.Equal(t, []string{"pickle slices"}, sess.Cart.Items[0].Removed)
}

func TestCustomizeRejectsFixedIngredient(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	d.Dispatch(sess, turn(IntentOrderFood, "", map[string]any{"FoodItem": []any{"chicken sandwich"}}))
	reply := d.Dispatch(sess, turn(IntentCustomizeItem, "no bun", map[string]any{
		"Ingredient": "bun",
	}))

	assert.Contains(t, reply.Text, "can't be changed")
	assert.Empty(t, sess.Cart.Items[0].Removed)
}

func TestYesNoRouting(t *testing.T) {
	d := newTestDispatcher()

	t.Run("no at more-items reads the order back", func(t *testing.T) {
		sess := session.New("s1")
		d.Dispatch(sess, turn(IntentOrderFood, "", map[string]any{"FoodItem": []any{"cobb salad"}}))
		reply := d.Dispatch(sess, turn(IntentNo, "no that's all", nil))
		assert.Equal(t, session.PhaseAwaitingConfirmation, sess.State.Phase)
		assert.Contains(t, reply.Text, "Your total is")
	})

	t.Run("no at confirmation backs out without placing", func(t *testing.T) {
		sess := session.New("s1")
		d.Dispatch(sess, turn(IntentOrderFood, "", map[string]any{"FoodItem": []any{"cobb salad"}}))
		d.Dispatch(sess, turn(IntentOrderCompletion, "that's everything", nil))
		reply := d.Dispatch(sess, turn(IntentNo, "no wait", nil))
		assert.Nil(t, reply.Order)
		assert.Len(t, sess.Cart.Items, 1)
		assert.Equal(t, session.PhaseAwaitingMoreItems, sess.State.Phase)
	})

	t.Run("idle yes invites an order", func(t *testing.T) {
		sess := session.New("s1")
		reply := d.Dispatch(sess, turn(IntentYes, "yes", nil))
		assert.Contains(t, reply.Text, "What would you like to order")
	})
}

func TestUnknownIntentFreeform(t *testing.T) {
	d := newTestDispatcher()

	t.Run("size answer without the intent", func(t *testing.T) {
		sess := session.New("s1")
		d.Dispatch(sess, turn(IntentOrderFood, "", map[string]any{"FoodItem": []any{"fries"}}))
		d.Dispatch(sess, turn("input.unknown", "make it a small one", nil))
		require.Len(t, sess.Cart.Items, 1)
		assert.Equal(t, "Waffle Potato Fries (Small)", sess.Cart.Items[0].Name)
	})

	t.Run("true gibberish mutates nothing", func(t *testing.T) {
		sess := session.New("s1")
		reply := d.Dispatch(sess, turn("input.unknown", "purple monkey dishwasher", nil))
		assert.Empty(t, sess.Cart.Items)
		assert.Equal(t, session.PhaseIdle, sess.State.Phase)
		assert.Contains(t, reply.Text, "didn't catch that")
	})
}

func TestOrderCompletionEmptyCart(t *testing.T) {
	d := newTestDispatcher()
	sess := session.New("s1")

	reply := d.Dispatch(sess, turn(IntentOrderCompletion, "that's all", nil))
	assert.Contains(t, reply.Text, "haven't ordered anything")
	assert.Equal(t, session.PhaseIdle, sess.State.Phase)
}
