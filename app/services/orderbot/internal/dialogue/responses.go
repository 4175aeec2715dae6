package dialogue

import (
	"fmt"
	"strings"

	"CluckAI/app/services/orderbot/internal/cart"
)

// All customer-facing copy lives here so the handlers stay readable and the
// voice stays consistent.

func dollars(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

func textAdded(items []cart.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, li := range items {
		parts = append(parts, fmt.Sprintf("%d x %s", li.Quantity, li.Name))
	}
	return fmt.Sprintf("Great! I've added %s to your order.", joinNatural(parts))
}

func textNotOnMenu(name string) string {
	return fmt.Sprintf("Sorry, we don't have %s on the menu.", name)
}

func (d *Dispatcher) textAskSize(base string) string {
	sizes := d.catalog.SizesFor(base)
	if len(sizes) == 0 {
		sizes = []string{"Small", "Medium", "Large"}
	}
	return fmt.Sprintf("What size %s would you like: %s?", base, joinNatural(sizes))
}

func (d *Dispatcher) textAskCount(base string) string {
	counts := d.catalog.CountsFor(base)
	if len(counts) == 0 {
		return fmt.Sprintf("How many %s would you like?", base)
	}
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%d-count", c))
	}
	return fmt.Sprintf("Would you like the %s?", strings.Join(parts, " or the "))
}

func textAskNuggetType() string {
	return "Would you like regular or grilled nuggets?"
}

func textAskSpicy() string {
	return "Would you like the spicy chicken sandwich or the regular one?"
}

func textWhatElse() string {
	return "Sure, what else would you like?"
}

func textAnythingElse() string {
	return "Would you like anything else?"
}

func textNotConfirmed() string {
	return "No problem, your order has not been placed yet. What would you like to change?"
}

func textInviteOrder() string {
	return "Great! What would you like to order?"
}

func textStandingBy() string {
	return "Okay. Let me know when you'd like to order something."
}

func textFallback() string {
	return "Sorry, I didn't catch that. You can order food, ask about the menu, or review your order."
}

func textEmptyCart() string {
	return "You haven't ordered anything yet. What would you like?"
}

func textNothingToConfirm() string {
	return "There's no active order to confirm. What would you like to order?"
}

func textReview(totalCents int64) string {
	return fmt.Sprintf("Here's your order so far. Your total is %s. Would you like to confirm your order?", dollars(totalCents))
}

func textSummary(rows []cart.SummaryRow, totalCents int64) string {
	var b strings.Builder
	b.WriteString("Thank you for your order! You have ordered:\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%d x %s\n", row.Quantity, row.Name)
	}
	fmt.Fprintf(&b, "Your total is %s. Would you like to confirm your order?", dollars(totalCents))
	return b.String()
}

func textConfirmed(orderNo int64) string {
	return fmt.Sprintf("Your order #%d has been placed successfully! Thank you, see you at the pickup window.", orderNo)
}

func textCanceled() string {
	return "Alright, I've canceled your order. Let me know if you'd like to start a new one."
}

func textRemoved(names []string) string {
	return fmt.Sprintf("Okay, I've removed %s from your order.", joinNatural(names))
}

func textNotInOrder(name string) string {
	return fmt.Sprintf("I couldn't find %s in your order.", name)
}

func textPrice(name string, cents int64) string {
	return fmt.Sprintf("A %s is %s.", name, dollars(cents))
}

func textIngredients(name string, ingredients []string) string {
	if len(ingredients) == 0 {
		return fmt.Sprintf("The %s doesn't have a listed ingredient breakdown.", name)
	}
	return fmt.Sprintf("The %s is made with %s.", name, joinNatural(ingredients))
}

func textAskIngredientsFollowup() string {
	return "Would you like to know what's in it?"
}

func textAskPriceFollowup() string {
	return "Would you like to know the price?"
}

func textAskOrderFollowup() string {
	return "Would you like to order one?"
}

func textFollowupDone() string {
	return "No problem. Anything else I can help with?"
}

func textCustomized(item, change string) string {
	return fmt.Sprintf("Done! Your %s will come %s.", item, change)
}

func textNotModifiable(ingredient, item string) string {
	return fmt.Sprintf("Sorry, the %s on the %s can't be changed.", ingredient, item)
}

func textNothingToCustomize() string {
	return "You haven't ordered anything to customize yet. What would you like?"
}

func joinNatural(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}
