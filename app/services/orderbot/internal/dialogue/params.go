package dialogue

import (
	"strconv"
	"strings"

	"CluckAI/app/services/orderbot/internal/menu"
)

// The NLU platform wraps list-typed entities in arrays even when a single
// value was captured, and all JSON numbers arrive as float64. The helpers
// below flatten both shapes.

func paramString(params map[string]any, keys ...string) string {
	vals := paramStrings(params, keys...)
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func paramStrings(params map[string]any, keys ...string) []string {
	for _, key := range keys {
		v, ok := params[key]
		if !ok {
			continue
		}
		var out []string
		switch t := v.(type) {
		case string:
			if t != "" {
				out = append(out, t)
			}
		case []any:
			for _, e := range t {
				if s := scalarString(e); s != "" {
					out = append(out, s)
				}
			}
		default:
			if s := scalarString(v); s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func paramQuantity(params map[string]any, keys ...string) int {
	if s := paramString(params, keys...); s != "" {
		if n := menu.ParseQuantity(s); n > 0 {
			return n
		}
	}
	return 0
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	}
	return ""
}

var affirmativeWords = []string{
	"yes", "yeah", "yep", "yup", "sure", "ok", "okay",
	"correct", "right", "confirm", "absolutely", "please do",
}

var negativeWords = []string{
	"no", "nope", "nah", "nothing", "negative",
	"that's all", "thats all", "that is all", "that's it",
	"i'm good", "im good", "i am good",
}

func isAffirmative(q string) bool {
	return containsAnyWord(q, affirmativeWords)
}

func isNegative(q string) bool {
	return containsAnyWord(q, negativeWords)
}

func containsAnyWord(q string, words []string) bool {
	q = " " + strings.ToLower(strings.TrimSpace(q)) + " "
	q = strings.Map(func(r rune) rune {
		switch r {
		case '.', ',', '!', '?':
			return ' '
		}
		return r
	}, q)
	for _, w := range words {
		if strings.Contains(q, " "+w+" ") {
			return true
		}
	}
	return false
}

func sizeWord(q string) string {
	for _, s := range []string{"small", "medium", "large"} {
		if strings.Contains(q, s) {
			return s
		}
	}
	return ""
}

func nuggetTypeWord(q string) string {
	switch {
	case strings.Contains(q, "grill"):
		return "grilled"
	case strings.Contains(q, "regular"), strings.Contains(q, "breaded"), strings.Contains(q, "fried"), strings.Contains(q, "normal"):
		return "regular"
	case strings.Contains(q, "strip"), strings.Contains(q, "tender"):
		return "strips"
	}
	return ""
}

func firstNumberToken(q string) string {
	for _, tok := range strings.Fields(q) {
		tok = strings.Trim(tok, ".,!?")
		if menu.ParseQuantity(tok) > 0 {
			return tok
		}
	}
	return ""
}
