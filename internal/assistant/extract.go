package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

// The extraction rules below are deliberate heuristics. They have known
// false negatives (a lowercase "my name is ali" is rejected) and those
// limits are part of the contract with the dialogue flow, which re-prompts
// on every miss.

var greetingTokens = []string{"hi", "hello", "salam", "assalam", "hey", "start"}

// isGreeting matches short salutations only: a greeting token as a
// substring and fewer than 3 words, so "hi, do you have rings?" is not
// swallowed by the canned greeting.
func isGreeting(message string) bool {
	if len(strings.Fields(message)) >= 3 {
		return false
	}
	lower := strings.ToLower(message)
	for _, tok := range greetingTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

var orderKeywords = []string{
	"order", "buy", "purchase", "place order", "want to buy",
	"i'd like to", "i want", "add to cart", "checkout",
}

func hasOrderIntent(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range orderKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

var (
	// Prefix phrase is case-insensitive, the captured name is not:
	// names must be capitalized, one or two words.
	namePrefixRe = regexp.MustCompile(`(?i:my name is|i'm|i am|call me|name's)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
	bareNameRe   = regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)$`)
)

// extractName returns the customer name found in the message, or "".
func extractName(message string) string {
	if m := namePrefixRe.FindStringSubmatch(message); m != nil {
		return m[1]
	}
	if m := bareNameRe.FindStringSubmatch(strings.TrimSpace(message)); m != nil {
		return m[1]
	}
	return ""
}

var digitRunRe = regexp.MustCompile(`\d+`)

// extractPhone concatenates every digit run in the message and accepts the
// result when it has at least 10 digits. No format validation.
func extractPhone(message string) string {
	digits := strings.Join(digitRunRe.FindAllString(message, -1), "")
	if len(digits) >= 10 {
		return digits
	}
	return ""
}

var (
	quantityRe = regexp.MustCompile(`\b(\d+)\b`)
	fillerRe   = regexp.MustCompile(`(?i)\b(\d+|want|need|buy|order|get|please|i|would|like)\b`)
)

// extractProductQuantity pulls a product name and quantity out of free
// text. Quantity defaults to 1 when no standalone integer is present; the
// product name is whatever survives stripping integers and filler words.
// Returns ("", 0) when nothing survives or the quantity is not positive:
// an order line always carries a positive quantity.
func extractProductQuantity(message string) (string, int) {
	qty := 1
	if m := quantityRe.FindStringSubmatch(message); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			qty = n
		}
	}
	name := strings.TrimSpace(fillerRe.ReplaceAllString(message, ""))
	if name == "" || qty < 1 {
		return "", 0
	}
	return name, qty
}
