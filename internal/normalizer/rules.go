package normalizer

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Extraction rules. Each canonical field has its own ordered rule set and the
// first match wins; structured fields always outrank free-text heuristics.
// EfiPay has shipped several webhook shapes over time, so rules are additive:
// a new gateway version means a new entry, not a new code path.

var (
	digitRun   = regexp.MustCompile(`\d+`)
	bareDigits = regexp.MustCompile(`^\d{3,10}$`)
)

// findRawStatus returns the first string value under a key literally named
// "status", anywhere in the tree.
func findRawStatus(root *node) (string, bool) {
	var raw string
	found := false
	walk(root, func(key string, value *node) bool {
		if key == "status" && value.kind == kindString {
			raw = value.str
			found = true
			return false
		}
		return true
	})
	return raw, found
}

// amountKeys are the key names (lower-cased) that may carry the payment
// amount across EfiPay webhook versions.
var amountKeys = map[string]struct{}{
	"total":  {},
	"amount": {},
	"value":  {},
}

// findAmount returns the first positive numeric value under an amount key.
// Non-numeric or non-positive candidates are skipped, not treated as a match.
func findAmount(root *node) *decimal.Decimal {
	var amount *decimal.Decimal
	walk(root, func(key string, value *node) bool {
		if _, ok := amountKeys[strings.ToLower(key)]; !ok {
			return true
		}
		if value.kind != kindNumber {
			return true
		}
		d, err := decimal.NewFromString(value.num.String())
		if err != nil || !d.IsPositive() {
			return true
		}
		amount = &d
		return false
	})
	return amount
}

// referenceRule is one strategy for recovering the merchant order reference.
type referenceRule struct {
	name    string
	extract func(root *node) string
}

// referenceRules run in order until one yields a value. The structured
// containers EfiPay has been observed to use come first; free-text scans are
// the documented fallback, never the other way around.
var referenceRules = []referenceRule{
	{name: "structured_reference", extract: extractStructuredReference},
	{name: "description_digits", extract: extractDescriptionDigits},
	{name: "bare_digits", extract: extractBareDigits},
}

// findReference returns the reference and the name of the rule that found it.
func findReference(root *node) (string, string) {
	for _, rule := range referenceRules {
		if ref := rule.extract(root); ref != "" {
			return ref, rule.name
		}
	}
	return "", ""
}

// extractStructuredReference checks the known container shapes for the
// reference echoed from advanced_options.references at link-creation time.
func extractStructuredReference(root *node) string {
	candidates := []*node{
		root.child("advanced_options").child("references").index(0),
		root.child("references").index(0),
		root.child("payment").child("references").index(0),
		root.child("reference"),
		root.child("payment").child("reference"),
	}
	for _, c := range candidates {
		if ref, ok := c.scalarString(); ok {
			return strings.TrimSpace(ref)
		}
	}
	return ""
}

// extractDescriptionDigits scans for free text mentioning "pedido" (the
// link descriptions read "Pedido <n> - <store>") and takes the first run of
// digits inside it.
func extractDescriptionDigits(root *node) string {
	var ref string
	walk(root, func(_ string, value *node) bool {
		if value.kind != kindString {
			return true
		}
		if !strings.Contains(strings.ToLower(value.str), "pedido") {
			return true
		}
		if m := digitRun.FindString(value.str); m != "" {
			ref = m
			return false
		}
		return true
	})
	return ref
}

// extractBareDigits takes the first string value that is nothing but 3-10
// digits. Last resort: short digit strings elsewhere in the payload are
// usually the echoed reference, but this rule can misfire on unrelated
// numeric fields, which is why it runs last.
func extractBareDigits(root *node) string {
	var ref string
	walk(root, func(_ string, value *node) bool {
		if value.kind == kindString && bareDigits.MatchString(value.str) {
			ref = value.str
			return false
		}
		return true
	})
	return ref
}
