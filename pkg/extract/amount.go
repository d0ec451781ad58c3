package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Plausible settled-amount range in whole currency units. Candidates outside
// it are OCR artifacts (stray digits, transaction-id fragments).
const (
	minPlausibleAmount = 1
	maxPlausibleAmount = 1_000_000
)

const numberPattern = `([0-9]{1,3}(?:,[0-9]{2,3})+(?:\.[0-9]{1,2})?|[0-9]+(?:\.[0-9]{1,2})?)`

// amountStrategies run in order. The unanchored fallback fires only when the
// anchored strategies produced no candidate at all: it trades precision for
// recall and must never compete with a currency- or keyword-anchored match.
var amountStrategies = []struct {
	name     string
	re       *regexp.Regexp
	fallback bool
}{
	{"currency", regexp.MustCompile(`(?:₹|rs\.?|inr)\s*` + numberPattern), false},
	{"keyword", regexp.MustCompile(`(?:amount|paid|received|debited|credited|sent)\b[^0-9₹]{0,16}` + numberPattern), false},
	{"bare", regexp.MustCompile(`\b([0-9]{3,7}(?:\.[0-9]{1,2})?)\b`), true},
}

// extractAmount collects candidates from the strategy chain, filters them to
// the plausible range and keeps the maximum. OCR artifacts tend to shrink a
// true amount (dropped leading digits) rather than grow it, so the largest
// plausible reading is the best single estimate.
func extractAmount(norm string) *float64 {
	var candidates []float64
	for _, s := range amountStrategies {
		if s.fallback && len(candidates) > 0 {
			break
		}
		for _, m := range s.re.FindAllStringSubmatch(norm, -1) {
			v, ok := parseAmountToken(m[1])
			if !ok || v < minPlausibleAmount || v > maxPlausibleAmount {
				continue
			}
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c > best {
			best = c
		}
	}
	return &best
}

// parseAmountToken strips grouping separators and parses the remainder.
func parseAmountToken(tok string) (float64, bool) {
	tok = strings.TrimSpace(tok)
	tok = strings.ReplaceAll(tok, ",", "")
	tok = strings.TrimSuffix(tok, ".")
	if tok == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
