// Package extract turns raw OCR text from a payment screenshot into a flat
// record of typed, independently nullable fields. Each field family runs an
// ordered chain of regex strategies; precedence lives in the strategy tables,
// not in control flow.
package extract

import "strings"

// Extract parses rawText into a Record. It never fails: unmatched fields stay
// nil and malformed input only degrades the result, so any string (including
// empty) is valid input.
func Extract(rawText string) Record {
	rec := Record{
		Status:     StatusUnknown,
		PaymentApp: AppUnknown,
		RawText:    rawText,
	}

	flat := flattenText(rawText)
	norm := strings.ToLower(flat)
	lines := splitLines(rawText)

	rec.Status = extractStatus(norm)
	rec.Amount = extractAmount(norm)
	extractIdentifiers(flat, &rec)
	extractParties(lines, &rec)
	extractDateTime(flat, &rec)
	rec.PaymentApp = extractApp(norm)

	return rec
}

// flattenText collapses newlines and runs of whitespace; case is preserved so
// identifier tokens come back verbatim. Families that want case-folded text
// lowercase the flattened form.
func flattenText(t string) string {
	t = strings.ReplaceAll(t, "\n", " ")
	t = strings.ReplaceAll(t, "\t", " ")
	return strings.Join(strings.Fields(t), " ")
}

func splitLines(t string) []string {
	raw := strings.Split(t, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

func strptr(s string) *string { return &s }
