package extract

import "regexp"

// Labeled identifier patterns. All are tried; several kinds may populate from
// one screenshot. Minimum token lengths are per kind: UTR and UPI reference
// numbers are long numeric strings by definition, the rest are looser.
var identifierRules = []struct {
	re     *regexp.Regexp
	minLen int
	set    func(r *Record, v string)
	// guardBrand: skip occurrences whose label is really the tail of a
	// branded label ("Google Transaction ID"). RE2 has no lookbehind, so the
	// guard inspects a short window before the match instead.
	guardBrand bool
}{
	{regexp.MustCompile(`(?i)(?:google|phonepe|paytm) transaction id\s*[:#-]?\s*([A-Za-z0-9]+)`), 8,
		func(r *Record, v string) { r.ProviderTransactionID = &v }, false},
	{regexp.MustCompile(`(?i)\btransaction id\s*[:#-]?\s*([A-Za-z0-9]+)`), 8,
		func(r *Record, v string) { r.TransactionID = &v }, true},
	{regexp.MustCompile(`(?i)\bupi ref(?:erence)?\.?\s*(?:no|number|id)?\.?\s*[:#-]?\s*([0-9]+)`), 10,
		func(r *Record, v string) { r.UPIRefNo = &v }, false},
	{regexp.MustCompile(`(?i)\border (?:id|no)\.?\s*[:#-]?\s*([A-Za-z0-9-]+)`), 6,
		func(r *Record, v string) { r.OrderID = &v }, false},
	{regexp.MustCompile(`(?i)\butr\b\.?\s*(?:no|number)?\.?\s*[:#-]?\s*([0-9]+)`), 10,
		func(r *Record, v string) { r.UTR = &v }, false},
	{regexp.MustCompile(`(?i)\b(?:provider|bank) ref(?:erence)?\.?\s*(?:no|id)?\.?\s*[:#-]?\s*([A-Za-z0-9]+)`), 8,
		func(r *Record, v string) { r.ProviderRefID = &v }, false},
}

// genericTokenRE is the low-precision fallback: a bare long alphanumeric
// token. It must carry at least one digit so marketing copy never qualifies.
var (
	genericTokenRE = regexp.MustCompile(`\b[A-Za-z0-9]{12,}\b`)
	hasDigitRE     = regexp.MustCompile(`[0-9]`)
	brandPrefixRE  = regexp.MustCompile(`(?i)(?:google|phonepe|paytm)\s*$`)
)

// extractIdentifiers fills the identifier fields on rec from the flattened
// text. The generic fallback populates transaction_id only when every labeled
// kind missed: labeled matches are high precision, the bare token is a last
// resort.
func extractIdentifiers(flat string, rec *Record) {
	for _, rule := range identifierRules {
		for _, loc := range rule.re.FindAllStringSubmatchIndex(flat, -1) {
			tok := flat[loc[2]:loc[3]]
			if len(tok) < rule.minLen {
				continue
			}
			if rule.guardBrand && ownedByBrand(flat, loc[0]) {
				continue
			}
			rule.set(rec, tok)
			break
		}
	}

	if rec.HasReference() {
		return
	}
	for _, tok := range genericTokenRE.FindAllString(flat, -1) {
		if hasDigitRE.MatchString(tok) {
			rec.TransactionID = strptr(tok)
			return
		}
	}
}

func ownedByBrand(flat string, start int) bool {
	w := start - 10
	if w < 0 {
		w = 0
	}
	return brandPrefixRE.MatchString(flat[w:start])
}
