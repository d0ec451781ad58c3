package extract

import "regexp"

// statusRules are tried in order; the first category whose pattern hits wins.
// Success outranks Failed so that boilerplate like "if the payment is not
// successful, contact support" cannot flip an explicit success banner, and an
// explicit failure still wins when no success phrase is present.
var statusRules = []struct {
	status Status
	re     *regexp.Regexp
}{
	{StatusSuccess, regexp.MustCompile(`\b(payment successful|paid successfully|successfully (?:paid|sent|received)|transaction successful|success(?:ful(?:ly)?)?|completed)\b`)},
	{StatusFailed, regexp.MustCompile(`\b(payment failed|transaction failed|fail(?:ed|ure)?|declined|unsuccessful|reversed)\b`)},
	{StatusPending, regexp.MustCompile(`\b(pending|processing|in progress)\b`)},
}

// extractStatus expects text already lowercased and newline-flattened.
func extractStatus(norm string) Status {
	for _, rule := range statusRules {
		if rule.re.MatchString(norm) {
			return rule.status
		}
	}
	return StatusUnknown
}
