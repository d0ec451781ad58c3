package extract

import "strings"

// appRules pair a brand keyword with its UPI handle domains. Tried in order:
// first a pass requiring brand + domain co-occurrence (high precision), then
// a pass on the brand keyword alone. A lone incidental brand mention ("also
// try PhonePe") cannot beat a brand confirmed by its handle domain.
var appRules = []struct {
	app     App
	brands  []string
	domains []string
}{
	{AppPaytm, []string{"paytm"}, []string{"@paytm", "@ptyes", "@ptsbi", "@ptaxis"}},
	{AppPhonePe, []string{"phonepe", "phone pe"}, []string{"@ybl", "@ibl", "@axl"}},
	{AppGooglePay, []string{"google pay", "gpay", "g pay"}, []string{"@ok", "@oksbi", "@okicici", "@okhdfcbank", "@okaxis"}},
}

func extractApp(norm string) App {
	for _, rule := range appRules {
		if containsAny(norm, rule.brands) && containsAny(norm, rule.domains) {
			return rule.app
		}
	}
	for _, rule := range appRules {
		if containsAny(norm, rule.brands) {
			return rule.app
		}
	}
	return AppUnknown
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
