package extract

import (
	"regexp"
	"strings"
)

// "to" patterns are ordered most to least specific to a known app layout; the
// first pattern that matches anywhere wins for to_person. "from" has a single
// labeled family.
var (
	toPersonPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bbanking name\s*[:\-]?\s*([A-Za-z][A-Za-z .']*)`),
		regexp.MustCompile(`(?i)\bpaid to\s*[:\-]?\s*([A-Za-z][A-Za-z .']*)`),
		regexp.MustCompile(`(?i)^to\s*[:\-]?\s+([A-Za-z][A-Za-z .']*)`),
	}
	fromPersonRE = regexp.MustCompile(`(?i)\b(?:debited from|from|sender)\s*[:\-]?\s+([A-Za-z][A-Za-z .']*)`)

	// VPA-shaped token: local-part@provider, no full validation.
	handleRE = regexp.MustCompile(`\b[A-Za-z0-9][A-Za-z0-9._-]*@[A-Za-z][A-Za-z0-9]*\b`)
	// Indian mobile number: 10 digits starting 6-9, not embedded in a longer run.
	phoneRE = regexp.MustCompile(`(?:^|[^0-9])([6-9][0-9]{9})(?:[^0-9]|$)`)
	bankRE  = regexp.MustCompile(`(?i)\b([A-Z][A-Za-z&]*(?:\s+[A-Za-z&]+)*\s+bank(?:\s+of\s+[A-Za-z]+)?|bank\s+of\s+[A-Za-z]+)\b`)

	fromContextRE = regexp.MustCompile(`(?i)\b(from|sender|debited)\b`)
	toContextRE   = regexp.MustCompile(`(?i)\b(to|paid|payee|banking name|received by)\b`)

	// Name capture stops at the first layout delimiter the apps render after
	// a party name.
	nameCutRE = regexp.MustCompile(`(?i)\s*(?:[6-9][0-9]{9}|upi\s*id|a/c|bank).*$`)

	// bankRE matches leftmost, so a label like "Debited from" in front of the
	// bank name ends up inside the capture and has to be stripped after.
	bankLabelRE = regexp.MustCompile(`(?i)^(?:debited\s+from|paid\s+to|from|to|sender)\s+`)
)

// extractParties scans line by line so that a handle, phone or bank found on
// a "From ..." line stays on the sender side and one on a "To ..." line on
// the payee side. A handle with no line context fills to_handle first:
// confirmation screens foreground the payee.
func extractParties(lines []string, rec *Record) {
	for _, line := range lines {
		fromCtx := fromContextRE.MatchString(line)
		toCtx := toContextRE.MatchString(line)

		if rec.ToPerson == nil {
			for _, re := range toPersonPatterns {
				if m := re.FindStringSubmatch(line); len(m) == 2 {
					if name := cleanName(m[1]); name != "" {
						rec.ToPerson = strptr(name)
					}
					break
				}
			}
		}
		if rec.FromPerson == nil && fromCtx {
			if m := fromPersonRE.FindStringSubmatch(line); len(m) == 2 {
				if name := cleanName(m[1]); name != "" {
					rec.FromPerson = strptr(name)
				}
			}
		}

		if h := handleRE.FindString(line); h != "" {
			assignSided(rec, h, fromCtx, toCtx, &rec.FromHandle, &rec.ToHandle)
		}
		if m := phoneRE.FindStringSubmatch(line); len(m) == 2 {
			assignSided(rec, m[1], fromCtx, toCtx, &rec.FromPhone, &rec.ToPhone)
		}
		if m := bankRE.FindStringSubmatch(line); len(m) == 2 {
			bank := bankLabelRE.ReplaceAllString(strings.TrimSpace(m[1]), "")
			assignSided(rec, bank, fromCtx, toCtx, &rec.FromBank, &rec.ToBankName)
		}
	}
}

// assignSided places a token on the side its line context names; without
// context the payee side is preferred, then the sender side.
func assignSided(rec *Record, v string, fromCtx, toCtx bool, fromField, toField **string) {
	switch {
	case fromCtx && !toCtx:
		if *fromField == nil {
			*fromField = strptr(v)
		}
	case toCtx && !fromCtx:
		if *toField == nil {
			*toField = strptr(v)
		}
	default:
		if *toField == nil {
			*toField = strptr(v)
		} else if *fromField == nil {
			*fromField = strptr(v)
		}
	}
}

// cleanName trims a captured party name at the first delimiter and squeezes
// whitespace.
func cleanName(s string) string {
	s = nameCutRE.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, " .-")
	if len(s) < 2 || len(s) > 60 {
		return ""
	}
	return s
}
