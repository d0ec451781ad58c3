package extract

import "regexp"

// Accepted date and time shapes. Order matters for dates: month-name forms
// are less likely than numeric forms to be OCR noise, so they are tried first.
const (
	monthAlt     = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*`
	dayMonthDate = `[0-9]{1,2}(?:st|nd|rd|th)?\s+` + monthAlt + `,?\s+[0-9]{4}`
	monthDayDate = monthAlt + `\s+[0-9]{1,2}(?:st|nd|rd|th)?,?\s+[0-9]{4}`
	numericDate  = `[0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{2,4}`
	timeShape    = `[0-9]{1,2}:[0-9]{2}(?::[0-9]{2})?\s*(?:am|pm)?`
)

var (
	dateShapes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(` + dayMonthDate + `)\b`),
		regexp.MustCompile(`(?i)\b(` + monthDayDate + `)\b`),
		regexp.MustCompile(`\b(` + numericDate + `)\b`),
	}
	timeRE = regexp.MustCompile(`(?i)\b(` + timeShape + `)\b`)

	// Confirmation screens render the timestamp as one "time on date" phrase;
	// capturing it whole avoids pairing a stray date from elsewhere on the
	// screen with an unrelated time.
	combinedRE = regexp.MustCompile(`(?i)\b(` + timeShape + `)\s*(?:,|on|at)?\s*(` + dayMonthDate + `|` + monthDayDate + `|` + numericDate + `)\b`)
)

// extractDateTime prefers the combined phrase; failing that, date and time
// are searched independently and either may be found alone.
func extractDateTime(flat string, rec *Record) {
	if m := combinedRE.FindStringSubmatch(flat); len(m) == 3 {
		rec.Time = strptr(m[1])
		rec.Date = strptr(m[2])
		return
	}
	for _, re := range dateShapes {
		if m := re.FindStringSubmatch(flat); len(m) == 2 {
			rec.Date = strptr(m[1])
			break
		}
	}
	if m := timeRE.FindStringSubmatch(flat); len(m) == 2 {
		rec.Time = strptr(m[1])
	}
}
