package verify

import (
	"regexp"
	"strings"
	"time"
)

// Layouts tried in order against the "date time" concatenation. 12-hour
// forms come first because that is what the supported apps render.
var dateTimeLayouts = []string{
	"2 Jan 2006 3:04 PM",
	"2 Jan 2006 3:04:05 PM",
	"2 Jan 2006 15:04",
	"2 Jan 2006 15:04:05",
	"2 Jan, 2006 3:04 PM",
	"Jan 2, 2006 3:04 PM",
	"Jan 2, 2006 15:04",
	"Jan 2 2006 3:04 PM",
	"2/1/2006 3:04 PM",
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
	"2-1-2006 3:04 PM",
	"2-1-2006 15:04",
	"2/1/06 3:04 PM",
	"2/1/06 15:04",
}

var (
	ordinalRE  = regexp.MustCompile(`(?i)\b([0-9]{1,2})(?:st|nd|rd|th)\b`)
	meridiemRE = regexp.MustCompile(`(?i)\b(am|pm)\b`)
	monthRE    = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\b`)
)

// ParseDateTime parses the extracted date and time fragments as one instant
// in loc. The first layout that parses wins; (zero, false) means none did.
func ParseDateTime(date, timeStr string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	combined := canonicalize(date + " " + timeStr)
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, combined, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// canonicalize massages OCR casing into what time.Parse demands: "Jan" month
// tokens, upper-case meridiem, no ordinal suffixes, single spaces.
func canonicalize(s string) string {
	s = ordinalRE.ReplaceAllString(s, "$1")
	s = meridiemRE.ReplaceAllStringFunc(s, strings.ToUpper)
	s = monthRE.ReplaceAllStringFunc(s, func(m string) string {
		if len(m) > 3 {
			m = m[:3]
		}
		return strings.ToUpper(m[:1]) + strings.ToLower(m[1:])
	})
	return strings.Join(strings.Fields(s), " ")
}
