package globals

import (
	"strings"
	"time"
)

var datePatterns = []string{
	"20060102150405Z0700",
	"20060102150405Z07",
	"20060102150405",
	"200601021504",
	"2006010215",
	"20060102",
	"200601",
	"2006",
}

// ConvertDate parses a date string from PDF metadata ("D:YYYYMMDDHHmmSS"
// with an optional timezone suffix) and returns it as a time.Time.
// The leading "D:" marker may be omitted, and trailing fields may be
// absent, as the PDF spec allows.
func ConvertDate(pdfdate string) (time.Time, error) {
	pdfdate, _ = strings.CutPrefix(pdfdate, "D:")
	// timezone minutes are written as HH'mm'; Go layouts cannot
	// express the primes
	pdfdate = strings.ReplaceAll(pdfdate, "'", "")
	var result time.Time
	var err error
	for _, pattern := range datePatterns {
		result, err = time.Parse(pattern, pdfdate)
		if err == nil {
			return result, nil
		}
	}
	return result, err
}

// FormatDate renders t in the PDF date format, including the "D:"
// marker and the timezone suffix with its primed minutes.
func FormatDate(t time.Time) string {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	return s[:k] + "'" + s[k:] + "'"
}
