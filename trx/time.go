package trx

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

var (
	// "+02:00" style offsets get their colon removed so a single layout set
	// covers both TRX offset spellings.
	offsetColonPattern = regexp.MustCompile(`[+-]\d{2}:\d{2}$`)

	// Sub-second precision beyond 6 digits (TRX writes 7) is truncated
	// before parsing.
	excessFractionPattern = regexp.MustCompile(`(\.\d{6})\d+`)

	durationPattern = regexp.MustCompile(`^(\d+):(\d{1,2}):(\d{1,2}(?:\.\d+)?)$`)
)

// timestampLayouts are tried in order against the normalized string.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999Z0700",
	"2006-01-02T15:04:05.999999",
}

// ParseTimestamp parses an ISO-8601-like TRX timestamp. The timezone offset
// may be written with or without a separating colon, and fractional seconds
// may carry more than 6 digits; both forms are normalized so that
// "2024-01-15T10:30:00.1234567+02:00" and "2024-01-15T10:30:00.123456+0200"
// yield the same instant.
func ParseTimestamp(value string) (time.Time, error) {
	s := value
	if offsetColonPattern.MatchString(s) {
		s = s[:len(s)-3] + s[len(s)-2:]
	}
	s = excessFractionPattern.ReplaceAllString(s, "$1")

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &MalformedTimestampError{Value: value}
}

// ParseRunDuration converts a TRX "H:MM:SS[.fraction]" duration string to a
// time.Duration. The empty string counts as zero, matching a result entry
// with no recorded duration.
func ParseRunDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}

	m := durationPattern.FindStringSubmatch(value)
	if m == nil {
		return 0, &MalformedDurationError{Value: value}
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, &MalformedDurationError{Value: value}
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, &MalformedDurationError{Value: value}
	}
	seconds, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return 0, &MalformedDurationError{Value: value}
	}

	total := float64(hours)*3600 + float64(minutes)*60 + seconds
	return time.Duration(math.Round(total * float64(time.Second))), nil
}
