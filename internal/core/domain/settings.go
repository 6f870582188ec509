package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Settings is the operator context every remote call needs. It is resolved
// once per operation and passed explicitly to builders and the driver.
type Settings struct {
	ProfileID int64
	// FolderID is the file store folder holding creative assets. Only
	// required for the creative-files listing.
	FolderID string
	// Location is the zone spreadsheet dates and times are entered in.
	Location *time.Location
}

// ParseTimeZone turns the TimeZone setting into a location. Accepted forms
// are "GMT", "UTC", fixed offsets such as "GMT+7", "GMT-3:30" or "UTC+05:45",
// and IANA names such as "Asia/Jakarta". An empty value yields UTC.
func ParseTimeZone(s string) (*time.Location, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.UTC, nil
	}
	upper := strings.ToUpper(s)
	for _, prefix := range []string{"GMT", "UTC"} {
		if !strings.HasPrefix(upper, prefix) {
			continue
		}
		rest := upper[len(prefix):]
		if rest == "" {
			return time.UTC, nil
		}
		offset, err := parseOffset(rest)
		if err != nil {
			return nil, &CellError{Field: NameTimeZone, Value: s, Err: err}
		}
		return time.FixedZone(upper, offset), nil
	}
	loc, err := time.LoadLocation(s)
	if err != nil {
		return nil, &CellError{Field: NameTimeZone, Value: s, Err: err}
	}
	return loc, nil
}

// parseOffset parses "+7", "-3:30" or "+0545" into seconds east of UTC.
func parseOffset(s string) (int, error) {
	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, fmt.Errorf("offset must start with + or -")
	}
	s = s[1:]
	var hours, minutes int
	var err error
	switch {
	case strings.Contains(s, ":"):
		h, m, _ := strings.Cut(s, ":")
		if hours, err = strconv.Atoi(h); err != nil {
			return 0, err
		}
		if minutes, err = strconv.Atoi(m); err != nil {
			return 0, err
		}
	case len(s) == 4:
		if hours, err = strconv.Atoi(s[:2]); err != nil {
			return 0, err
		}
		if minutes, err = strconv.Atoi(s[2:]); err != nil {
			return 0, err
		}
	default:
		if hours, err = strconv.Atoi(s); err != nil {
			return 0, err
		}
	}
	if hours > 14 || minutes > 59 {
		return 0, fmt.Errorf("offset out of range")
	}
	return sign * (hours*3600 + minutes*60), nil
}
