// Package builder maps parsed sheet rows onto trafficking resources. The
// functions here are pure: they do no I/O and report bad cells as
// *domain.CellError.
package builder

import (
	"errors"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"bulk-trafficker/internal/core/domain"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05.000Z"
)

var cellLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
}

// FormatDate renders a date cell as yyyy-MM-dd in loc.
func FormatDate(field, cell string, loc *time.Location) (string, error) {
	t, err := parseCellTime(field, cell, loc)
	if err != nil {
		return "", err
	}
	return t.Format(dateLayout), nil
}

// FormatDateTime renders a date-time cell, read as wall time in loc, as a
// UTC timestamp with millisecond precision.
func FormatDateTime(field, cell string, loc *time.Location) (string, error) {
	t, err := parseCellTime(field, cell, loc)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(dateTimeLayout), nil
}

// parseCellTime accepts a spreadsheet serial number or a textual date.
// Serial numbers and zone-less text are wall time in loc.
func parseCellTime(field, cell string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if cell == "" {
		return time.Time{}, &domain.CellError{Field: field, Value: cell, Err: errors.New("value required")}
	}
	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, &domain.CellError{Field: field, Value: cell, Err: err}
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc), nil
	}
	if t, err := time.Parse(time.RFC3339, cell); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range cellLayouts {
		if t, err := time.ParseInLocation(layout, cell, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &domain.CellError{Field: field, Value: cell, Err: errors.New("unrecognised date")}
}
