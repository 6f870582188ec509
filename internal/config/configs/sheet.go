package configs

import "strings"

// Sheet backends.
const (
	SheetBackendXLSX   = "xlsx"
	SheetBackendGoogle = "google"
)

// Sheet selects the trafficking workbook: either a local .xlsx file or a
// Google Sheets spreadsheet.
type Sheet struct {
	Backend string `env:"BACKEND" envDefault:"xlsx"`
	// Path of the workbook for the xlsx backend.
	Path string `env:"PATH" envDefault:"trafficking.xlsx"`
	// SpreadsheetID for the google backend.
	SpreadsheetID string `env:"SPREADSHEET_ID"`
}

// BackendName normalises Backend. Unknown values are returned lower-cased
// so callers can report them.
func (c Sheet) BackendName() string {
	return strings.ToLower(strings.TrimSpace(c.Backend))
}
