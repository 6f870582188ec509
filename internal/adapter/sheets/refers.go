// Package sheets holds helpers shared by the workbook adapters.
package sheets

import (
	"errors"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseRef splits a named-range reference such as "Setup!$B$2",
// "='My Sheet'!$A$1:$A$3" or "Setup!B2" into its sheet and first cell.
// Absolute markers are dropped from the cell.
func ParseRef(ref string) (sheet, cell string, err error) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")
	i := strings.LastIndex(ref, "!")
	if i <= 0 || i == len(ref)-1 {
		return "", "", errors.New("reference has no sheet: " + ref)
	}
	sheet = ref[:i]
	if len(sheet) >= 2 && sheet[0] == '\'' && sheet[len(sheet)-1] == '\'' {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	cell, _, _ = strings.Cut(ref[i+1:], ":")
	cell = strings.ReplaceAll(cell, "$", "")
	return sheet, cell, nil
}

// ColumnName returns the A1 letters of a 1-based column, or "" when col is
// out of range.
func ColumnName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return ""
	}
	return name
}
