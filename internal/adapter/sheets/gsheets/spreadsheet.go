// Package gsheets implements port.SheetStore on a Google Sheets
// spreadsheet.
package gsheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	adaptersheets "bulk-trafficker/internal/adapter/sheets"
	"bulk-trafficker/internal/core/domain"
	"bulk-trafficker/internal/core/port"
)

// processedGrey is #D3D3D3.
var processedGrey = &sheets.Color{Red: 211.0 / 255, Green: 211.0 / 255, Blue: 211.0 / 255}

// Spreadsheet is a trafficking workbook in Google Sheets. Every write is a
// single API call, so a status is stored as soon as WriteStatus returns.
type Spreadsheet struct {
	svc *sheets.Service
	id  string

	mu       sync.Mutex
	sheetIDs map[string]int64
}

var _ port.SheetStore = (*Spreadsheet)(nil)

// New returns a store for the spreadsheet with the given ID.
func New(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*Spreadsheet, error) {
	opts = append([]option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}, opts...)
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Spreadsheet{svc: svc, id: spreadsheetID}, nil
}

// ReadRows reads a whole sheet with unformatted values; dates come back as
// serial numbers.
func (s *Spreadsheet) ReadRows(ctx context.Context, sheet string) ([]domain.Row, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.id, quote(sheet)).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("SERIAL_NUMBER").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	rows := make([]domain.Row, len(resp.Values))
	for i, values := range resp.Values {
		row := make(domain.Row, len(values))
		for j, v := range values {
			row[j] = cellString(v)
		}
		rows[i] = row
	}
	return rows, nil
}

func (s *Spreadsheet) NamedValue(ctx context.Context, name string) (string, error) {
	meta, err := s.svc.Spreadsheets.Get(s.id).Fields("namedRanges(name)").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("read named ranges: %w", err)
	}
	found := ""
	for _, nr := range meta.NamedRanges {
		if strings.EqualFold(nr.Name, name) {
			found = nr.Name
			break
		}
	}
	if found == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrNamedNotFound, name)
	}

	resp, err := s.svc.Spreadsheets.Values.Get(s.id, found).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	if len(resp.Values) == 0 || len(resp.Values[0]) == 0 {
		return "", nil
	}
	return cellString(resp.Values[0][0]), nil
}

// WriteStatus stores the value, the text number format and the processed
// background in one request.
func (s *Spreadsheet) WriteStatus(ctx context.Context, sheet string, row, col int, value string) error {
	sheetID, err := s.sheetID(ctx, sheet)
	if err != nil {
		return err
	}
	req := &sheets.Request{RepeatCell: &sheets.RepeatCellRequest{
		Range: cellRange(sheetID, row, col),
		Cell: &sheets.CellData{
			UserEnteredValue: &sheets.ExtendedValue{StringValue: &value},
			UserEnteredFormat: &sheets.CellFormat{
				BackgroundColor: processedGrey,
				NumberFormat:    &sheets.NumberFormat{Type: "TEXT"},
			},
		},
		Fields: "userEnteredValue,userEnteredFormat.backgroundColor,userEnteredFormat.numberFormat",
	}}
	return s.batchUpdate(ctx, req)
}

// WriteTable clears the table's columns and writes header and rows with
// RAW input so IDs stay text.
func (s *Spreadsheet) WriteTable(ctx context.Context, sheet string, t domain.Table) error {
	if _, err := s.sheetID(ctx, sheet); err != nil {
		if err = s.addSheet(ctx, sheet); err != nil {
			return err
		}
	}

	first := adaptersheets.ColumnName(t.Column)
	last := adaptersheets.ColumnName(t.Column + len(t.Header) - 1)
	columns := fmt.Sprintf("%s!%s:%s", quote(sheet), first, last)
	if _, err := s.svc.Spreadsheets.Values.Clear(s.id, columns, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear %s: %w", columns, err)
	}

	values := make([][]any, 0, len(t.Rows)+1)
	values = append(values, toValues(t.Header))
	for _, r := range t.Rows {
		values = append(values, toValues(r))
	}
	target := fmt.Sprintf("%s!%s1", quote(sheet), first)
	_, err := s.svc.Spreadsheets.Values.Update(s.id, target, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

// Protect adds a warning-only protected range over the sheet unless one is
// already there.
func (s *Spreadsheet) Protect(ctx context.Context, sheet string) error {
	meta, err := s.svc.Spreadsheets.Get(s.id).
		Fields("sheets(properties(sheetId,title),protectedRanges(warningOnly))").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("read sheet properties: %w", err)
	}
	for _, sh := range meta.Sheets {
		if sh.Properties == nil || sh.Properties.Title != sheet {
			continue
		}
		for _, pr := range sh.ProtectedRanges {
			if pr.WarningOnly {
				return nil
			}
		}
		return s.batchUpdate(ctx, &sheets.Request{AddProtectedRange: &sheets.AddProtectedRangeRequest{
			ProtectedRange: &sheets.ProtectedRange{
				Range:       &sheets.GridRange{SheetId: sh.Properties.SheetId, ForceSendFields: []string{"SheetId"}},
				Description: "Generated listing; refreshed by the trafficker.",
				WarningOnly: true,
			},
		}})
	}
	return fmt.Errorf("sheet %s not found", sheet)
}

func (s *Spreadsheet) sheetID(ctx context.Context, sheet string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.sheetIDs[sheet]; ok {
		return id, nil
	}

	meta, err := s.svc.Spreadsheets.Get(s.id).Fields("sheets(properties(sheetId,title))").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("read sheet properties: %w", err)
	}
	s.sheetIDs = make(map[string]int64, len(meta.Sheets))
	for _, sh := range meta.Sheets {
		if sh.Properties != nil {
			s.sheetIDs[sh.Properties.Title] = sh.Properties.SheetId
		}
	}
	id, ok := s.sheetIDs[sheet]
	if !ok {
		return 0, fmt.Errorf("sheet %s not found", sheet)
	}
	return id, nil
}

func (s *Spreadsheet) addSheet(ctx context.Context, sheet string) error {
	err := s.batchUpdate(ctx, &sheets.Request{AddSheet: &sheets.AddSheetRequest{
		Properties: &sheets.SheetProperties{Title: sheet},
	}})
	s.mu.Lock()
	s.sheetIDs = nil
	s.mu.Unlock()
	return err
}

func (s *Spreadsheet) batchUpdate(ctx context.Context, reqs ...*sheets.Request) error {
	_, err := s.svc.Spreadsheets.BatchUpdate(s.id, &sheets.BatchUpdateSpreadsheetRequest{Requests: reqs}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("spreadsheets.batchUpdate: %w", err)
	}
	return nil
}

// cellRange is the single cell at 1-based row and col. Zero indices must be
// sent explicitly: an omitted start index means unbounded.
func cellRange(sheetID int64, row, col int) *sheets.GridRange {
	return &sheets.GridRange{
		SheetId:          sheetID,
		StartRowIndex:    int64(row - 1),
		EndRowIndex:      int64(row),
		StartColumnIndex: int64(col - 1),
		EndColumnIndex:   int64(col),
		ForceSendFields:  []string{"SheetId", "StartRowIndex", "StartColumnIndex"},
	}
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprint(x)
	}
}

func toValues(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

// quote wraps a sheet title for A1 notation.
func quote(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}
