// Package xlsx implements port.SheetStore on a local .xlsx workbook.
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"bulk-trafficker/internal/adapter/sheets"
	"bulk-trafficker/internal/core/domain"
	"bulk-trafficker/internal/core/port"
)

// numFmtText is the built-in "@" number format.
const numFmtText = 49

// processedFill is the background of status cells that hold a result.
const processedFill = "D3D3D3"

// Workbook is a trafficking workbook on disk. Every operation re-reads the
// file first, so edits the operator saved in the meantime are seen and never
// overwritten, and every write saves before returning.
type Workbook struct {
	path string

	mu     sync.Mutex
	f      *excelize.File
	style  int
	closed bool
}

var _ port.SheetStore = (*Workbook)(nil)

// Open checks that path is a readable workbook.
func Open(path string) (*Workbook, error) {
	w := &Workbook{path: path}
	if err := w.reload(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Workbook) reload() error {
	if w.closed {
		return errors.New("workbook is closed")
	}
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return fmt.Errorf("open workbook %s: %w", w.path, err)
	}
	if w.f != nil {
		_ = w.f.Close()
	}
	w.f, w.style = f, 0
	return nil
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	if w.f == nil {
		return nil
	}
	err := w.f.Close()
	w.f = nil
	return err
}

func (w *Workbook) ReadRows(_ context.Context, sheet string) ([]domain.Row, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.reload(); err != nil {
		return nil, err
	}
	rows, err := w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	out := make([]domain.Row, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out, nil
}

func (w *Workbook) NamedValue(_ context.Context, name string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.reload(); err != nil {
		return "", err
	}

	var ref string
	for _, dn := range w.f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, name) {
			continue
		}
		ref = dn.RefersTo
		if dn.Scope == "" || dn.Scope == "Workbook" {
			break
		}
	}
	if ref == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrNamedNotFound, name)
	}
	sheet, cell, err := sheets.ParseRef(ref)
	if err != nil {
		return "", fmt.Errorf("named cell %s: %w", name, err)
	}
	return w.f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
}

func (w *Workbook) WriteStatus(_ context.Context, sheet string, row, col int, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.reload(); err != nil {
		return err
	}

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	style, err := w.statusStyle()
	if err != nil {
		return err
	}
	if err = w.f.SetCellStyle(sheet, cell, cell, style); err != nil {
		return err
	}
	if err = w.f.SetCellStr(sheet, cell, value); err != nil {
		return err
	}
	return w.f.Save()
}

func (w *Workbook) statusStyle() (int, error) {
	if w.style != 0 {
		return w.style, nil
	}
	id, err := w.f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{processedFill}},
		NumFmt: numFmtText,
	})
	if err != nil {
		return 0, fmt.Errorf("create status style: %w", err)
	}
	w.style = id
	return id, nil
}

// WriteTable clears the columns the table spans, then writes header and
// rows as text. The sheet is created when missing.
func (w *Workbook) WriteTable(_ context.Context, sheet string, t domain.Table) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.reload(); err != nil {
		return err
	}

	idx, err := w.f.GetSheetIndex(sheet)
	if err != nil {
		return err
	}
	if idx < 0 {
		if _, err = w.f.NewSheet(sheet); err != nil {
			return err
		}
	}

	width := len(t.Header)
	existing, err := w.f.GetRows(sheet)
	if err != nil {
		return err
	}
	for r := range existing {
		for c := 0; c < width; c++ {
			if err = w.setText(sheet, t.Column+c, r+1, ""); err != nil {
				return err
			}
		}
	}

	for c, v := range t.Header {
		if err = w.setText(sheet, t.Column+c, 1, v); err != nil {
			return err
		}
	}
	for r, row := range t.Rows {
		for c, v := range row {
			if err = w.setText(sheet, t.Column+c, r+2, v); err != nil {
				return err
			}
		}
	}
	return w.f.Save()
}

func (w *Workbook) setText(sheet string, col, row int, v string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return w.f.SetCellStr(sheet, cell, v)
}

// Protect locks the sheet. Workbooks carry no warning-only mode, so the
// sheet is protected without a password and can be unlocked from Excel.
func (w *Workbook) Protect(_ context.Context, sheet string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.reload(); err != nil {
		return err
	}
	err := w.f.ProtectSheet(sheet, &excelize.SheetProtectionOptions{
		SelectLockedCells:   true,
		SelectUnlockedCells: true,
	})
	if err != nil {
		return fmt.Errorf("protect %s: %w", sheet, err)
	}
	return w.f.Save()
}
