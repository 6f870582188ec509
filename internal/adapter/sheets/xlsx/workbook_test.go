package xlsx

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"bulk-trafficker/internal/core/domain"
)

func newTestWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", domain.SheetSetup))
	_, err := f.NewSheet(domain.SheetCampaigns)
	require.NoError(t, err)

	require.NoError(t, f.SetCellStr(domain.SheetSetup, "B2", "1001"))
	require.NoError(t, f.SetCellStr(domain.SheetSetup, "B3", "GMT+7"))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: domain.NameProfileID, RefersTo: "Setup!$B$2"}))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: domain.NameTimeZone, RefersTo: "Setup!$B$3"}))

	require.NoError(t, f.SetSheetRow(domain.SheetCampaigns, "A1", &[]any{"advertiserId", "name", "landingPageId", "start", "end", "campaignId"}))
	require.NoError(t, f.SetSheetRow(domain.SheetCampaigns, "A2", &[]any{42, "Spring", 7, 45352, 45382}))

	path := filepath.Join(t.TempDir(), "trafficking.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadRowsAndNamedValues(t *testing.T) {
	wb, err := Open(newTestWorkbook(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = wb.Close() })
	ctx := context.Background()

	rows, err := wb.ReadRows(ctx, domain.SheetCampaigns)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "42", rows[1].Cell(1))
	assert.Equal(t, "45352", rows[1].Cell(4))
	assert.Empty(t, rows[1].Cell(6))

	v, err := wb.NamedValue(ctx, domain.NameTimeZone)
	require.NoError(t, err)
	assert.Equal(t, "GMT+7", v)

	_, err = wb.NamedValue(ctx, domain.NameCreativeFolder)
	assert.ErrorIs(t, err, domain.ErrNamedNotFound)
}

func TestWriteStatusPersists(t *testing.T) {
	path := newTestWorkbook(t)
	wb, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = wb.Close() })

	require.NoError(t, wb.WriteStatus(context.Background(), domain.SheetCampaigns, 2, 6, "12345678901"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(domain.SheetCampaigns, "F2")
	require.NoError(t, err)
	assert.Equal(t, "12345678901", v)

	styleID, err := f.GetCellStyle(domain.SheetCampaigns, "F2")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	assert.Equal(t, numFmtText, style.NumFmt)

	rows, err := wb.ReadRows(context.Background(), domain.SheetCampaigns)
	require.NoError(t, err)
	assert.False(t, domain.Eligible(rows[1], domain.SheetLayout{KeyColumn: 1, StatusColumn: 6}))
}

func TestWriteTableCreatesSheetAndClearsColumns(t *testing.T) {
	path := newTestWorkbook(t)
	wb, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = wb.Close() })
	ctx := context.Background()

	first := domain.Table{Column: 4, Header: []string{"Advertiser Name", "Advertiser ID"}, Rows: [][]string{
		{"One", "1"}, {"Two", "2"}, {"Three", "3"},
	}}
	require.NoError(t, wb.WriteTable(ctx, domain.SheetLists, first))

	second := domain.Table{Column: 4, Header: []string{"Advertiser Name", "Advertiser ID"}, Rows: [][]string{
		{"Nine", "9"},
	}}
	require.NoError(t, wb.WriteTable(ctx, domain.SheetLists, second))
	require.NoError(t, wb.Protect(ctx, domain.SheetLists))

	rows, err := wb.ReadRows(ctx, domain.SheetLists)
	require.NoError(t, err)
	assert.Equal(t, "Advertiser Name", rows[0].Cell(4))
	assert.Equal(t, "Nine", rows[1].Cell(4))
	assert.Equal(t, "9", rows[1].Cell(5))
	for _, r := range rows[2:] {
		assert.Empty(t, r.Cell(4))
	}
}

// editOnDisk changes the workbook behind the store's back, the way an
// operator saving from Excel would.
func editOnDisk(t *testing.T, path string, edit func(f *excelize.File)) {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	edit(f)
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())
}

func TestOperationsSeeEditsSavedAfterOpen(t *testing.T) {
	path := newTestWorkbook(t)
	wb, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = wb.Close() })
	ctx := context.Background()

	editOnDisk(t, path, func(f *excelize.File) {
		require.NoError(t, f.SetCellStr(domain.SheetSetup, "B3", "GMT-5"))
		require.NoError(t, f.SetSheetRow(domain.SheetCampaigns, "A3", &[]any{43, "Summer", 8, 45400, 45430}))
	})

	v, err := wb.NamedValue(ctx, domain.NameTimeZone)
	require.NoError(t, err)
	assert.Equal(t, "GMT-5", v)

	table := domain.Table{Column: 1, Header: []string{"Site Name", "Directory Site ID"}, Rows: [][]string{{"News", "5"}}}
	require.NoError(t, wb.WriteTable(ctx, domain.SheetLists, table))

	editOnDisk(t, path, func(f *excelize.File) {
		require.NoError(t, f.SetSheetRow(domain.SheetCampaigns, "A4", &[]any{44, "Autumn", 9, 45500, 45530}))
	})
	require.NoError(t, wb.WriteStatus(ctx, domain.SheetCampaigns, 2, 6, "777"))
	require.NoError(t, wb.Protect(ctx, domain.SheetLists))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	tz, err := f.GetCellValue(domain.SheetSetup, "B3")
	require.NoError(t, err)
	assert.Equal(t, "GMT-5", tz)

	rows, err := f.GetRows(domain.SheetCampaigns)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Summer", rows[2][1])
	assert.Equal(t, "Autumn", rows[3][1])
	assert.Equal(t, "777", rows[1][5])

	name, err := f.GetCellValue(domain.SheetLists, "A2")
	require.NoError(t, err)
	assert.Equal(t, "News", name)
}

func TestClosedWorkbookRejectsOperations(t *testing.T) {
	wb, err := Open(newTestWorkbook(t))
	require.NoError(t, err)
	require.NoError(t, wb.Close())

	_, err = wb.NamedValue(context.Background(), domain.NameProfileID)
	require.Error(t, err)
	require.Error(t, wb.WriteStatus(context.Background(), domain.SheetCampaigns, 2, 6, "1"))
}
