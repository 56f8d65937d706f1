package inventory

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseRows(t *testing.T) {
	rows := [][]string{
		{"PRODUCT NAME", "SKU", "CATEGORY", "QUANTITY", "PRICE", "COST PRICE"},
		{"Leather Wallet", "LW-01", "Accessories", "12", "39.99", "18.50"},
		{"Ceramic Mug", "", "Kitchen", "", "8,50", ""},
		{"", "NO-NAME", "Misc", "3", "1.00", "0.50"},
		{"Bad Quantity", "BQ-01", "Misc", "lots", "1.00", "0.50"},
		{"", "", "", "", "", ""},
	}

	items, result := parseRows(rows, "profile-1")

	if result.Imported != 2 {
		t.Errorf("expected 2 imported, got %d", result.Imported)
	}
	if result.Skipped != 2 {
		t.Errorf("expected 2 skipped, got %d", result.Skipped)
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(result.Errors), result.Errors)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	wallet := items[0]
	if wallet.ProductName != "Leather Wallet" || wallet.SKU != "LW-01" || wallet.Quantity != 12 {
		t.Errorf("unexpected first item: %+v", wallet)
	}
	if wallet.Price != 39.99 || wallet.CostPrice != 18.50 {
		t.Errorf("unexpected first item prices: %+v", wallet)
	}
	if wallet.ProfileID != "profile-1" {
		t.Errorf("expected profile-1 ownership, got %q", wallet.ProfileID)
	}

	mug := items[1]
	if mug.Quantity != 0 {
		t.Errorf("expected default quantity 0, got %d", mug.Quantity)
	}
	if mug.Price != 8.50 {
		t.Errorf("expected comma-decimal price 8.50, got %v", mug.Price)
	}
}

func TestParseRows_NoHeader(t *testing.T) {
	rows := [][]string{
		{"Desk Lamp", "DL-01", "Office", "5", "22.00", "11.00"},
	}

	items, result := parseRows(rows, "profile-1")
	if result.Imported != 1 || len(items) != 1 {
		t.Fatalf("expected the single data row to import, got %+v", result)
	}
}

// End to end through excelize: build a workbook in memory and read it back
// the way the import handler does.
func TestParseRows_FromWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	data := [][]interface{}{
		{"PRODUCT NAME", "SKU", "CATEGORY", "QUANTITY", "PRICE", "COST PRICE"},
		{"Notebook", "NB-01", "Office", 40, 3.25, 1.10},
	}
	for i, row := range data {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	reopened, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer reopened.Close()

	rows, err := reopened.GetRows(reopened.GetSheetList()[0])
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}

	items, result := parseRows(rows, "profile-1")
	if result.Imported != 1 || len(items) != 1 {
		t.Fatalf("expected 1 item, got %+v", result)
	}
	if items[0].ProductName != "Notebook" || items[0].Quantity != 40 {
		t.Errorf("unexpected item: %+v", items[0])
	}
}
