package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Natemerkl/yegna-inventory-hub/internal/models"
)

// Expected sheet layout:
//
//	PRODUCT NAME | SKU | CATEGORY | QUANTITY | PRICE | COST PRICE
//
// A header row is detected and skipped. Rows missing a product name are
// reported as errors and skipped; the rest of the file still imports.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

func isHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToUpper(strings.TrimSpace(row[0]))
	return strings.Contains(first, "PRODUCT") || strings.Contains(first, "NAME")
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseRows(rows [][]string, profileID string) ([]models.InventoryItem, *ImportResult) {
	result := &ImportResult{}
	var items []models.InventoryItem

	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}

		name := cell(row, 0)
		if name == "" {
			// tolerate fully empty trailing rows silently
			if len(strings.TrimSpace(strings.Join(row, ""))) == 0 {
				continue
			}
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing product name", i+1))
			continue
		}

		quantity := 0
		if q := cell(row, 3); q != "" {
			n, err := strconv.Atoi(q)
			if err != nil || n < 0 {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid quantity %q", i+1, q))
				continue
			}
			quantity = n
		}

		price, err := parsePrice(cell(row, 4))
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid price %q", i+1, cell(row, 4)))
			continue
		}
		costPrice, err := parsePrice(cell(row, 5))
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid cost price %q", i+1, cell(row, 5)))
			continue
		}

		items = append(items, models.InventoryItem{
			ProductName: name,
			SKU:         cell(row, 1),
			Category:    cell(row, 2),
			Quantity:    quantity,
			Price:       price,
			CostPrice:   costPrice,
			ProfileID:   profileID,
		})
		result.Imported++
	}

	return items, result
}

func parsePrice(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	// tolerate comma decimal separators from localized spreadsheets
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	return v, nil
}
