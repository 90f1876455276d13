package pricing

import (
	"bytes"
	"testing"

	"cookly/models"

	"github.com/xuri/excelize/v2"
)

func TestShoppingListPDF(t *testing.T) {
	recipe := &models.Recipe{ID: "7", Title: "Crêpes · Brunch", Ingredients: []string{"Eggs", "Milk", "Flour"}}
	est := Default().Estimate(recipe, nil)[0]

	body, err := ShoppingListPDF(recipe, est)
	if err != nil {
		t.Fatalf("ShoppingListPDF: %v", err)
	}
	if !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Errorf("expected a PDF header, got %q", body[:8])
	}
}

func TestDeliveryQR(t *testing.T) {
	png, err := DeliveryQR("https://www.ubereats.com/ca?store=Maxi", 0)
	if err != nil {
		t.Fatalf("DeliveryQR: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("expected PNG magic bytes")
	}
}

func TestComparisonWorkbook(t *testing.T) {
	recipe := eggsAndMilk()
	estimates := Default().Estimate(recipe, nil)

	body, err := ComparisonWorkbook(recipe, estimates)
	if err != nil {
		t.Fatalf("ComparisonWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(comparisonSheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected header, 2 ingredients, total and cheapest rows; got %d rows", len(rows))
	}
	if rows[0][1] != "Maxi" || rows[1][0] != "Eggs" || rows[3][0] != "Total" {
		t.Errorf("unexpected layout %v", rows)
	}
	if rows[3][1] != "8.78" {
		t.Errorf("expected Maxi total 8.78, got %s", rows[3][1])
	}
	if rows[4][1] != "yes" {
		t.Errorf("expected Maxi flagged cheapest, got %v", rows[4])
	}
}
