package pricing

import (
	"bytes"
	"fmt"

	"cookly/models"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"github.com/xuri/excelize/v2"
)

const comparisonSheet = "Comparison"

// DeliveryQR renders link as a PNG QR code.
func DeliveryQR(link string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

// ShoppingListPDF renders one store's breakdown as a printable list, with a
// QR code of the store's Uber Eats link in the corner.
func ShoppingListPDF(recipe *models.Recipe, est models.StorePriceEstimate) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("Shopping list: "+recipe.Title))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, tr("Store: "+est.Store.Name))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(70, 8, "Ingredient", "B", 0, "", false, 0, "")
	pdf.CellFormat(70, 8, "Product", "B", 0, "", false, 0, "")
	pdf.CellFormat(25, 8, "Size", "B", 0, "", false, 0, "")
	pdf.CellFormat(20, 8, "Price", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range est.Items {
		pdf.CellFormat(70, 7, tr(truncate(item.IngredientLabel, 38)), "", 0, "", false, 0, "")
		pdf.CellFormat(70, 7, tr(truncate(item.ProductName, 38)), "", 0, "", false, 0, "")
		pdf.CellFormat(25, 7, tr(item.UnitSize), "", 0, "", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("$%.2f", item.UnitPrice), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(165, 9, "Estimated total", "T", 0, "", false, 0, "")
	pdf.CellFormat(20, 9, fmt.Sprintf("$%.2f", est.TotalPrice), "T", 1, "R", false, 0, "")

	qrPNG, err := DeliveryQR(DeliveryLinksFor(est).UberEats, 256)
	if err != nil {
		return nil, err
	}
	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("delivery-qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("delivery-qr", 165, 10, 30, 30, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// ComparisonWorkbook lays out ingredients as rows and stores as columns,
// followed by total and cheapest rows.
func ComparisonWorkbook(recipe *models.Recipe, estimates []models.StorePriceEstimate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", comparisonSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(comparisonSheet)
	if err != nil {
		return nil, fmt.Errorf("stream writer: %w", err)
	}

	header := []interface{}{recipe.Title}
	for _, est := range estimates {
		header = append(header, est.Store.Name)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, err
	}

	// every estimate prices the same ingredients in the same order
	var labels []string
	if len(estimates) > 0 {
		for _, item := range estimates[0].Items {
			labels = append(labels, item.IngredientLabel)
		}
	}

	row := 2
	for i, label := range labels {
		values := []interface{}{label}
		for _, est := range estimates {
			values = append(values, est.Items[i].UnitPrice)
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := sw.SetRow(cell, values); err != nil {
			return nil, err
		}
		row++
	}

	totals := []interface{}{"Total"}
	cheapest := []interface{}{"Cheapest"}
	for _, est := range estimates {
		totals = append(totals, est.TotalPrice)
		if est.IsCheapest {
			cheapest = append(cheapest, "yes")
		} else {
			cheapest = append(cheapest, "")
		}
	}
	for _, values := range [][]interface{}{totals, cheapest} {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := sw.SetRow(cell, values); err != nil {
			return nil, err
		}
		row++
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("flush sheet: %w", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
