package documents

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/printshop-backend/pkg/db/models"
	"github.com/angelmondragon/printshop-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/printshop-backend/pkg/errors"
)

const (
	pageMargin = 15.0
	lineStep   = 6.0
	dateLayout = "January 2, 2006"
)

type itemBlock struct {
	details   []string
	quantity  int
	unitPrice decimal.Decimal
	lineTotal decimal.Decimal
}

// draw renders one item-type group onto an A4 page set. The creation date
// is pinned to the engine clock so identical inputs produce identical bytes.
func (e *Engine) draw(order models.Order, customer models.Customer, itemType enums.ItemType, blocks []itemBlock, total decimal.Decimal) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(e.now())
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pageMargin

	// Letterhead.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(contentWidth/2, 10, e.company, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentWidth/2, 10, itemType.Title(), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(contentWidth, 5, e.tagline, "", 1, "L", false, 0, "")

	pdf.Ln(4)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.6)
	y := pdf.GetY()
	pdf.Line(pageMargin, y, pageWidth-pageMargin, y)
	pdf.Ln(6)

	// Order block.
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentWidth, lineStep, "ORDER DETAILS", "", 1, "L", false, 0, "")

	e.keyValue(pdf, "Order Number:", "#"+OrderRef(order.ID))
	e.keyValue(pdf, "Order Date:", order.OrderDate.Format(dateLayout))
	e.keyValue(pdf, "Created:", order.CreatedAt.Format(dateLayout))
	pdf.Ln(4)

	// Customer block.
	pdf.SetFillColor(217, 217, 217)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentWidth, lineStep+1, "  CUSTOMER INFORMATION", "", 1, "L", true, 0, "")
	e.keyValue(pdf, "Name:", customer.Name)
	e.keyValue(pdf, "Phone:", customer.Phone)
	pdf.Ln(6)

	// Item blocks.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentWidth, lineStep, "PRODUCTION SPECIFICATIONS", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for idx, block := range blocks {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentWidth, lineStep,
			fmt.Sprintf("ITEM %d: %s", idx+1, strings.ToUpper(string(itemType))), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, line := range block.details {
			pdf.CellFormat(contentWidth, lineStep-1, "   - "+line, "", 1, "L", false, 0, "")
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentWidth, lineStep-1,
			fmt.Sprintf("   - Quantity: %d", block.quantity), "", 1, "L", false, 0, "")
		pdf.CellFormat(contentWidth, lineStep-1,
			fmt.Sprintf("   - Unit Price: $%s", block.unitPrice.StringFixed(2)), "", 1, "L", false, 0, "")
		pdf.CellFormat(contentWidth, lineStep-1,
			fmt.Sprintf("   - Line Total: $%s", block.lineTotal.StringFixed(2)), "", 1, "L", false, 0, "")
		pdf.Ln(4)
	}

	// Group total.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentWidth, 8,
		fmt.Sprintf("TOTAL %s VALUE: $%s", itemType.Title(), total.StringFixed(2)),
		"", 1, "L", false, 0, "")
	pdf.Ln(14)

	// Signature and footer.
	pdf.SetLineWidth(0.3)
	y = pdf.GetY()
	pdf.Line(pageMargin, y, pageMargin+60, y)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(60, 5, "Authorized Signature", "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.CellFormat(contentWidth, 5,
		fmt.Sprintf("Generated %s - Production Department - Internal Use Only",
			e.now().Format(dateLayout)),
		"", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeRender, err, "write pdf")
	}
	return buf.Bytes(), nil
}

func (e *Engine) keyValue(pdf *fpdf.Fpdf, key, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(40, lineStep, "  "+key, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, lineStep, value, "", 1, "L", false, 0, "")
}
