package notification

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/snazzy/storefront/kafka"
)

// RenderInvoice produces the receipt PDF for a created order. Returns the
// document bytes and the generated invoice number.
func RenderInvoice(event kafka.OrderCreatedEvent) ([]byte, string, error) {
	invoiceNo := fmt.Sprintf("INV-%s", uuid.New().String()[:8])

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "Order Receipt")
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Invoice: %s", invoiceNo))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Order #%d", event.OrderID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", event.Timestamp.UTC().Format(time.RFC1123)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Billed to")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, event.CustomerName)
	pdf.Ln(6)
	pdf.Cell(0, 6, event.CustomerAddress)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(110, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	item := fmt.Sprintf("%s (%s)", event.ProductName, event.Size)
	pdf.CellFormat(110, 8, item, "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%d", event.Quantity), "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("$%.2f", event.BasePrice), "1", 1, "R", false, 0, "")

	if event.PromotionDisc > 0 {
		pdf.CellFormat(140, 8, fmt.Sprintf("Promotion: %s", event.PromotionTitle), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("-$%.2f", event.PromotionDisc), "1", 1, "R", false, 0, "")
	}
	if event.LoyaltyDiscount > 0 {
		pdf.CellFormat(140, 8, "Loyalty points redeemed", "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("-$%.2f", event.LoyaltyDiscount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(140, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("$%.2f", event.TotalPrice), "1", 1, "R", false, 0, "")

	if event.PaymentID != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 9)
		pdf.Cell(0, 6, fmt.Sprintf("Payment reference: %s", event.PaymentID))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render invoice: %w", err)
	}
	return buf.Bytes(), invoiceNo, nil
}
