package notification

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/snazzy/storefront/kafka"
)

// RenderRefundNotice produces the PDF summary attached to a refund
// decision mail, approval or rejection alike.
func RenderRefundNotice(event kafka.RefundDecidedEvent) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	if event.Approved {
		pdf.Cell(0, 12, "Refund Approved")
	} else {
		pdf.Cell(0, 12, "Refund Request Declined")
	}
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Request #%d", event.RequestID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", event.Timestamp.UTC().Format(time.RFC1123)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", event.CustomerName))
	pdf.Ln(10)

	pdf.Cell(0, 6, fmt.Sprintf("Original payment: %s ($%.2f)", event.GatewayPaymentID, event.OriginalAmount))
	pdf.Ln(6)
	if event.Approved {
		pdf.Cell(0, 6, fmt.Sprintf("Refunded amount: $%.2f", event.RefundAmount))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Refund reference: %s", event.GatewayRefundID))
		pdf.Ln(6)
	}
	if event.Reason != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Your reason: %s", event.Reason))
		pdf.Ln(6)
	}
	if event.AdminResponse != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Our response: %s", event.AdminResponse))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render refund notice: %w", err)
	}
	return buf.Bytes(), nil
}
