// internal/driver/novitus/ops_invoice.go
package novitus

import "context"

// BeginInvoice opens a VAT invoice ($h, invoice form). The firmware
// ignores the client and seller names on some models.
func (d *Driver) BeginInvoice(ctx context.Context, data BeginInvoiceData) error {
	cmd := Command{
		IntParams: []int{
			data.Items,
			len(data.ClientLines),
			1, // invoice form selector
			boolInt(data.PrintCopy),
			boolInt(data.TopMargin),
			0, // parameter ignored
			data.AdditionalCopies,
			0, // parameter ignored
			0, // parameter ignored
			boolInt(data.Signature),
		},
		Opcode:   "$h",
		WithCtrl: true,
	}

	cmd.TextParams = append(cmd.TextParams, data.InvoiceNr+"\r")

	for _, line := range data.ClientLines {
		cmd.TextParams = append(cmd.TextParams, line+"\r")
	}

	cmd.TextParams = append(cmd.TextParams,
		data.NIP+"\r",
		data.Timeout+"\r",
		data.PaymentForm+"\r",
		data.Client+"\r",
		data.Seller+"\r",
		data.SystemNr+"\r",
	)

	return d.execute(ctx, cmd)
}

// FinishInvoice closes the open invoice ($e, invoice form). The operation
// may ask for keyboard confirmation on the device.
func (d *Driver) FinishInvoice(ctx context.Context, id Id, data FinishInvoiceData) error {
	cmd := Command{
		IntParams: []int{
			1, // confirm
			0, // parameter ignored
			data.ExtraLines.Count(),
			0, // parameter ignored
			0, // parameter ignored
			1, // fixed
			boolInt(data.PayedFlag),
			int(data.Client),
			int(data.Seller),
		},
		Opcode:   "$e",
		WithCtrl: true,
	}

	if id.IsEmpty() {
		cmd.TextParams = append(cmd.TextParams, "000\r")
	} else {
		cmd.TextParams = append(cmd.TextParams, id.PrinterID+id.OperatorID+"\r")
	}

	for _, line := range data.ExtraLines.lines() {
		cmd.TextParams = append(cmd.TextParams, line+"\r")
	}

	cmd.TextParams = append(cmd.TextParams,
		data.Payed+"\r",
		data.ClientName+"\r",
		data.SellerName+"\r",
		fromFloat(data.CashIn)+"/",
		fromFloat(data.Total)+"/",
		fromFloat(data.DiscountValue)+"/",
	)

	return d.execute(ctx, cmd)
}

// SetInvoiceOption programs the invoice layout options (@c).
func (d *Driver) SetInvoiceOption(ctx context.Context, options InvoiceOptions) error {
	return d.execute(ctx, Command{
		IntParams: []int{
			options.AdditionalCopies,
			int(options.Client),
			int(options.Seller),
			boolInt(options.PayedFlag),
			options.Year,
			options.Month,
			options.Day,
			options.SummaryOption,
			options.InvoiceOptions2,
			int(options.ClientIDType),
			options.InvoiceOptions3,
		},
		Opcode: "@c",
		TextParams: []string{
			options.Timeout + "\r",
			options.PaymentForm + "\r",
			options.ClientName + "\r",
			options.SellerName + "\r",
			options.SystemNr + "\r",
		},
		WithCtrl: true,
	})
}

// ExtraLinesInvoice prints one extra invoice footer line ($z 20). Up to 20
// lines fit on one document; must be sent after the $y confirmation.
func (d *Driver) ExtraLinesInvoice(ctx context.Context, footerType ExtraLineType, text string) error {
	return d.execute(ctx, Command{
		IntParams:  []int{20, int(footerType)},
		Opcode:     "$z",
		TextParams: []string{text + "\r"},
		WithCtrl:   true,
	})
}
