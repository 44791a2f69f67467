// internal/driver/novitus/ops_nonfiscal.go
package novitus

import "context"

// ContainerReturn prints the standalone container return confirmation (#w).
// text carries the name and value of the returned container.
func (d *Driver) ContainerReturn(ctx context.Context, text string) error {
	return d.execute(ctx, Command{
		IntParams:  []int{0}, // parameter ignored
		Opcode:     "#w",
		TextParams: []string{text + "\r"},
		WithCtrl:   true,
	})
}

// saleReceiptCommand builds the shared frame of #g and #h. Both carry the
// full identifier block even after a login.
func saleReceiptCommand(opcode string, id Id, data SaleReceiptData) Command {
	return Command{
		IntParams: []int{boolInt(data.PrintID), int(data.PrintOption)},
		Opcode:    opcode,
		TextParams: []string{
			id.PrinterID + "\r",
			id.OperatorID + "\r",
			data.Receipt + "\r",
			data.ClientName + "\r",
			data.Terminal + "\r",
			data.CardName + "\r",
			data.CardNr + "\r",
			fromInt(data.Month) + "\r",
			fromInt(data.Year) + "\r",
			data.AuthCode + "\r",
			fromFloat(data.Amount) + "/",
		},
		WithCtrl: true,
	}
}

// SaleReceipt prints a credit card sale confirmation (#g).
func (d *Driver) SaleReceipt(ctx context.Context, id Id, data SaleReceiptData) error {
	return d.execute(ctx, saleReceiptCommand("#g", id, data))
}

// ReturnOfArticle prints a credit transaction for a returned article (#h).
func (d *Driver) ReturnOfArticle(ctx context.Context, id Id, data SaleReceiptData) error {
	return d.execute(ctx, saleReceiptCommand("#h", id, data))
}

// BeginNonFiscal starts a non-fiscal printout ($w 0). The available
// printout and header numbers come from the protocol documentation.
func (d *Driver) BeginNonFiscal(ctx context.Context, printNr, headerNr int) error {
	return d.execute(ctx, Command{
		IntParams: []int{0, printNr, headerNr},
		Opcode:    "$w",
		WithCtrl:  true,
	})
}

// PrintNonFiscal prints one line of the running non-fiscal printout ($w).
func (d *Driver) PrintNonFiscal(ctx context.Context, line NonFiscalLine) error {
	cmd := Command{
		IntParams: []int{
			line.PrintNr,
			line.LineNr,
			boolInt(line.Bold),
			boolInt(line.Inverse),
			line.Font,
			boolInt(line.Center),
			int(line.Attrs),
		},
		Opcode:   "$w",
		WithCtrl: true,
	}

	for _, arg := range line.Lines {
		cmd.TextParams = append(cmd.TextParams, arg+"\r")
	}

	return d.execute(ctx, cmd)
}

// FinishNonFiscal ends the running non-fiscal printout ($w 1).
func (d *Driver) FinishNonFiscal(ctx context.Context, printNr int, sysNr string, extraLines ExtraLines) error {
	hasSysNr := 0
	if sysNr != "" {
		hasSysNr = 1
	}

	cmd := Command{
		IntParams:  []int{1, printNr, hasSysNr, extraLines.Count()},
		Opcode:     "$w",
		TextParams: []string{sysNr + "\r"},
		WithCtrl:   true,
	}

	for _, line := range extraLines.lines() {
		cmd.TextParams = append(cmd.TextParams, line+"\r")
	}

	return d.execute(ctx, cmd)
}
