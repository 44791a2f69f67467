// internal/driver/novitus/ops_transaction.go
package novitus

import "context"

// BeginTransaction opens a receipt ($h). With items 0 the receipt runs
// on-line. The wire shape depends on which optional blocks are present:
// no extras and no client id is the short form, extras alone add the line
// count and lines, a client id forces the full form.
func (d *Driver) BeginTransaction(ctx context.Context, items int, extraLines ExtraLines, clientIdType ClientIDType, clientId string) error {
	return d.execute(ctx, beginTransactionCommand(items, extraLines, clientIdType, clientId))
}

// beginTransactionCommand builds the $h command for the given arguments.
// Split out so the shape selection stays a pure, testable function.
func beginTransactionCommand(items int, extraLines ExtraLines, clientIdType ClientIDType, clientId string) Command {
	cmd := Command{
		IntParams: []int{items},
		Opcode:    "$h",
		WithCtrl:  true,
	}

	switch {
	case extraLines.IsEmpty() && clientIdType == ClientIDNone:
		// short form

	case clientIdType == ClientIDNone:
		cmd.IntParams = append(cmd.IntParams, extraLines.Count())
		for _, line := range extraLines.lines() {
			cmd.TextParams = append(cmd.TextParams, line+"\r")
		}

	default:
		cmd.IntParams = append(cmd.IntParams, extraLines.Count(), 0, int(clientIdType))
		for _, line := range extraLines.lines() {
			cmd.TextParams = append(cmd.TextParams, line+"\r")
		}
		cmd.TextParams = append(cmd.TextParams, clientId+"\r")
	}

	return cmd
}

// PrintReceiptLine prints one receipt line ($l, or ^l for barcode lines).
// Must run in transaction mode.
func (d *Driver) PrintReceiptLine(ctx context.Context, item Item) error {
	return d.execute(ctx, receiptLineCommand(item))
}

// receiptLineCommand selects one of the five line shapes, checked in order:
// barcode, description, named discount, unnamed discount, plain.
func receiptLineCommand(item Item) Command {
	switch {
	case item.Barcode != "":
		// PLU code line; a discount with description is possible
		return Command{
			IntParams: []int{item.Line, int(item.DiscountType), int(item.DiscountDesc)},
			Opcode:    "^l",
			TextParams: []string{
				item.Name + "\r",
				item.Barcode + "\r",
				item.Quantity + "\r",
				item.Vat + "/",
				fromFloat(item.Price) + "/",
				fromFloat(item.Gross) + "/",
				fromFloat(item.DiscountValue) + "/",
				item.DiscountName + "\r",
			},
			WithCtrl: true,
		}

	case item.Description != "":
		cmd := Command{
			IntParams: []int{item.Line, int(item.DiscountType), int(item.DiscountDesc), 1},
			Opcode:    "$l",
			TextParams: []string{
				item.Name + "\r",
				item.Quantity + "\r",
				item.Vat + "/",
				fromFloat(item.Price) + "/",
				fromFloat(item.Gross) + "/",
			},
			WithCtrl: true,
		}
		if item.DiscountType != ItemDiscountNone {
			cmd.TextParams = append(cmd.TextParams, fromFloat(item.DiscountValue)+"/")
			if item.DiscountName == "" {
				cmd.TextParams = append(cmd.TextParams, "brak\r")
			} else {
				cmd.TextParams = append(cmd.TextParams, item.DiscountName+"\r")
			}
		}
		cmd.TextParams = append(cmd.TextParams, item.Description+"\r")
		return cmd

	case item.DiscountName != "":
		return Command{
			IntParams: []int{item.Line, int(item.DiscountType), int(item.DiscountDesc)},
			Opcode:    "$l",
			TextParams: []string{
				item.Name + "\r",
				item.Quantity + "\r",
				item.Vat + "/",
				fromFloat(item.Price) + "/",
				fromFloat(item.Gross) + "/",
				fromFloat(item.DiscountValue) + "/",
				item.DiscountName + "\r",
			},
			WithCtrl: true,
		}

	case item.DiscountType != ItemDiscountNone:
		return Command{
			IntParams: []int{item.Line, int(item.DiscountType)},
			Opcode:    "$l",
			TextParams: []string{
				item.Name + "\r",
				item.Quantity + "\r",
				item.Vat + "/",
				fromFloat(item.Price) + "/",
				fromFloat(item.Gross) + "/",
				fromFloat(item.DiscountValue) + "/",
			},
			WithCtrl: true,
		}

	default:
		return Command{
			IntParams: []int{item.Line},
			Opcode:    "$l",
			TextParams: []string{
				item.Name + "\r",
				item.Quantity + "\r",
				item.Vat + "/",
				fromFloat(item.Price) + "/",
				fromFloat(item.Gross) + "/",
			},
			WithCtrl: true,
		}
	}
}

// PrintDepositLine handles a container deposit inside a receipt ($l).
// nr is the container number, 0..9999.
func (d *Driver) PrintDepositLine(ctx context.Context, depositType DepositType, nr string, quantity string, price float64) error {
	return d.execute(ctx, Command{
		IntParams: []int{int(depositType)},
		Opcode:    "$l",
		TextParams: []string{
			nr + "\r",
			quantity + "\r",
			"P/", // fixed marker
			fromFloat(price) + "/",
			fromFloat(0) + "/", // argument ignored by the firmware
		},
		WithCtrl: true,
	})
}

// depositCommand builds the fixed-opcode $d deposit adjustment commands.
// The deposit selector is part of the opcode itself, not an integer
// parameter, which is why these frames carry no semicolon block.
func depositCommand(opcode string, amount float64, nr int, quantity string) Command {
	cmd := Command{
		Opcode:     opcode,
		TextParams: []string{fromFloat(amount) + "/"},
		WithCtrl:   true,
	}

	if nr != 0 && quantity != "" {
		cmd.TextParams = append(cmd.TextParams, fromInt(nr)+"\r", quantity+"\r")
	}

	return cmd
}

// DepositCollected registers a collected container deposit ($d 6).
// nr is optional, 1..127; pass 0 to omit it.
func (d *Driver) DepositCollected(ctx context.Context, amount float64, nr int, quantity string) error {
	return d.execute(ctx, depositCommand("6$d", amount, nr, quantity))
}

// CorrectDepositCollected cancels a collected container deposit ($d 7).
func (d *Driver) CorrectDepositCollected(ctx context.Context, amount float64, nr int, quantity string) error {
	return d.execute(ctx, depositCommand("7$d", amount, nr, quantity))
}

// DepositReturned registers a returned container deposit ($d 10).
func (d *Driver) DepositReturned(ctx context.Context, amount float64, nr int, quantity string) error {
	return d.execute(ctx, depositCommand("10$d", amount, nr, quantity))
}

// CorrectDepositReturned cancels a returned container deposit ($d 11).
func (d *Driver) CorrectDepositReturned(ctx context.Context, amount float64, nr int, quantity string) error {
	return d.execute(ctx, depositCommand("11$d", amount, nr, quantity))
}

// CancelTransaction aborts the open receipt ($e 0).
func (d *Driver) CancelTransaction(ctx context.Context, id Id) error {
	cmd := Command{
		IntParams: []int{0},
		Opcode:    "$e",
		WithCtrl:  true,
	}

	if !id.IsEmpty() {
		cmd.TextParams = []string{id.PrinterID + "\r", id.OperatorID + "\r"}
	}

	return d.execute(ctx, cmd)
}

// ConfirmTransaction closes the open receipt the standard way ($e 1).
// With cashIn 0 the paid/change lines are not printed. The wire shape
// branches on the presence of a whole-transaction discount and of extra
// footer lines.
func (d *Driver) ConfirmTransaction(ctx context.Context, id Id, cashIn, total float64, discountType TransactionDiscountType, discountValue float64, extraLines ExtraLines) error {
	return d.execute(ctx, confirmTransactionCommand(id, cashIn, total, discountType, discountValue, extraLines))
}

// confirmTransactionCommand builds the $e confirmation for the given
// arguments. Pure shape selection, directly testable.
func confirmTransactionCommand(id Id, cashIn, total float64, discountType TransactionDiscountType, discountValue float64, extraLines ExtraLines) Command {
	idField := "000\r"
	if !id.IsEmpty() {
		idField = id.PrinterID + id.OperatorID + "\r"
	}

	switch {
	case discountType != TransactionDiscountNone:
		cmd := Command{
			IntParams: []int{1, extraLines.Count(), 0, int(discountType), 1},
			Opcode:    "$e",
			WithCtrl:  true,
		}
		cmd.TextParams = append(cmd.TextParams, idField)
		for _, line := range extraLines.lines() {
			cmd.TextParams = append(cmd.TextParams, line+"\r")
		}
		cmd.TextParams = append(cmd.TextParams,
			fromFloat(cashIn)+"/",
			fromFloat(total)+"/",
			fromFloat(discountValue)+"/",
		)
		return cmd

	case !extraLines.IsEmpty():
		cmd := Command{
			IntParams: []int{1, 0, extraLines.Count(), 0},
			Opcode:    "$e",
			WithCtrl:  true,
		}
		cmd.TextParams = append(cmd.TextParams, idField)
		for _, line := range extraLines.lines() {
			cmd.TextParams = append(cmd.TextParams, line+"\r")
		}
		cmd.TextParams = append(cmd.TextParams,
			fromFloat(cashIn)+"/",
			fromFloat(total)+"/",
		)
		return cmd

	default:
		return Command{
			IntParams: []int{1},
			Opcode:    "$e",
			TextParams: []string{
				idField,
				fromFloat(cashIn) + "/",
				fromFloat(total) + "/",
			},
			WithCtrl: true,
		}
	}
}

// ConfirmTransactionWithPaymentForms1 closes the open receipt with the
// fixed-slot payment block ($x).
func (d *Driver) ConfirmTransactionWithPaymentForms1(ctx context.Context, id Id, info PaymentFormsInfo1, total float64, discountType TransactionDiscountType, discountValue float64, extraLines ExtraLines) error {
	cmd := Command{
		IntParams: []int{
			extraLines.Count(),
			0, // end of transaction
			0, // parameter ignored
			int(discountType),
			boolInt(info.CashFlag),
			boolInt(info.CardFlag),
			boolInt(info.ChequeFlag),
			boolInt(info.CouponFlag),
			boolInt(info.DepositCollectedFlag),
			boolInt(info.DepositReturnedFlag),
			boolInt(info.ChangeFlag),
		},
		Opcode:   "$x",
		WithCtrl: true,
	}

	if id.IsEmpty() {
		cmd.TextParams = append(cmd.TextParams, "000\r")
	} else {
		cmd.TextParams = append(cmd.TextParams, id.PrinterID+id.OperatorID+"\r")
	}

	// The $x frame always carries five CR-terminated line slots.
	switch extraLines.Count() {
	case 1:
		cmd.TextParams = append(cmd.TextParams, extraLines.Line1+"\r", "\r\r\r\r")
	case 2:
		cmd.TextParams = append(cmd.TextParams, extraLines.Line1+"\r", extraLines.Line2+"\r", "\r\r\r")
	case 3:
		cmd.TextParams = append(cmd.TextParams, extraLines.Line1+"\r", extraLines.Line2+"\r", extraLines.Line3+"\r", "\r\r")
	default:
		cmd.TextParams = append(cmd.TextParams, "\r\r\r\r\r")
	}

	cmd.TextParams = append(cmd.TextParams,
		info.CardName+"\r",
		info.ChequeName+"\r",
		info.CouponName+"\r",
		fromFloat(total)+"/",
		fromFloat(discountValue)+"/",
		fromFloat(info.CashIn)+"/",
		fromFloat(info.CardIn)+"/",
		fromFloat(info.ChequeIn)+"/",
		fromFloat(info.CouponIn)+"/",
		fromFloat(info.DepositCollected)+"/",
		fromFloat(info.DepositReturned)+"/",
		fromFloat(info.CheckOut)+"/",
	)

	return d.execute(ctx, cmd)
}

// ConfirmTransactionWithPaymentForms2 closes the open receipt with the
// variable-length payment block ($y). With summary the firmware prints the
// short summary when all forms fall into one group. Payment forms sent via
// PaymentFormService must not be repeated here.
func (d *Driver) ConfirmTransactionWithPaymentForms2(ctx context.Context, id Id, info PaymentFormsInfo2, total float64, discountType DiscountType, discountValue float64, sysNr string, summary bool, extraLines ExtraLines) error {
	hasSysNr := 0
	if sysNr != "" {
		hasSysNr = 1
	}

	cmd := Command{
		IntParams: []int{
			extraLines.Count(),
			0, // end of transaction
			boolInt(summary),
			0, // DSP marker, ignored
			int(discountType),
			len(info.DepositCollected),
			len(info.DepositReturned),
			hasSysNr,
			len(info.PaymentForms),
			boolInt(info.ChangeFlag),
			boolInt(info.CashFlag),
		},
		Opcode:   "$y",
		WithCtrl: true,
	}

	for _, form := range info.PaymentForms {
		cmd.IntParams = append(cmd.IntParams, int(form.Type))
	}

	cmd.TextParams = append(cmd.TextParams,
		id.PrinterID+"\r",
		id.OperatorID+"\r",
		sysNr+"\r",
	)

	for _, line := range extraLines.lines() {
		cmd.TextParams = append(cmd.TextParams, line+"\r")
	}

	for _, form := range info.PaymentForms {
		cmd.TextParams = append(cmd.TextParams, form.Name+"\r")
	}

	for _, dep := range info.DepositCollected {
		cmd.TextParams = append(cmd.TextParams, dep.Nr+"\r")
	}
	for _, dep := range info.DepositCollected {
		cmd.TextParams = append(cmd.TextParams, dep.Quantity+"\r")
	}
	for _, dep := range info.DepositReturned {
		cmd.TextParams = append(cmd.TextParams, dep.Nr+"\r")
	}
	for _, dep := range info.DepositReturned {
		cmd.TextParams = append(cmd.TextParams, dep.Quantity+"\r")
	}

	cmd.TextParams = append(cmd.TextParams,
		fromFloat(total)+"/",
		"0/", // DSP, ignored
		fromFloat(discountValue)+"/",
		fromFloat(info.CashIn)+"/",
	)

	for _, form := range info.PaymentForms {
		cmd.TextParams = append(cmd.TextParams, fromFloat(form.Amount)+"/")
	}

	cmd.TextParams = append(cmd.TextParams, fromFloat(info.ChangeOut)+"/")

	for _, dep := range info.DepositCollected {
		cmd.TextParams = append(cmd.TextParams, fromFloat(dep.Amount)+"/")
	}
	for _, dep := range info.DepositReturned {
		cmd.TextParams = append(cmd.TextParams, fromFloat(dep.Amount)+"/")
	}

	return d.execute(ctx, cmd)
}

// PaymentFormService registers or cancels one payment form amount during a
// transaction ($b).
func (d *Driver) PaymentFormService(ctx context.Context, serviceType ServiceType, paymentType PaymentType, amount float64, name string) error {
	return d.execute(ctx, Command{
		IntParams: []int{int(serviceType), int(paymentType)},
		Opcode:    "$b",
		TextParams: []string{
			fromFloat(amount) + "/",
			name + "\r",
		},
		WithCtrl: true,
	})
}

// AddDiscount applies a discount or surcharge during a transaction ($n).
// Must be sent before PaymentFormService and before
// ConfirmTransactionWithPaymentForms2.
func (d *Driver) AddDiscount(ctx context.Context, discountType DiscountType, name string, value float64) error {
	return d.execute(ctx, Command{
		IntParams: []int{int(discountType)},
		Opcode:    "$n",
		TextParams: []string{
			name + "\r",
			fromFloat(value) + "/",
		},
		WithCtrl: true,
	})
}

// AddVatRateDiscount applies a discount or surcharge to the item group in
// one PTU rate ($L). vat is the rate slot 0..6.
func (d *Driver) AddVatRateDiscount(ctx context.Context, vat int, discountType DiscountType, discountDescription DiscountDescriptionType, amount, discountValue float64, discountName string) error {
	return d.execute(ctx, Command{
		IntParams: []int{vat, int(discountType), int(discountDescription)},
		Opcode:    "$L",
		TextParams: []string{
			fromFloat(amount) + "/",
			fromFloat(discountValue) + "/",
			discountName + "\r",
		},
		WithCtrl: true,
	})
}

// AddSubtotalDiscount applies a discount or surcharge to the receipt
// subtotal ($Y).
func (d *Driver) AddSubtotalDiscount(ctx context.Context, discountType DiscountType, discountDescription DiscountDescriptionType, subtotal, discount float64, discountName string) error {
	return d.execute(ctx, Command{
		IntParams: []int{int(discountType), int(discountDescription)},
		Opcode:    "$Y",
		TextParams: []string{
			fromFloat(subtotal) + "/",
			fromFloat(discount) + "/",
			discountName + "\r",
		},
		WithCtrl: true,
	})
}

// ExtraLineContainerReturned prints the returned-containers extra line
// after the payment confirmation ($z 8). The amount must match the deposit
// amounts sent during the transaction.
func (d *Driver) ExtraLineContainerReturned(ctx context.Context, name, quantity string, amount float64) error {
	return d.execute(ctx, Command{
		IntParams: []int{8},
		Opcode:    "$z",
		TextParams: []string{
			name + "\r",
			quantity + "\r",
			fromFloat(amount) + "/",
		},
		WithCtrl: true,
	})
}

// ExtraLineContainerReceived prints the received-containers extra line
// after the payment confirmation ($z 4).
func (d *Driver) ExtraLineContainerReceived(ctx context.Context, name, quantity string, amount float64) error {
	return d.execute(ctx, Command{
		IntParams: []int{4},
		Opcode:    "$z",
		TextParams: []string{
			name + "\r",
			quantity + "\r",
			fromFloat(amount) + "/",
		},
		WithCtrl: true,
	})
}

// FormsOfPaymentClearing prints the payment forms gathered during the
// transaction together with the change amount ($z 12). Use after $y; do
// not repeat the forms in the $y frame itself.
func (d *Driver) FormsOfPaymentClearing(ctx context.Context) error {
	return d.execute(ctx, Command{
		IntParams: []int{12},
		Opcode:    "$z",
		WithCtrl:  true,
	})
}

// ExtraLine prints one extra footer line ($z 20). Up to 20 lines fit on
// one receipt. Must be sent after the payment confirmation.
func (d *Driver) ExtraLine(ctx context.Context, footerType ExtraLineType, text string) error {
	return d.execute(ctx, Command{
		IntParams:  []int{20, int(footerType)},
		Opcode:     "$z",
		TextParams: []string{text + "\r"},
		WithCtrl:   true,
	})
}

// DefineInfoLines defines the info line set printed after finish ($z 24).
// Only one set can be defined between daily reports.
func (d *Driver) DefineInfoLines(ctx context.Context, lines ExtraLines) error {
	cmd := Command{
		IntParams: []int{24, lines.Count()},
		Opcode:    "$z",
		WithCtrl:  true,
	}

	for _, line := range lines.lines() {
		cmd.TextParams = append(cmd.TextParams, line+"\r")
	}

	return d.execute(ctx, cmd)
}

// EuroPayment prints the EUR payment block ($z 99;5). Must be sent in
// transaction mode, before the payment confirmation.
func (d *Driver) EuroPayment(ctx context.Context, exchange, amount, cashIn, checkEuro, checkPln float64) error {
	return d.execute(ctx, Command{
		IntParams: []int{99, 5},
		Opcode:    "$z",
		TextParams: []string{
			fromFloat(exchange) + "\r",
			fromFloat(amount) + "\r",
			fromFloat(cashIn) + "\r",
			fromFloat(checkEuro) + "\r",
			fromFloat(checkPln) + "\r",
		},
		WithCtrl: true,
	})
}

// Finish ends the printout ($z 28), optionally printing the next receipt's
// header right away.
func (d *Driver) Finish(ctx context.Context, nextHeader bool) error {
	next := 0
	if nextHeader {
		next = 2
	}

	return d.execute(ctx, Command{
		IntParams: []int{28, next},
		Opcode:    "$z",
		WithCtrl:  true,
	})
}

// SetClientId sends the buyer identifier during an open receipt ($z 100).
// A ClientIDNone type makes this a silent no-op. Some devices ignore the
// command entirely and print no identifier.
func (d *Driver) SetClientId(ctx context.Context, clientIdType ClientIDType, clientId string) error {
	if clientIdType == ClientIDNone {
		return nil
	}

	return d.execute(ctx, Command{
		IntParams:  []int{100, int(clientIdType)},
		Opcode:     "$z",
		TextParams: []string{clientId + "\r"},
		WithCtrl:   true,
	})
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
