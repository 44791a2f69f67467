// internal/driver/novitus/ops_cashinfo.go
package novitus

import "context"

// GetCashRegisterInfo1 pulls the basic cash register snapshot (#s mode 0).
// Clears the last-error code.
func (d *Driver) GetCashRegisterInfo1(ctx context.Context) (CashRegisterInfo1, error) {
	payload, err := d.executeRead(ctx, Command{
		IntParams: []int{0},
		Opcode:    "#s",
	})
	if err != nil {
		return CashRegisterInfo1{}, err
	}

	var info CashRegisterInfo1

	r := newReader(payload)
	r.literal("1#X")
	info.LastError = r.readInt()
	r.delim(';')
	info.Fiscal = r.readBool()
	r.delim(';')
	info.Transaction = r.readBool()
	r.delim(';')
	info.TransactionOk = r.readBool()
	r.delim(';')
	r.readInt() // reserved
	r.delim(';')
	info.RamResets = r.readInt()
	r.delim(';')
	info.Year = r.readInt()
	r.delim(';')
	info.Month = r.readInt()
	r.delim(';')
	info.Day = r.readInt()
	r.delim('/')

	// The VAT block is variable length: reals until the receipt counter,
	// then one more totaliser than there were rates.
	var vat []float64
	for r.peekReal() {
		vat = append(vat, r.readReal())
		r.delim('/')
	}
	info.Receipts = r.readInt()
	r.delim('/')

	var tot []float64
	for i := 0; i < len(vat)+1; i++ {
		tot = append(tot, r.readReal())
		r.delim('/')
	}

	info.Cash = r.readReal()
	r.delim('/')
	info.Number = r.rest()

	assignRates(vat, &info.VatA, &info.VatB, &info.VatC, &info.VatD, &info.VatE, &info.VatF)
	assignRates(tot, &info.TotA, &info.TotB, &info.TotC, &info.TotD, &info.TotE, &info.TotF, &info.TotG)

	d.logDecode("getCashRegisterInfo1", payload, r)
	return info, nil
}

// assignRates copies up to len(dst) parsed values into the target fields.
func assignRates(src []float64, dst ...*float64) {
	for i, v := range src {
		if i >= len(dst) {
			break
		}
		*dst[i] = v
	}
}

// GetCashRegisterInfo2 pulls the totaliser snapshot (#s modes 22/23/99).
// The invoices flag switches the reply to invoice totalisers; it is sent
// first as a separate $r configuration command, the way the protocol
// documentation prescribes.
func (d *Driver) GetCashRegisterInfo2(ctx context.Context, mode CashRegisterInfo2Mode, invoices bool) (CashRegisterInfo2, error) {
	sel := 0
	if invoices {
		sel = 1
	}

	if err := d.execute(ctx, Command{
		IntParams: []int{243, sel},
		Opcode:    "$r",
		WithCtrl:  true,
	}); err != nil {
		return CashRegisterInfo2{}, err
	}

	payload, err := d.executeRead(ctx, Command{
		IntParams: []int{int(mode)},
		Opcode:    "#s",
	})
	if err != nil {
		return CashRegisterInfo2{}, err
	}

	var info CashRegisterInfo2

	r := newReader(payload)
	r.literal("2#X")
	info.LastError = r.readInt()
	r.delim(';')
	info.Fiscal = r.readBool()
	r.delim(';')
	info.Transaction = r.readBool()
	r.delim(';')
	info.TransactionOk = r.readBool()
	r.delim(';')
	r.readInt() // reserved
	r.delim(';')
	info.Resets = r.readInt()
	r.delim(';')
	info.Year = r.readInt()
	r.delim(';')
	info.Month = r.readInt()
	r.delim(';')
	info.Day = r.readInt()
	r.delim('/')

	info.VatA = r.readReal()
	r.delim('/')
	info.VatB = r.readReal()
	r.delim('/')
	info.VatC = r.readReal()
	r.delim('/')
	info.VatD = r.readReal()
	r.delim('/')
	info.VatE = r.readReal()
	r.delim('/')
	info.VatF = r.readReal()
	r.delim('/')
	info.VatG = r.readReal()
	r.delim('/')

	info.Receipts = r.readInt()
	r.delim('/')

	info.TotA = r.readReal()
	r.delim('/')
	info.TotB = r.readReal()
	r.delim('/')
	info.TotC = r.readReal()
	r.delim('/')
	info.TotD = r.readReal()
	r.delim('/')
	info.TotE = r.readReal()
	r.delim('/')
	info.TotF = r.readReal()
	r.delim('/')
	info.TotG = r.readReal()
	r.delim('/')

	info.Cash = r.readReal()
	r.delim('/')
	info.Number = r.rest()

	d.logDecode("getCashRegisterInfo2", payload, r)
	return info, nil
}

// GetCashRegisterInfo3 pulls fiscal memory occupancy, the last receipt's
// value and the count of blocked items (#s mode 24).
func (d *Driver) GetCashRegisterInfo3(ctx context.Context) (CashRegisterInfo3, error) {
	payload, err := d.executeRead(ctx, Command{
		IntParams: []int{24},
		Opcode:    "#s",
	})
	if err != nil {
		return CashRegisterInfo3{}, err
	}

	var info CashRegisterInfo3

	r := newReader(payload)
	r.literal("3#X")
	info.Year = r.readInt()
	r.delim(';')
	info.Month = r.readInt()
	r.delim(';')
	info.Day = r.readInt()
	r.delim(';')
	info.UsedReports = r.readInt()
	r.delim(';')
	info.FreeReports = r.readInt()
	r.delim(';')
	info.Locked = r.readInt()
	r.delim(';')

	info.TotA = r.readReal()
	r.delim('/')
	info.TotB = r.readReal()
	r.delim('/')
	info.TotC = r.readReal()
	r.delim('/')
	info.TotD = r.readReal()
	r.delim('/')
	info.TotE = r.readReal()
	r.delim('/')
	info.TotF = r.readReal()
	r.delim('/')
	info.TotG = r.readReal()
	r.delim('/')

	d.logDecode("getCashRegisterInfo3", payload, r)
	return info, nil
}

// GetCashRegisterInfo4 pulls document and invoice counters (#s mode 50).
func (d *Driver) GetCashRegisterInfo4(ctx context.Context) (CashRegisterInfo4, error) {
	payload, err := d.executeRead(ctx, Command{
		IntParams: []int{50},
		Opcode:    "#s",
	})
	if err != nil {
		return CashRegisterInfo4{}, err
	}

	var info CashRegisterInfo4

	r := newReader(payload)
	r.literal("50#X")
	info.Documents = r.readInt()
	r.delim('/')
	info.Invoices = r.readInt()
	r.delim('/')
	r.readInt()
	r.delim('/')
	r.readInt()
	r.delim('/')
	r.readInt()
	r.delim('/')

	d.logDecode("getCashRegisterInfo4", payload, r)
	return info, nil
}

// GetCashRegisterInfo5 pulls the e-copy memory card state (#s mode 90).
// Some devices do not answer before fiscalisation; the caller sees that as
// a framing timeout, not a protocol error.
func (d *Driver) GetCashRegisterInfo5(ctx context.Context) (CashRegisterInfo5, error) {
	payload, err := d.executeRead(ctx, Command{
		IntParams: []int{90},
		Opcode:    "#s",
	})
	if err != nil {
		return CashRegisterInfo5{}, err
	}

	var info CashRegisterInfo5

	r := newReader(payload)
	r.literal("90#X")
	info.Label = r.until('\r')
	info.State = r.until('\r')
	info.Size = r.readInt()
	r.delim('\r')
	info.FreeMem = r.readInt()
	r.delim('\r')
	info.Files = r.readInt()
	r.delim('\r')
	info.FreeReports = r.readInt()
	r.delim('\r')
	info.LastReportNr = r.readInt()
	r.delim('\r')
	info.LastWrite = r.until('\r')

	d.logDecode("getCashRegisterInfo5", payload, r)
	return info, nil
}

// GetCashRegisterInfo6 pulls totaliser values and the transaction state
// (#s mode 100).
func (d *Driver) GetCashRegisterInfo6(ctx context.Context, mode CashRegisterInfo6Mode) (CashRegisterInfo6, error) {
	payload, err := d.executeRead(ctx, Command{
		IntParams: []int{100, int(mode)},
		Opcode:    "#s",
		WithCtrl:  true,
	})
	if err != nil {
		return CashRegisterInfo6{}, err
	}

	var info CashRegisterInfo6

	r := newReader(payload)
	r.readInt() // mode echo
	r.delim(';')
	info.Type = r.readInt()
	r.delim(';')
	info.Transaction = r.readInt()
	r.literal("#X")

	info.Total = r.readReal()
	r.delim('/')
	info.TotA = r.readReal()
	r.delim('/')
	info.TotB = r.readReal()
	r.delim('/')
	info.TotC = r.readReal()
	r.delim('/')
	info.TotD = r.readReal()
	r.delim('/')
	info.TotE = r.readReal()
	r.delim('/')
	info.TotF = r.readReal()
	r.delim('/')
	info.TotG = r.readReal()
	r.delim('/')

	r.readInt()
	r.delim('/')
	r.readInt()
	r.delim('/')
	r.readInt()
	r.delim('/')

	d.logDecode("getCashRegisterInfo6", payload, r)
	return info, nil
}

// GetCashRegisterInfo7 pulls the amount of one invoice item (#s mode 200,
// devices with invoice support).
func (d *Driver) GetCashRegisterInfo7(ctx context.Context, item int, mode CashRegisterInfo7Mode) (CashRegisterInfo7, error) {
	payload, err := d.executeRead(ctx, Command{
		IntParams: []int{200, int(mode), item},
		Opcode:    "#s",
		WithCtrl:  true,
	})
	if err != nil {
		return CashRegisterInfo7{}, err
	}

	var info CashRegisterInfo7

	r := newReader(payload)
	r.readInt() // mode echo
	r.literal("#X")
	info.Amount = r.readReal()
	r.delim('/')

	d.logDecode("getCashRegisterInfo7", payload, r)
	return info, nil
}
