// internal/driver/novitus/ops_session.go
package novitus

import "context"

// Login signs the cashier in (#p).
func (d *Driver) Login(ctx context.Context, id Id) error {
	return d.execute(ctx, Command{
		IntParams: []int{0}, // parameter ignored
		Opcode:    "#p",
		TextParams: []string{
			id.OperatorID + "\r",
			id.PrinterID + "\r",
		},
		WithCtrl: true,
	})
}

// Logout signs the cashier out (#q).
func (d *Driver) Logout(ctx context.Context, id Id) error {
	return d.execute(ctx, Command{
		IntParams: []int{0}, // parameter ignored
		Opcode:    "#q",
		TextParams: []string{
			id.OperatorID + "\r",
			id.PrinterID + "\r",
		},
		WithCtrl: true,
	})
}

// PaymentToCash registers a cash payment into the drawer (#i), in PLN or,
// with euro set, in EUR.
func (d *Driver) PaymentToCash(ctx context.Context, id Id, cashIn float64, euro bool) error {
	currency := 0
	if euro {
		currency = 99
	}

	cmd := Command{
		IntParams:  []int{currency},
		Opcode:     "#i",
		TextParams: []string{fromFloat(cashIn) + "/"},
		WithCtrl:   true,
	}

	if !id.IsEmpty() {
		cmd.TextParams = append(cmd.TextParams, id.PrinterID+"\r", id.OperatorID+"\r")
	}

	return d.execute(ctx, cmd)
}

// WithdrawalFromCash registers a cash withdrawal from the drawer (#d).
func (d *Driver) WithdrawalFromCash(ctx context.Context, id Id, cashOut float64, euro bool) error {
	currency := 0
	if euro {
		currency = 99
	}

	cmd := Command{
		IntParams:  []int{currency},
		Opcode:     "#d",
		TextParams: []string{fromFloat(cashOut) + "/"},
		WithCtrl:   true,
	}

	if !id.IsEmpty() {
		cmd.TextParams = append(cmd.TextParams, id.PrinterID+"\r", id.OperatorID+"\r")
	}

	return d.execute(ctx, cmd)
}

// PrintCashState prints the drawer state report (#t).
func (d *Driver) PrintCashState(ctx context.Context, id Id) error {
	cmd := Command{
		IntParams: []int{0}, // parameter ignored
		Opcode:    "#t",
		WithCtrl:  true,
	}

	if !id.IsEmpty() {
		cmd.TextParams = []string{id.PrinterID + "\r", id.OperatorID + "\r"}
	}

	return d.execute(ctx, cmd)
}

// PrintShiftReport prints the shift report (#k). The cashier name is
// always required; the register number may be omitted after a login.
func (d *Driver) PrintShiftReport(ctx context.Context, id Id, reset bool, shift string) error {
	cmd := Command{
		IntParams: []int{boolInt(!reset)},
		Opcode:    "#k",
		TextParams: []string{
			shift + "\r",
			id.OperatorID + "\r",
		},
		WithCtrl: true,
	}

	if id.PrinterID != "" {
		cmd.TextParams = append(cmd.TextParams, id.PrinterID+"\r")
	}

	return d.execute(ctx, cmd)
}

// PrintDailyReport prints the daily fiscal report (#r). The operation asks
// for keyboard confirmation on the device.
func (d *Driver) PrintDailyReport(ctx context.Context, id Id) error {
	cmd := Command{
		Opcode:   "#r",
		WithCtrl: true,
	}

	if !id.IsEmpty() {
		cmd.TextParams = []string{id.PrinterID + "\r", id.OperatorID + "\r"}
	}

	return d.execute(ctx, cmd)
}

// PrintPeriodicalReportByDate prints a periodical report for a date range
// (#o).
func (d *Driver) PrintPeriodicalReportByDate(ctx context.Context, id Id, fromYear, fromMonth, fromDay, toYear, toMonth, toDay int, reportType PeriodicalReportType) error {
	cmd := Command{
		IntParams: []int{fromYear, fromMonth, fromDay, toYear, toMonth, toDay, int(reportType)},
		Opcode:    "#o",
		WithCtrl:  true,
	}

	if !id.IsEmpty() {
		cmd.TextParams = []string{id.OperatorID + "\r", id.PrinterID + "\r"}
	}

	return d.execute(ctx, cmd)
}

// PrintPeriodicalReportByNumber prints a periodical report for a record
// number range (#o).
func (d *Driver) PrintPeriodicalReportByNumber(ctx context.Context, id Id, fromNr, toNr int64, reportType PeriodicalReportType) error {
	cmd := Command{
		IntParams: []int{int(reportType)},
		Opcode:    "#o",
		TextParams: []string{
			fromLong(fromNr) + "/",
			fromLong(toNr) + "/",
		},
		WithCtrl: true,
	}

	if !id.IsEmpty() {
		cmd.TextParams = append(cmd.TextParams, id.OperatorID+"\r", id.PrinterID+"\r")
	}

	return d.execute(ctx, cmd)
}
