// internal/driver/novitus/session_test.go
package novitus

import (
	"bytes"
	"context"
	"testing"
)

var sessionID = Id{PrinterID: "01", OperatorID: "Jan"}

func TestLoginLogoutFrames(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	if err := d.Login(context.Background(), sessionID); err != nil {
		t.Fatal(err)
	}
	// The operator comes before the register number in #p and #q.
	if !bytes.Equal(conn.written(), wantFrame("0#pJan\r01\r", true)) {
		t.Errorf("wrote %q", conn.written())
	}

	conn = newMockConn()
	d = testDriver(conn)
	if err := d.Logout(context.Background(), sessionID); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("0#qJan\r01\r", true)) {
		t.Errorf("wrote %q", conn.written())
	}
}

func TestPaymentToCash(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	if err := d.PaymentToCash(context.Background(), sessionID, 100, false); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("0#i100.00/01\rJan\r", true)) {
		t.Errorf("wrote %q", conn.written())
	}
}

func TestPaymentToCashEuro(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	if err := d.PaymentToCash(context.Background(), DefaultId(), 25.5, true); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("99#i25.50/", true)) {
		t.Errorf("wrote %q", conn.written())
	}
}

func TestWithdrawalFromCash(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	if err := d.WithdrawalFromCash(context.Background(), sessionID, 50, false); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("0#d50.00/01\rJan\r", true)) {
		t.Errorf("wrote %q", conn.written())
	}
}

func TestPrintCashState(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	if err := d.PrintCashState(context.Background(), DefaultId()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("0#t", true)) {
		t.Errorf("wrote %q", conn.written())
	}
}

func TestPrintShiftReport(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	// A resetting report sends 0, a non-resetting one sends 1.
	if err := d.PrintShiftReport(context.Background(), sessionID, true, "ZMIANA1"); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("0#kZMIANA1\rJan\r01\r", true)) {
		t.Errorf("wrote %q", conn.written())
	}

	conn = newMockConn()
	d = testDriver(conn)
	if err := d.PrintShiftReport(context.Background(), Id{OperatorID: "Jan"}, false, "Z2"); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("1#kZ2\rJan\r", true)) {
		t.Errorf("wrote %q", conn.written())
	}
}

func TestPrintDailyReport(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	if err := d.PrintDailyReport(context.Background(), DefaultId()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("#r", true)) {
		t.Errorf("wrote %q", conn.written())
	}

	conn = newMockConn()
	d = testDriver(conn)
	if err := d.PrintDailyReport(context.Background(), sessionID); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("#r01\rJan\r", true)) {
		t.Errorf("wrote %q", conn.written())
	}
}

func TestPrintPeriodicalReportByDate(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	err := d.PrintPeriodicalReportByDate(context.Background(), sessionID, 14, 1, 1, 14, 1, 31, ReportFullByDate)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("14;1;1;14;1;31;0#oJan\r01\r", true)) {
		t.Errorf("wrote %q", conn.written())
	}
}

func TestPrintPeriodicalReportByNumber(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	err := d.PrintPeriodicalReportByNumber(context.Background(), DefaultId(), 10, 20, ReportSummaryByDate)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("1#o10/20/", true)) {
		t.Errorf("wrote %q", conn.written())
	}
}

func TestSetVatRatesCounts(t *testing.T) {
	rates := [7]float64{23, 8, 5, 0, VatExempted, VatDisabled, VatDisabled}

	conn := newMockConn()
	d := testDriver(conn)
	if err := d.SetVatRates(context.Background(), DefaultId(), 2, rates); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("2$p23.00/8.00/", true)) {
		t.Errorf("wrote %q", conn.written())
	}

	// Count 0 programs the first four rates.
	conn = newMockConn()
	d = testDriver(conn)
	if err := d.SetVatRates(context.Background(), DefaultId(), 0, rates); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("0$p23.00/8.00/5.00/0.00/", true)) {
		t.Errorf("wrote %q", conn.written())
	}

	conn = newMockConn()
	d = testDriver(conn)
	if err := d.SetVatRates(context.Background(), sessionID, 7, rates); err != nil {
		t.Fatal(err)
	}
	want := "7$p01\rJan\r23.00/8.00/5.00/0.00/100.00/101.00/101.00/"
	if !bytes.Equal(conn.written(), wantFrame(want, true)) {
		t.Errorf("wrote %q", conn.written())
	}
}

func TestContainerReturn(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	if err := d.ContainerReturn(context.Background(), "BUTELKA 0.50"); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("0#wBUTELKA 0.50\r", true)) {
		t.Errorf("wrote %q", conn.written())
	}
}

func TestSaleReceiptFrames(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	data := SaleReceiptData{
		PrintID:     true,
		PrintOption: SaleReceiptOneCopy,
		Month:       12,
		Year:        16,
		Amount:      99.99,
		Receipt:     "123/2014",
		ClientName:  "Jan Nowak",
		Terminal:    "T1",
		CardName:    "VISA",
		CardNr:      "4111111111111111",
		AuthCode:    "A1B2C3",
	}

	if err := d.SaleReceipt(context.Background(), sessionID, data); err != nil {
		t.Fatal(err)
	}

	body := "1;2#g01\rJan\r123/2014\rJan Nowak\rT1\rVISA\r4111111111111111\r12\r16\rA1B2C3\r99.99/"
	if !bytes.Equal(conn.written(), wantFrame(body, true)) {
		t.Errorf("wrote %q", conn.written())
	}

	// The article return shares the frame with a different opcode.
	conn = newMockConn()
	d = testDriver(conn)
	if err := d.ReturnOfArticle(context.Background(), sessionID, data); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(conn.written(), []byte("#h")) {
		t.Errorf("wrote %q, want a #h frame", conn.written())
	}
}
