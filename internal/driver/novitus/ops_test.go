// internal/driver/novitus/ops_test.go
package novitus

import (
	"bytes"
	"context"
	"testing"
)

// wantFrame builds the exact frame the driver must emit for a body.
func wantFrame(body string, withCtrl bool) []byte {
	return frame([]byte(body), withCtrl)
}

func TestBellWritesBEL(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	if err := d.Bell(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), []byte{0x07}) {
		t.Errorf("wrote % x, want 07", conn.written())
	}
}

func TestCancelWritesCAN(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	if err := d.Cancel(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), []byte{0x18}) {
		t.Errorf("wrote % x, want 18", conn.written())
	}
}

func TestGetEnqStatus(t *testing.T) {
	conn := newMockConn(0x61)
	d := testDriver(conn)

	status, err := d.GetEnqStatus(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(conn.written(), []byte{0x05}) {
		t.Errorf("wrote % x, want 05", conn.written())
	}

	want := EnqStatus{TransactionOk: true}
	if status != want {
		t.Errorf("status = %+v, want %+v", status, want)
	}
}

func TestGetEnqStatusSkipsForeignBytes(t *testing.T) {
	conn := newMockConn('x', 0x0a, 0x6f)
	d := testDriver(conn)

	status, err := d.GetEnqStatus(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := EnqStatus{Fiscal: true, Command: true, Transaction: true, TransactionOk: true}
	if status != want {
		t.Errorf("status = %+v, want %+v", status, want)
	}
}

func TestDecodeEnqFullRange(t *testing.T) {
	for b := byte(0x60); b <= 0x6f; b++ {
		got := decodeEnq(b)
		if got.Fiscal != (b&0x08 != 0) ||
			got.Command != (b&0x04 != 0) ||
			got.Transaction != (b&0x02 != 0) ||
			got.TransactionOk != (b&0x01 != 0) {
			t.Errorf("decodeEnq(%#x) = %+v", b, got)
		}
	}
}

func TestGetDleStatus(t *testing.T) {
	conn := newMockConn(0x74)
	d := testDriver(conn)

	status, err := d.GetDleStatus(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(conn.written(), []byte{0x10}) {
		t.Errorf("wrote % x, want 10", conn.written())
	}

	want := DleStatus{Online: true}
	if status != want {
		t.Errorf("status = %+v, want %+v", status, want)
	}
}

func TestDecodeDleFullRange(t *testing.T) {
	for b := byte(0x70); b <= 0x77; b++ {
		got := decodeDle(b)
		if got.Online != (b&0x04 != 0) ||
			got.Paper != (b&0x02 != 0) ||
			got.Error != (b&0x01 != 0) {
			t.Errorf("decodeDle(%#x) = %+v", b, got)
		}
	}
}

func TestSetErrorHandlingModeFrame(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	if err := d.SetErrorHandlingMode(context.Background(), ErrorHandlingDisplaySend); err != nil {
		t.Fatal(err)
	}

	want := wantFrame("2#e", true)
	if !bytes.Equal(conn.written(), want) {
		t.Errorf("wrote % x, want % x", conn.written(), want)
	}

	// Wire contract: ESC P "2#e" <two hex digits> ESC backslash.
	if string(conn.written()[2:5]) != "2#e" {
		t.Errorf("body = %q", conn.written()[2:5])
	}
	if string(conn.written()[5:7]) != "8B" {
		t.Errorf("ctrl = %q, want 8B", conn.written()[5:7])
	}
}

func TestGetVersionInfo(t *testing.T) {
	conn := newMockConn(framedReply("1#RVENTO/1.00")...)
	d := testDriver(conn)

	info, err := d.GetVersionInfo(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(conn.written(), wantFrame("#v", false)) {
		t.Errorf("wrote % x", conn.written())
	}

	want := VersionInfo{Type: "VENTO", Version: "1.00"}
	if info != want {
		t.Errorf("info = %+v, want %+v", info, want)
	}
}

func TestGetLastError(t *testing.T) {
	conn := newMockConn(framedReply("1#E21")...)
	d := testDriver(conn)

	perr, err := d.GetLastError(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if perr.Code != 21 {
		t.Errorf("code = %d, want 21", perr.Code)
	}
	if perr.Message() != "Paragon nie został rozpoczęty" {
		t.Errorf("message = %q", perr.Message())
	}
	if perr.OK() {
		t.Error("OK() on a non-zero code")
	}
}

func TestPrinterErrorTable(t *testing.T) {
	cases := map[int]string{
		0:      "Operacja wykonana pomyślnie",
		3:      "Nieprawidłowa ilość parametrów",
		7:      "Nieprawidłowa data",
		37:     "Anulowane przez użytkownika",
		51:     "Nieprawidłowa kwota",
		82:     "Niedozwolony rozkaz",
		1037:   "Brak papieru",
		1038:   "Błąd zapisu kopii elektronicznej",
		1042:   "Pamięć podręczna pełna",
		9999:   "Błąd fatalny",
		424242: "Nieznany numer błędu",
	}

	for code, want := range cases {
		if got := (PrinterError{Code: code}).Message(); got != want {
			t.Errorf("message(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestGetClock(t *testing.T) {
	conn := newMockConn(framedReply("1#C14;7;1;12;30;5")...)
	d := testDriver(conn)

	info, err := d.GetClock(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := ClockInfo{Year: 14, Month: 7, Day: 1, Hour: 12, Minute: 30}
	if info != want {
		t.Errorf("clock = %+v, want %+v", info, want)
	}
}

func TestSetClockFrames(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	if err := d.SetClock(context.Background(), DefaultId(), 14, 7, 1, 12, 30, 0); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("14;7;1;12;30;0$c", true)) {
		t.Errorf("wrote % x", conn.written())
	}

	conn = newMockConn()
	d = testDriver(conn)
	if err := d.SetClock(context.Background(), Id{PrinterID: "1", OperatorID: "Anna"}, 14, 7, 1, 12, 30, 0); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("14;7;1;12;30;0$c1\rAnna\r", true)) {
		t.Errorf("wrote % x", conn.written())
	}
}

func TestGetHeaderTrimsTrailer(t *testing.T) {
	conn := newMockConn(framedReply("1#USklep ABC\r\n0000")...)
	d := testDriver(conn)

	header, err := d.GetHeader(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if header != "Sklep ABC\r\n" {
		t.Errorf("header = %q", header)
	}
}

func TestGetCashRegisterInfo1VariableRates(t *testing.T) {
	payload := "1#X0;1;0;1;0;2;14;3;1/23.00/8.00/5.00/0.00/15/1.23/2.34/0.00/0.00/0.00/100.00/ABC12345678"
	conn := newMockConn(framedReply(payload)...)
	d := testDriver(conn)

	info, err := d.GetCashRegisterInfo1(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !info.Fiscal || info.Transaction || !info.TransactionOk {
		t.Errorf("flags = %+v", info)
	}
	if info.RamResets != 2 || info.Year != 14 || info.Month != 3 || info.Day != 1 {
		t.Errorf("dates = %+v", info)
	}
	if info.VatA != 23 || info.VatB != 8 || info.VatC != 5 || info.VatD != 0 {
		t.Errorf("rates = %+v", info)
	}
	if info.Receipts != 15 {
		t.Errorf("receipts = %d", info.Receipts)
	}
	if info.TotA != 1.23 || info.TotB != 2.34 {
		t.Errorf("totals = %+v", info)
	}
	if info.Cash != 100 {
		t.Errorf("cash = %v", info.Cash)
	}
	if info.Number != "ABC12345678" {
		t.Errorf("number = %q", info.Number)
	}
}

func TestGetCashRegisterInfo2(t *testing.T) {
	payload := "2#X0;1;1;0;0;3;14;12;31/23.00/8.00/5.00/0.00/101.00/101.00/100.00/7/10.00/2.00/3.00/0.00/0.00/0.00/0.00/55.50/ABC00000001"
	conn := newMockConn(framedReply(payload)...)
	d := testDriver(conn)

	info, err := d.GetCashRegisterInfo2(context.Background(), Info2SinceLastReport, true)
	if err != nil {
		t.Fatal(err)
	}

	// The invoice selector goes out first as its own $r frame.
	if len(conn.writes) != 2 {
		t.Fatalf("writes = %d, want 2", len(conn.writes))
	}
	if !bytes.Equal(conn.writes[0], wantFrame("243;1$r", true)) {
		t.Errorf("selector frame = % x", conn.writes[0])
	}
	if !bytes.Equal(conn.writes[1], wantFrame("23#s", false)) {
		t.Errorf("query frame = % x", conn.writes[1])
	}

	if info.Resets != 3 || info.VatG != 100 || info.Receipts != 7 {
		t.Errorf("info = %+v", info)
	}
	if info.Cash != 55.5 || info.Number != "ABC00000001" {
		t.Errorf("info tail = %+v", info)
	}
}

func TestGetCashRegisterInfo3(t *testing.T) {
	payload := "3#X14;6;30;120;1710;4;1.00/2.00/3.00/4.00/5.00/6.00/7.00/"
	conn := newMockConn(framedReply(payload)...)
	d := testDriver(conn)

	info, err := d.GetCashRegisterInfo3(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if info.UsedReports != 120 || info.FreeReports != 1710 || info.Locked != 4 {
		t.Errorf("info = %+v", info)
	}
	if info.TotG != 7 {
		t.Errorf("totG = %v", info.TotG)
	}
}

func TestGetCashRegisterInfo4(t *testing.T) {
	conn := newMockConn(framedReply("50#X123/45/0/0/0/")...)
	d := testDriver(conn)

	info, err := d.GetCashRegisterInfo4(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if info.Documents != 123 || info.Invoices != 45 {
		t.Errorf("info = %+v", info)
	}
}

func TestGetCashRegisterInfo5(t *testing.T) {
	payload := "90#XKARTA1\rO\r2048\r1024\r17\r200\r42\r2014-03-01 12:00\r"
	conn := newMockConn(framedReply(payload)...)
	d := testDriver(conn)

	info, err := d.GetCashRegisterInfo5(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := CashRegisterInfo5{
		Label: "KARTA1", State: "O", Size: 2048, FreeMem: 1024,
		Files: 17, FreeReports: 200, LastReportNr: 42,
		LastWrite: "2014-03-01 12:00",
	}
	if info != want {
		t.Errorf("info = %+v, want %+v", info, want)
	}
}

func TestGetCashRegisterInfo6(t *testing.T) {
	payload := "100;0;1#X10.00/1.00/2.00/3.00/4.00/0.00/0.00/0.00/0/0/0/"
	conn := newMockConn(framedReply(payload)...)
	d := testDriver(conn)

	info, err := d.GetCashRegisterInfo6(context.Background(), Info6Gross)
	if err != nil {
		t.Fatal(err)
	}
	if info.Type != 0 || info.Transaction != 1 || info.Total != 10 || info.TotD != 4 {
		t.Errorf("info = %+v", info)
	}
}

func TestGetCashRegisterInfo7(t *testing.T) {
	conn := newMockConn(framedReply("200#X12.34/")...)
	d := testDriver(conn)

	info, err := d.GetCashRegisterInfo7(context.Background(), 3, Info7Gross)
	if err != nil {
		t.Fatal(err)
	}
	if info.Amount != 12.34 {
		t.Errorf("amount = %v", info.Amount)
	}

	if !bytes.Equal(conn.written(), wantFrame("200;0;3#s", true)) {
		t.Errorf("wrote % x", conn.written())
	}
}

func TestGetServiceCheckDate(t *testing.T) {
	conn := newMockConn(framedReply("11^t15/6/1/PRZEGLAD\r")...)
	d := testDriver(conn)

	info, err := d.GetServiceCheckDate(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := ServiceDate{Year: 15, Month: 6, Day: 1, Message: "PRZEGLAD"}
	if info != want {
		t.Errorf("info = %+v, want %+v", info, want)
	}
}

func TestGetServiceCheckDateNoMessage(t *testing.T) {
	conn := newMockConn(framedReply("11^t15/6/1/")...)
	d := testDriver(conn)

	info, err := d.GetServiceCheckDate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if info.Year != 15 || info.Message != "" {
		t.Errorf("info = %+v", info)
	}
}

func TestGetDeviceInfo1(t *testing.T) {
	payload := "0$IBONO E\r1.10\r2.00\rOS\r3.1\r2\r57\r1\r2097152\r"
	conn := newMockConn(framedReply(payload)...)
	d := testDriver(conn)

	info, err := d.GetDeviceInfo1(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if info.Name != "BONO E" || info.Displays != 2 || info.PrintingWidth != 57 || info.FiscalMemorySize != 2097152 {
		t.Errorf("info = %+v", info)
	}
}

func TestGetDeviceInfo2(t *testing.T) {
	payload := "1$I2097152\r1024\r1\rABC12345678\r123-456-78-90\r2048\r120\r1830\r118\r200\r2\r30\r1\r10\r0\r"
	conn := newMockConn(framedReply(payload)...)
	d := testDriver(conn)

	info, err := d.GetDeviceInfo2(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode != 1 || info.UniqueNumber != "ABC12345678" || info.NIP != "123-456-78-90" {
		t.Errorf("info = %+v", info)
	}
	if info.RamResetsCount != 2 || info.VatRatesChangesCount != 1 {
		t.Errorf("counters = %+v", info)
	}
}
