// internal/driver/novitus/fiscalmemory_test.go
package novitus

import (
	"bytes"
	"context"
	"testing"
)

func TestBeginFiscalMemoryReadByDate(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	if err := d.BeginFiscalMemoryReadByDate(context.Background(), 14, 3, 1, 0, 0, 0); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("25;14;3;1;0;0;0#s", false)) {
		t.Errorf("wrote %q", conn.written())
	}
}

func TestBeginFiscalMemoryReadByRow(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	if err := d.BeginFiscalMemoryReadByRow(context.Background(), 120); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("26#s120/", false)) {
		t.Errorf("wrote %q", conn.written())
	}
}

func TestGetFiscalMemoryRecordDailyReport(t *testing.T) {
	payload := "10#X14;3;1;21;30;0;120;2;5;12.50/100.00/20.00/3.00/0.00/0.00/0.00/1.00/"
	conn := newMockConn(framedReply(payload)...)
	d := testDriver(conn)

	record, err := d.GetFiscalMemoryRecord(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(conn.written(), wantFrame("27#s", false)) {
		t.Errorf("wrote %q", conn.written())
	}

	if record.Type != RecordDailyReport {
		t.Fatalf("type = %v", record.Type)
	}
	if record.Year != 14 || record.Month != 3 || record.Day != 1 || record.Hour != 21 {
		t.Errorf("timestamp = %+v", record)
	}
	if record.Receipts != 120 || record.CancelledReceipts != 2 || record.DatabaseChanges != 5 {
		t.Errorf("counters = %+v", record)
	}
	if record.CancelledReceiptsValue != 12.5 || record.TotA != 100 || record.TotG != 1 {
		t.Errorf("amounts = %+v", record)
	}
}

func TestGetFiscalMemoryRecordVatChange(t *testing.T) {
	payload := "11#X14;1;1;8;0;0;0;0;0;0/23.00/8.00/5.00/0.00/101.00/101.00/100.00/"
	conn := newMockConn(framedReply(payload)...)
	d := testDriver(conn)

	record, err := d.GetFiscalMemoryRecord(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if record.Type != RecordVatChange {
		t.Fatalf("type = %v", record.Type)
	}
	if record.VatA != 23 || record.VatE != 101 || record.VatG != 100 {
		t.Errorf("rates = %+v", record)
	}
}

func TestGetFiscalMemoryRecordRamReset(t *testing.T) {
	payload := "12#X14;2;1;9;15;30;4;7;0;0/0/0/0/0/0/0/0/"
	conn := newMockConn(framedReply(payload)...)
	d := testDriver(conn)

	record, err := d.GetFiscalMemoryRecord(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if record.Type != RecordRamReset {
		t.Fatalf("type = %v", record.Type)
	}
	if record.Reason != 4 || record.ResetNumber != 7 {
		t.Errorf("record = %+v", record)
	}
}

func TestGetFiscalMemoryRecordSellAfterReset(t *testing.T) {
	payload := "13#X14;2;2;10;0;0;0;0;0;0/0/0/0/0/0/0/0/"
	conn := newMockConn(framedReply(payload)...)
	d := testDriver(conn)

	record, err := d.GetFiscalMemoryRecord(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if record.Type != RecordSellAfterRamReset {
		t.Fatalf("type = %v", record.Type)
	}
	if record.Year != 14 || record.Hour != 10 {
		t.Errorf("record = %+v", record)
	}
}

func TestGetFiscalMemoryRecordEmpty(t *testing.T) {
	conn := newMockConn(framedReply("no more records")...)
	d := testDriver(conn)

	record, err := d.GetFiscalMemoryRecord(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if record.Type != RecordEmpty {
		t.Errorf("type = %v, want empty", record.Type)
	}
}

func TestFiscalMemoryRecordTypeStrings(t *testing.T) {
	cases := map[FiscalMemoryRecordType]string{
		RecordEmpty:             "empty",
		RecordDailyReport:       "daily-report",
		RecordVatChange:         "vat-change",
		RecordRamReset:          "ram-reset",
		RecordSellAfterRamReset: "sell-after-ram-reset",
	}

	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
}
