// internal/driver/novitus/invoice_test.go
package novitus

import (
	"bytes"
	"context"
	"testing"
)

func TestBeginInvoiceFrame(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	data := BeginInvoiceData{
		Items:            2,
		PrintCopy:        true,
		AdditionalCopies: 1,
		InvoiceNr:        "FV/1/2014",
		NIP:              "123-456-78-90",
		Timeout:          "14 dni",
		PaymentForm:      "przelew",
		SystemNr:         "#SYS1",
		ClientLines:      []string{"ACME Sp. z o.o.", "ul. Prosta 1", "00-001 Warszawa"},
	}

	if err := d.BeginInvoice(context.Background(), data); err != nil {
		t.Fatal(err)
	}

	body := "2;3;1;1;0;0;1;0;0;0$h" +
		"FV/1/2014\r" +
		"ACME Sp. z o.o.\r" + "ul. Prosta 1\r" + "00-001 Warszawa\r" +
		"123-456-78-90\r" + "14 dni\r" + "przelew\r" + "\r" + "\r" + "#SYS1\r"
	if !bytes.Equal(conn.written(), wantFrame(body, true)) {
		t.Errorf("wrote %q\nwant  %q", conn.written(), wantFrame(body, true))
	}
}

func TestFinishInvoiceFrame(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	data := FinishInvoiceData{
		PayedFlag:  true,
		Payed:      "zapłacono",
		Client:     ClientSellerNameAndBlock,
		Seller:     ClientSellerNone,
		CashIn:     123,
		Total:      123,
		ClientName: "ACME",
		SellerName: "Sklep",
		ExtraLines: ExtraLines{Line1: "stopka"},
	}

	err := d.FinishInvoice(context.Background(), Id{PrinterID: "01", OperatorID: "Ewa"}, data)
	if err != nil {
		t.Fatal(err)
	}

	// "zapłacono" crosses the transcoder, so assemble the body from bytes.
	wantBody := []byte("1;0;1;0;0;1;1;1;2$e" + "01Ewa\r" + "stopka\r")
	wantBody = append(wantBody, ToMazovia("zapłacono")...)
	wantBody = append(wantBody, []byte("\rACME\rSklep\r123.00/123.00/0.00/")...)
	want := frame(wantBody, true)
	if !bytes.Equal(conn.written(), want) {
		t.Errorf("wrote %q\nwant  %q", conn.written(), want)
	}
}

func TestSetInvoiceOptionFrame(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	options := InvoiceOptions{
		AdditionalCopies: 2,
		Client:           ClientSellerInfoBlock,
		Seller:           ClientSellerInfoBlock,
		Year:             14,
		Month:            6,
		Day:              30,
		SummaryOption:    InvoiceSummaryBoldBuyer,
		InvoiceOptions2:  InvoiceOpt2ItemNumbers,
		InvoiceOptions3:  InvoiceOpt3VatLabel,
		ClientIDType:     ClientIDNIP,
		Timeout:          "7 dni",
		PaymentForm:      "gotówka",
		SystemNr:         "S1",
	}

	if err := d.SetInvoiceOption(context.Background(), options); err != nil {
		t.Fatal(err)
	}

	// The payment form carries an ó, so compare against the encoded frame.
	wantBody := []byte("2;0;0;0;14;6;30;4;2;1;16@c")
	wantBody = append(wantBody, []byte("7 dni\r")...)
	wantBody = append(wantBody, ToMazovia("gotówka")...)
	wantBody = append(wantBody, '\r', '\r', '\r')
	wantBody = append(wantBody, []byte("S1\r")...)

	want := frame(wantBody, true)
	if !bytes.Equal(conn.written(), want) {
		t.Errorf("wrote %q\nwant  %q", conn.written(), want)
	}
}

func TestExtraLinesInvoice(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	if err := d.ExtraLinesInvoice(context.Background(), ExtraLineCard, "VITAY"); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("20;5$zVITAY\r", true)) {
		t.Errorf("wrote %q", conn.written())
	}
}

func TestNonFiscalLifecycleFrames(t *testing.T) {
	conn := newMockConn()
	d := testDriver(conn)

	if err := d.BeginNonFiscal(context.Background(), 20, 1); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("0;20;1$w", true)) {
		t.Errorf("wrote %q", conn.written())
	}

	conn = newMockConn()
	d = testDriver(conn)
	line := NonFiscalLine{
		PrintNr: 20,
		LineNr:  3,
		Bold:    true,
		Center:  true,
		Attrs:   FontWide,
		Lines:   []string{"pierwsza", "druga"},
	}
	if err := d.PrintNonFiscal(context.Background(), line); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("20;3;1;0;0;1;1$wpierwsza\rdruga\r", true)) {
		t.Errorf("wrote %q", conn.written())
	}

	conn = newMockConn()
	d = testDriver(conn)
	if err := d.FinishNonFiscal(context.Background(), 20, "SYS7", ExtraLines{Line1: "dziekujemy"}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conn.written(), wantFrame("1;20;1;1$wSYS7\rdziekujemy\r", true)) {
		t.Errorf("wrote %q", conn.written())
	}
}
