// internal/driver/novitus/ops_fiscalmemory.go
package novitus

import "context"

// BeginFiscalMemoryReadByDate starts a fiscal memory read pass from the
// first record at or after the given date (#s 25).
func (d *Driver) BeginFiscalMemoryReadByDate(ctx context.Context, year, month, day, hour, minute, second int) error {
	return d.execute(ctx, Command{
		IntParams: []int{25, year, month, day, hour, minute, second},
		Opcode:    "#s",
	})
}

// BeginFiscalMemoryReadByRow starts a fiscal memory read pass from the
// given record number (#s 26).
func (d *Driver) BeginFiscalMemoryReadByRow(ctx context.Context, row int64) error {
	return d.execute(ctx, Command{
		IntParams:  []int{26},
		Opcode:     "#s",
		TextParams: []string{fromLong(row) + "/"},
	})
}

// GetFiscalMemoryRecord pulls the current record of the running read pass
// and advances it (#s 27). The record type is chosen by the literal reply
// prefix; an unrecognised prefix means the pass is complete and an empty
// record is returned.
func (d *Driver) GetFiscalMemoryRecord(ctx context.Context) (FiscalMemoryRecord, error) {
	payload, err := d.executeRead(ctx, Command{
		IntParams: []int{27},
		Opcode:    "#s",
	})
	if err != nil {
		return FiscalMemoryRecord{}, err
	}

	probe := newReader(payload)
	prefix := probe.oneOf("10#X", "11#X", "12#X", "13#X", "25#X")

	var record FiscalMemoryRecord

	switch prefix {
	case "10#X":
		record.Type = RecordDailyReport
	case "11#X":
		record.Type = RecordVatChange
	case "12#X":
		record.Type = RecordRamReset
	case "13#X":
		record.Type = RecordSellAfterRamReset
	default:
		record.Type = RecordEmpty
		return record, nil
	}

	r := probe
	record.Year = r.readInt()
	r.delim(';')
	record.Month = r.readInt()
	r.delim(';')
	record.Day = r.readInt()
	r.delim(';')
	record.Hour = r.readInt()
	r.delim(';')
	record.Minute = r.readInt()
	r.delim(';')
	record.Second = r.readInt()
	r.delim(';')

	switch record.Type {

	case RecordDailyReport:
		record.Receipts = r.readInt()
		r.delim(';')
		record.CancelledReceipts = r.readInt()
		r.delim(';')
		record.DatabaseChanges = r.readInt()
		r.delim(';')
		record.CancelledReceiptsValue = r.readReal()
		r.delim('/')
		record.TotA = r.readReal()
		r.delim('/')
		record.TotB = r.readReal()
		r.delim('/')
		record.TotC = r.readReal()
		r.delim('/')
		record.TotD = r.readReal()
		r.delim('/')
		record.TotE = r.readReal()
		r.delim('/')
		record.TotF = r.readReal()
		r.delim('/')
		record.TotG = r.readReal()
		r.delim('/')

	case RecordVatChange:
		r.readInt()
		r.delim(';')
		r.readInt()
		r.delim(';')
		r.readInt()
		r.delim(';')
		r.readInt()
		r.delim('/')
		record.VatA = r.readReal()
		r.delim('/')
		record.VatB = r.readReal()
		r.delim('/')
		record.VatC = r.readReal()
		r.delim('/')
		record.VatD = r.readReal()
		r.delim('/')
		record.VatE = r.readReal()
		r.delim('/')
		record.VatF = r.readReal()
		r.delim('/')
		record.VatG = r.readReal()
		r.delim('/')

	case RecordRamReset:
		record.Reason = r.readInt()
		r.delim(';')
		record.ResetNumber = r.readInt()
		r.delim(';')
		r.readInt()
		r.delim(';')
		r.readInt()
		r.delim('/')
		for i := 0; i < 7; i++ {
			r.readInt()
			r.delim('/')
		}

	case RecordSellAfterRamReset:
		r.readInt()
		r.delim(';')
		r.readInt()
		r.delim(';')
		r.readInt()
		r.delim(';')
		r.readInt()
		r.delim('/')
		for i := 0; i < 7; i++ {
			r.readInt()
			r.delim('/')
		}
	}

	d.logDecode("getFiscalMemoryRecord", payload, r)
	return record, nil
}
