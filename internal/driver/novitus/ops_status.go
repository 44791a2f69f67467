// internal/driver/novitus/ops_status.go
package novitus

import "context"

// Bell sounds the audible signal (BEL).
func (d *Driver) Bell(ctx context.Context) error {
	return d.writeControl(ctx, byteBEL)
}

// Cancel aborts interpretation of the current command (CAN). It does not
// abort a pending frame read on this side; a caller that needs to unblock
// a read closes the connection instead.
func (d *Driver) Cancel(ctx context.Context) error {
	return d.writeControl(ctx, byteCAN)
}

// GetEnqStatus performs the synchronous single-byte status query (ENQ).
// The reply is the first byte in 0x60..0x6F; bits 3/2/1/0 carry the flags.
func (d *Driver) GetEnqStatus(ctx context.Context) (EnqStatus, error) {
	if err := d.writeControl(ctx, byteENQ); err != nil {
		return EnqStatus{}, err
	}

	b, err := d.readStatusByte(ctx, 0x60, 0x6f)
	if err != nil {
		return EnqStatus{}, err
	}

	return decodeEnq(b), nil
}

// GetDleStatus performs the asynchronous single-byte status query (DLE).
// The reply is the first byte in 0x70..0x77; bits 2/1/0 carry the flags.
func (d *Driver) GetDleStatus(ctx context.Context) (DleStatus, error) {
	if err := d.writeControl(ctx, byteDLE); err != nil {
		return DleStatus{}, err
	}

	b, err := d.readStatusByte(ctx, 0x70, 0x77)
	if err != nil {
		return DleStatus{}, err
	}

	return decodeDle(b), nil
}

func decodeEnq(b byte) EnqStatus {
	return EnqStatus{
		Fiscal:        b&0x08 != 0,
		Command:       b&0x04 != 0,
		Transaction:   b&0x02 != 0,
		TransactionOk: b&0x01 != 0,
	}
}

func decodeDle(b byte) DleStatus {
	return DleStatus{
		Online: b&0x04 != 0,
		Paper:  b&0x02 != 0,
		Error:  b&0x01 != 0,
	}
}

// SetErrorHandlingMode selects the firmware's error reporting mode (#e).
func (d *Driver) SetErrorHandlingMode(ctx context.Context, mode ErrorHandlingMode) error {
	return d.execute(ctx, Command{
		IntParams: []int{int(mode)},
		Opcode:    "#e",
		WithCtrl:  true,
	})
}

// GetLastError asks for the error code of the last command (#n). Despite
// the documentation the status is reset by this query on some firmware.
func (d *Driver) GetLastError(ctx context.Context) (PrinterError, error) {
	payload, err := d.executeRead(ctx, Command{
		IntParams: []int{0}, // parameter ignored
		Opcode:    "#n",
	})
	if err != nil {
		return PrinterError{}, err
	}

	r := newReader(payload)
	r.literal("1#E")
	code := r.readInt()
	d.logDecode("getLastError", payload, r)

	return PrinterError{Code: code}, nil
}
