// internal/driver/novitus/driver.go
package novitus

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"fiscal-service/internal/protocol"
)

// Driver speaks the NOVITUS/POSNET protocol over one Connection. It is
// strictly request/response and offers no internal locking: the connection
// is exclusively owned by one caller for the duration of a call, and
// concurrent callers must serialise externally.
type Driver struct {
	conn   protocol.Connection
	logger *zap.Logger
}

// New creates a driver over an opened or yet-to-be-opened connection.
func New(conn protocol.Connection, logger *zap.Logger) *Driver {
	return &Driver{
		conn: conn,
		logger: logger.With(
			zap.String("brand", "NOVITUS"),
			zap.String("component", "fiscal-driver"),
		),
	}
}

// Open acquires the underlying connection.
func (d *Driver) Open(ctx context.Context) error {
	return d.conn.Open(ctx)
}

// Close releases the underlying connection. Idempotent.
func (d *Driver) Close() error {
	return d.conn.Close()
}

// IsOpen reports whether the underlying connection is open.
func (d *Driver) IsOpen() bool {
	return d.conn.IsOpen()
}

// execute frames and writes one command.
func (d *Driver) execute(ctx context.Context, cmd Command) error {
	data := frame(cmd.encode(), cmd.WithCtrl)

	if err := d.conn.Write(ctx, data); err != nil {
		return &TransportError{Op: "write " + cmd.Opcode, Err: err}
	}

	d.logger.Debug("Command written",
		zap.String("opcode", cmd.Opcode),
		zap.Int("frame_bytes", len(data)),
	)

	return nil
}

// executeRead frames and writes one command, then blocks for the reply
// frame and returns its payload.
func (d *Driver) executeRead(ctx context.Context, cmd Command) ([]byte, error) {
	if err := d.execute(ctx, cmd); err != nil {
		return nil, err
	}

	payload, err := readFrame(ctx, d.conn)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("Reply received",
		zap.String("opcode", cmd.Opcode),
		zap.Int("payload_bytes", len(payload)),
	)

	return payload, nil
}

// writeControl sends a single out-of-band control byte.
func (d *Driver) writeControl(ctx context.Context, b byte) error {
	if err := d.conn.Write(ctx, []byte{b}); err != nil {
		return &TransportError{Op: "write control byte", Err: err}
	}
	return nil
}

// readStatusByte reads single bytes until one in [lo, hi] arrives. ENQ and
// DLE replies are single bytes in a fixed value range; anything else on the
// wire is unrelated traffic and is skipped.
func (d *Driver) readStatusByte(ctx context.Context, lo, hi byte) (byte, error) {
	for {
		b, err := d.conn.ReadByte(ctx)
		if err != nil {
			if errors.Is(err, protocol.ErrReadTimeout) {
				return 0, &FramingError{Msg: "no status byte before read timeout"}
			}
			return 0, &TransportError{Op: "read status byte", Err: err}
		}
		if b >= lo && b <= hi {
			return b, nil
		}
	}
}

// logDecode records a reply that did not fully match its grammar. Decode
// mismatches leave the record at its defaults and never fail the operation.
func (d *Driver) logDecode(op string, payload []byte, r *reader) {
	if r.ok() {
		return
	}
	err := &DecodeError{Op: op, Payload: string(payload)}
	d.logger.Warn("Reply decoded partially", zap.Error(err))
}
