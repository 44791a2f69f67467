// internal/driver/novitus/frame.go
package novitus

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"fiscal-service/internal/protocol"
)

// Control bytes of the POSNET link protocol.
const (
	byteESC = 0x1b
	byteBEL = 0x07
	byteENQ = 0x05
	byteDLE = 0x10
	byteCAN = 0x18
)

var (
	frameStart = []byte{byteESC, 'P'}
	frameEnd   = []byte{byteESC, '\\'}
)

// ctrlByte computes the two-character control suffix: the uppercase hex
// representation of 0xFF XOR the XOR of all body bytes, zero-padded to two
// digits. The firmware rejects frames whose suffix is a single digit, so
// values below 0x10 must keep their leading zero.
func ctrlByte(body []byte) []byte {
	b := byte(0xff)
	for _, c := range body {
		b ^= c
	}
	return []byte(fmt.Sprintf("%02X", b))
}

// frame wraps a serialised command body in the ESC P … ESC \ envelope,
// appending the control suffix when the command requires it.
func frame(body []byte, withCtrl bool) []byte {
	out := make([]byte, 0, len(body)+6)
	out = append(out, frameStart...)
	out = append(out, body...)
	if withCtrl {
		out = append(out, ctrlByte(body)...)
	}
	out = append(out, frameEnd...)
	return out
}

// unframe strips the envelope from a received frame, discarding any noise
// before the ESC P marker. Used by tests; the live read path assembles payloads byte by byte in readFrame.
func unframe(data []byte) ([]byte, error) {
	start := bytes.Index(data, frameStart)
	if start < 0 {
		return nil, &FramingError{Msg: "no ESC P marker"}
	}
	end := bytes.Index(data[start+2:], frameEnd)
	if end < 0 {
		return nil, &FramingError{Msg: "no ESC \\ terminator"}
	}
	return data[start+2 : start+2+end], nil
}

// readFrame reads bytes until the ESC \ terminator and returns the payload
// between the first ESC P before it and the terminator. Leading garbage is
// discarded, matching the firmware's habit of echoing stray bytes before
// the reply proper.
func readFrame(ctx context.Context, conn protocol.Connection) ([]byte, error) {
	var buf []byte

	for {
		b, err := conn.ReadByte(ctx)
		if err != nil {
			if errors.Is(err, protocol.ErrReadTimeout) {
				return nil, &FramingError{Msg: "no complete frame before read timeout"}
			}
			return nil, &TransportError{Op: "readFrame", Err: err}
		}

		buf = append(buf, b)

		if len(buf) >= 2 && b == '\\' && buf[len(buf)-2] == byteESC {
			break
		}
	}

	payload := buf[:len(buf)-2]
	if pos := bytes.Index(payload, frameStart); pos >= 0 {
		payload = payload[pos+2:]
	}

	return payload, nil
}
