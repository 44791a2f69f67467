// internal/driver/novitus/mock_test.go
package novitus

import (
	"bytes"
	"context"

	"go.uber.org/zap"

	"fiscal-service/internal/protocol"
)

// mockConn is an in-memory Connection: it records every write and replays
// a canned byte stream on reads. Reading past the end reports a timeout,
// like an idle serial line would.
type mockConn struct {
	isOpen bool
	writes [][]byte
	reply  []byte
	pos    int
}

func newMockConn(reply ...byte) *mockConn {
	return &mockConn{isOpen: true, reply: reply}
}

func (m *mockConn) Open(ctx context.Context) error {
	m.isOpen = true
	return nil
}

func (m *mockConn) Close() error {
	m.isOpen = false
	return nil
}

func (m *mockConn) IsOpen() bool { return m.isOpen }

func (m *mockConn) Write(ctx context.Context, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)
	m.writes = append(m.writes, buf)
	return nil
}

func (m *mockConn) ReadByte(ctx context.Context) (byte, error) {
	if m.pos >= len(m.reply) {
		return 0, protocol.ErrReadTimeout
	}
	b := m.reply[m.pos]
	m.pos++
	return b, nil
}

// written returns everything written so far as one byte string.
func (m *mockConn) written() []byte {
	return bytes.Join(m.writes, nil)
}

// framedReply builds a reply byte stream carrying one framed payload.
func framedReply(payload string) []byte {
	var buf []byte
	buf = append(buf, 0x1b, 'P')
	buf = append(buf, payload...)
	buf = append(buf, 0x1b, '\\')
	return buf
}

func testDriver(conn *mockConn) *Driver {
	return New(conn, zap.NewNop())
}
