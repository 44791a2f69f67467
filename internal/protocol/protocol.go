// internal/protocol/protocol.go
package protocol

import (
	"context"
	"time"
)

// Connection represents a byte-level link to a fiscal printer. The driver
// above it owns framing and command semantics; a Connection only moves bytes.
type Connection interface {
	// Connection lifecycle
	Open(ctx context.Context) error
	Close() error
	IsOpen() bool

	// Data communication
	Write(ctx context.Context, data []byte) error
	ReadByte(ctx context.Context) (byte, error)
}

// Stats provides connection-level statistics
type Stats struct {
	BytesWritten int64     `json:"bytes_written"`
	BytesRead    int64     `json:"bytes_read"`
	ErrorCount   int64     `json:"error_count"`
	LastActivity time.Time `json:"last_activity"`
	IsConnected  bool      `json:"is_connected"`
}
