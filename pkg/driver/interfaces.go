// pkg/driver/interfaces.go
package driver

// EventHandler receives printer lifecycle and operation events. The
// websocket layer implements it to stream events to subscribers.
type EventHandler interface {
	OnPrinterConnected(device string)
	OnPrinterDisconnected(device string, reason string)
	OnStatusChanged(status *DeviceStatus)
	OnOperationCompleted(operationType string, operationID string, success bool)
}
