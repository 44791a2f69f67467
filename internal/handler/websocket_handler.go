// internal/handler/websocket_handler.go
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"fiscal-service/pkg/driver"
)

// WebSocketHandler streams printer events to websocket clients and acts
// as the service's event sink.
type WebSocketHandler struct {
	eventBus *EventBus
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewWebSocketHandler creates a new websocket handler
func NewWebSocketHandler(logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		eventBus: NewEventBus(logger),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger,
	}
}

// RegisterRoutes registers websocket routes
func (h *WebSocketHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/events", h.HandleEventConnection)
}

// HandleEventConnection upgrades the connection and streams events until
// the client goes away.
func (h *WebSocketHandler) HandleEventConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	events, unsubscribe := h.eventBus.Subscribe()
	defer unsubscribe()

	h.logger.Info("WebSocket client connected",
		zap.String("remote", conn.RemoteAddr().String()),
	)

	// Reader goroutine: only there to observe the close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				h.logger.Debug("WebSocket write failed", zap.Error(err))
				return
			}

		case <-ping.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-done:
			h.logger.Info("WebSocket client disconnected")
			return
		}
	}
}

// The handler implements driver.EventHandler so the printer service can
// publish through it.

// OnPrinterConnected publishes a connect event
func (h *WebSocketHandler) OnPrinterConnected(device string) {
	h.eventBus.Publish(Event{
		Type:   "printer.connected",
		Source: device,
		Data:   map[string]interface{}{"status": "online"},
	})
}

// OnPrinterDisconnected publishes a disconnect event
func (h *WebSocketHandler) OnPrinterDisconnected(device string, reason string) {
	h.eventBus.Publish(Event{
		Type:   "printer.disconnected",
		Source: device,
		Data:   map[string]interface{}{"reason": reason},
	})
}

// OnStatusChanged publishes a status change event
func (h *WebSocketHandler) OnStatusChanged(status *driver.DeviceStatus) {
	h.eventBus.Publish(Event{
		Type:   "printer.status",
		Source: "fiscal-printer",
		Data: map[string]interface{}{
			"online":      status.Online,
			"fiscal":      status.Fiscal,
			"transaction": status.Transaction,
			"paper_out":   status.PaperOut,
			"error":       status.MechanismErr,
			"last_error":  status.LastError,
		},
	})
}

// OnOperationCompleted publishes an operation outcome event
func (h *WebSocketHandler) OnOperationCompleted(operationType string, operationID string, success bool) {
	h.eventBus.Publish(Event{
		Type:   "operation.completed",
		Source: "fiscal-printer",
		Data: map[string]interface{}{
			"operation_type": operationType,
			"operation_id":   operationID,
			"success":        success,
		},
	})
}
