// internal/model/operation.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OperationType names one fiscal printer operation family exposed by the
// service.
type OperationType string

const (
	OperationTypeStatus           OperationType = "STATUS"
	OperationTypeDeviceInfo       OperationType = "DEVICE_INFO"
	OperationTypeClock            OperationType = "CLOCK"
	OperationTypeReceipt          OperationType = "RECEIPT"
	OperationTypeInvoice          OperationType = "INVOICE"
	OperationTypeNonFiscal        OperationType = "NON_FISCAL"
	OperationTypeDailyReport      OperationType = "DAILY_REPORT"
	OperationTypePeriodicalReport OperationType = "PERIODICAL_REPORT"
	OperationTypeShiftReport      OperationType = "SHIFT_REPORT"
	OperationTypeCashState        OperationType = "CASH_STATE"
	OperationTypeCashMovement     OperationType = "CASH_MOVEMENT"
	OperationTypeFiscalMemory     OperationType = "FISCAL_MEMORY"
	OperationTypeDrawer           OperationType = "OPEN_DRAWER"
	OperationTypeDisplay          OperationType = "DISPLAY"
	OperationTypeMaintenance      OperationType = "MAINTENANCE"
)

// OperationStatus represents the status of a journaled operation
type OperationStatus string

const (
	OperationStatusProcessing OperationStatus = "PROCESSING"
	OperationStatusSuccess    OperationStatus = "SUCCESS"
	OperationStatusFailed     OperationStatus = "FAILED"
)

// JSONObject is a JSON column payload
type JSONObject map[string]interface{}

// Value implements driver.Valuer for JSONObject
func (j JSONObject) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner for JSONObject
func (j *JSONObject) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSONObject: %T", value)
	}

	return json.Unmarshal(data, j)
}

// PrinterOperation is one journaled printer operation
type PrinterOperation struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	OperationType OperationType   `json:"operation_type" db:"operation_type"`
	OperationData JSONObject      `json:"operation_data" db:"operation_data"`
	Status        OperationStatus `json:"status" db:"status"`
	StartedAt     time.Time       `json:"started_at" db:"started_at"`
	CompletedAt   *time.Time      `json:"completed_at" db:"completed_at"`
	DurationMs    *int            `json:"duration_ms" db:"duration_ms"`
	ErrorMessage  *string         `json:"error_message" db:"error_message"`
	PrinterCode   *int            `json:"printer_code" db:"printer_code"`
	RequestID     string          `json:"request_id" db:"request_id"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// NewPrinterOperation starts a journal entry for one operation
func NewPrinterOperation(opType OperationType, data JSONObject, requestID string) *PrinterOperation {
	return &PrinterOperation{
		ID:            uuid.New(),
		OperationType: opType,
		OperationData: data,
		Status:        OperationStatusProcessing,
		StartedAt:     time.Now(),
		RequestID:     requestID,
	}
}

// Complete marks the entry finished, recording the failure when err is set.
func (op *PrinterOperation) Complete(err error) {
	now := time.Now()
	op.CompletedAt = &now

	duration := int(now.Sub(op.StartedAt).Milliseconds())
	op.DurationMs = &duration

	if err != nil {
		op.Status = OperationStatusFailed
		msg := err.Error()
		op.ErrorMessage = &msg
	} else {
		op.Status = OperationStatusSuccess
	}
}
