// pkg/driver/types.go
package driver

import "time"

// DeviceInfo describes the connected fiscal printer
type DeviceInfo struct {
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	Version        string `json:"version"`
	UniqueNumber   string `json:"unique_number"`
	Manufacturer   string `json:"manufacturer"`
	ConnectionType string `json:"connection_type"`
}

// DeviceStatus is the live printer state
type DeviceStatus struct {
	Online        bool      `json:"online"`
	Fiscal        bool      `json:"fiscal"`
	Transaction   bool      `json:"transaction"`
	TransactionOk bool      `json:"transaction_ok"`
	PaperOut      bool      `json:"paper_out"`
	MechanismErr  bool      `json:"mechanism_error"`
	LastError     int       `json:"last_error"`
	LastErrorText string    `json:"last_error_text"`
	LastResponse  time.Time `json:"last_response"`
}

// OperationResult is the outcome of one executed operation
type OperationResult struct {
	Success   bool                   `json:"success"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Duration  string                 `json:"duration"`
	Timestamp time.Time              `json:"timestamp"`
}

// HealthMetrics tracks the driver's success history
type HealthMetrics struct {
	TotalOperations int64         `json:"total_operations"`
	ErrorCount      int64         `json:"error_count"`
	SuccessRate     float64       `json:"success_rate"`
	ResponseTime    time.Duration `json:"response_time"`
	HealthScore     int           `json:"health_score"`
	LastSuccessTime *time.Time    `json:"last_success_time,omitempty"`
	LastErrorTime   *time.Time    `json:"last_error_time,omitempty"`
}
