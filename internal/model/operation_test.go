// internal/model/operation_test.go
package model

import (
	"errors"
	"testing"
)

func TestJSONObjectValueScan(t *testing.T) {
	obj := JSONObject{"items": float64(3), "total": 12.5, "euro": false}

	value, err := obj.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var scanned JSONObject
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if scanned["total"] != 12.5 || scanned["euro"] != false {
		t.Errorf("scanned = %+v", scanned)
	}
}

func TestJSONObjectScanNil(t *testing.T) {
	var obj JSONObject
	if err := obj.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if obj != nil {
		t.Errorf("obj = %+v, want nil", obj)
	}
}

func TestPrinterOperationComplete(t *testing.T) {
	op := NewPrinterOperation(OperationTypeReceipt, JSONObject{"items": 2}, "req-1")

	if op.Status != OperationStatusProcessing {
		t.Fatalf("status = %s", op.Status)
	}

	op.Complete(nil)
	if op.Status != OperationStatusSuccess || op.CompletedAt == nil || op.DurationMs == nil {
		t.Errorf("completed op = %+v", op)
	}

	op = NewPrinterOperation(OperationTypeReceipt, nil, "req-2")
	op.Complete(errors.New("paper out"))
	if op.Status != OperationStatusFailed {
		t.Errorf("status = %s", op.Status)
	}
	if op.ErrorMessage == nil || *op.ErrorMessage != "paper out" {
		t.Errorf("error message = %v", op.ErrorMessage)
	}
}
