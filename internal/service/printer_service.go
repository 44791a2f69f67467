// internal/service/printer_service.go
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"fiscal-service/internal/config"
	"fiscal-service/internal/driver/novitus"
	"fiscal-service/internal/model"
	"fiscal-service/internal/protocol"
	"fiscal-service/internal/repository"
	"fiscal-service/internal/utils"
	"fiscal-service/pkg/driver"
)

// PrinterService owns the single fiscal printer connection. The driver
// underneath is strictly single-owner, so every operation goes through the
// service mutex; callers queue behind the running round-trip.
type PrinterService struct {
	driver        *novitus.Driver
	config        *config.Config
	logger        *utils.DeviceLogger
	operationRepo repository.OperationRepository
	eventHandler  driver.EventHandler

	mutex         sync.Mutex
	healthMetrics driver.HealthMetrics
	lastStatus    driver.DeviceStatus
}

// NewPrinterService wires the driver over the configured serial device.
func NewPrinterService(
	cfg *config.Config,
	operationRepo repository.OperationRepository,
	logger *zap.Logger,
) *PrinterService {
	serialConfig := &protocol.SerialConfig{
		Device:      cfg.Printer.Device,
		BaudRate:    cfg.Printer.BaudRate,
		DataBits:    cfg.Printer.DataBits,
		StopBits:    cfg.Printer.StopBits,
		Parity:      cfg.Printer.Parity,
		ReadTimeout: cfg.Printer.ReadTimeout,
	}

	conn := protocol.NewSerialConnection(serialConfig, logger)

	return &PrinterService{
		driver:        novitus.New(conn, logger),
		config:        cfg,
		logger:        utils.NewDeviceLogger(logger, cfg.Printer.Device, "NOVITUS"),
		operationRepo: operationRepo,
	}
}

// SetEventHandler registers the event sink.
func (s *PrinterService) SetEventHandler(handler driver.EventHandler) {
	s.eventHandler = handler
}

// Connect opens the serial link.
func (s *PrinterService) Connect(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.driver.Open(ctx); err != nil {
		s.logger.LogConnection("open", err)
		return fmt.Errorf("failed to open printer connection: %w", err)
	}

	s.logger.LogConnection("open", nil)
	if s.eventHandler != nil {
		s.eventHandler.OnPrinterConnected(s.config.Printer.Device)
	}
	return nil
}

// Disconnect closes the serial link. Idempotent.
func (s *PrinterService) Disconnect() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.driver.Close(); err != nil {
		s.logger.LogConnection("close", err)
		return err
	}

	s.logger.LogConnection("close", nil)
	if s.eventHandler != nil {
		s.eventHandler.OnPrinterDisconnected(s.config.Printer.Device, "manual disconnect")
	}
	return nil
}

// IsConnected reports whether the serial link is open.
func (s *PrinterService) IsConnected() bool {
	return s.driver.IsOpen()
}

// GetHealthMetrics returns a snapshot of the driver's success history.
func (s *PrinterService) GetHealthMetrics() driver.HealthMetrics {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.healthMetrics
}

// defaultID returns the configured register/cashier identifier.
func (s *PrinterService) defaultID() novitus.Id {
	return novitus.Id{
		PrinterID:  s.config.Printer.PrinterID,
		OperatorID: s.config.Printer.OperatorID,
	}
}

// run serialises one journaled printer operation.
func (s *PrinterService) run(
	ctx context.Context,
	opType model.OperationType,
	data model.JSONObject,
	requestID string,
	fn func(ctx context.Context) (map[string]interface{}, error),
) (*driver.OperationResult, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.driver.IsOpen() {
		return nil, fmt.Errorf("printer not connected")
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Printer.OperationTimeout)
	defer cancel()

	entry := model.NewPrinterOperation(opType, data, requestID)
	if s.operationRepo != nil {
		if err := s.operationRepo.Create(ctx, entry); err != nil {
			s.logger.Warn("Failed to journal operation", zap.Error(err))
		}
	}

	startTime := time.Now()
	result, err := fn(ctx)
	duration := time.Since(startTime)

	entry.Complete(err)
	if s.operationRepo != nil {
		if uerr := s.operationRepo.Update(ctx, entry); uerr != nil {
			s.logger.Warn("Failed to update operation journal", zap.Error(uerr))
		}
	}

	s.updateHealthMetrics(err == nil, duration)
	s.logger.LogOperation(string(opType), entry.ID.String(), duration, err)

	if s.eventHandler != nil {
		s.eventHandler.OnOperationCompleted(string(opType), entry.ID.String(), err == nil)
	}

	if err != nil {
		return nil, err
	}

	return &driver.OperationResult{
		Success:   true,
		Data:      result,
		Duration:  duration.String(),
		Timestamp: time.Now(),
	}, nil
}

// updateHealthMetrics folds one operation outcome into the counters.
func (s *PrinterService) updateHealthMetrics(success bool, responseTime time.Duration) {
	s.healthMetrics.TotalOperations++
	s.healthMetrics.ResponseTime = responseTime

	now := time.Now()
	if success {
		s.healthMetrics.LastSuccessTime = &now
	} else {
		s.healthMetrics.ErrorCount++
		s.healthMetrics.LastErrorTime = &now
	}

	s.healthMetrics.SuccessRate = float64(s.healthMetrics.TotalOperations-s.healthMetrics.ErrorCount) /
		float64(s.healthMetrics.TotalOperations)
	s.healthMetrics.HealthScore = int(s.healthMetrics.SuccessRate * 100)
}

// GetStatus polls ENQ, DLE and the last error code.
func (s *PrinterService) GetStatus(ctx context.Context, requestID string) (*driver.DeviceStatus, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.driver.IsOpen() {
		return nil, fmt.Errorf("printer not connected")
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Printer.OperationTimeout)
	defer cancel()

	enq, err := s.driver.GetEnqStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("ENQ status query failed: %w", err)
	}

	dle, err := s.driver.GetDleStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("DLE status query failed: %w", err)
	}

	lastError, err := s.driver.GetLastError(ctx)
	if err != nil {
		return nil, fmt.Errorf("last error query failed: %w", err)
	}

	status := driver.DeviceStatus{
		Online:        dle.Online,
		Fiscal:        enq.Fiscal,
		Transaction:   enq.Transaction,
		TransactionOk: enq.TransactionOk,
		PaperOut:      dle.Paper,
		MechanismErr:  dle.Error,
		LastError:     lastError.Code,
		LastErrorText: lastError.Message(),
		LastResponse:  time.Now(),
	}

	// Compare without the poll timestamp so only real changes publish.
	current := status
	current.LastResponse = time.Time{}
	if s.eventHandler != nil && current != s.lastStatus {
		s.eventHandler.OnStatusChanged(&status)
	}
	s.lastStatus = current

	return &status, nil
}

// GetDeviceInfo collects the firmware identity. The device info queries do
// not answer on every model, so their absence degrades to partial data.
func (s *PrinterService) GetDeviceInfo(ctx context.Context, requestID string) (*driver.OperationResult, error) {
	return s.run(ctx, model.OperationTypeDeviceInfo, nil, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		version, err := s.driver.GetVersionInfo(ctx)
		if err != nil {
			return nil, err
		}

		data := map[string]interface{}{
			"version": version,
		}

		if info1, err := s.driver.GetDeviceInfo1(ctx); err == nil {
			data["device_info_1"] = info1
		} else {
			s.logger.Warn("Device info 1 unavailable", zap.Error(err))
		}

		if info2, err := s.driver.GetDeviceInfo2(ctx); err == nil {
			data["device_info_2"] = info2
		} else {
			s.logger.Warn("Device info 2 unavailable", zap.Error(err))
		}

		return data, nil
	})
}

// GetTotalisers pulls the full totaliser snapshot.
func (s *PrinterService) GetTotalisers(ctx context.Context, mode novitus.CashRegisterInfo2Mode, invoices bool, requestID string) (*driver.OperationResult, error) {
	data := model.JSONObject{"mode": int(mode), "invoices": invoices}
	return s.run(ctx, model.OperationTypeStatus, data, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		info, err := s.driver.GetCashRegisterInfo2(ctx, mode, invoices)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"totalisers": info}, nil
	})
}

// GetClock reads the printer clock.
func (s *PrinterService) GetClock(ctx context.Context, requestID string) (*driver.OperationResult, error) {
	return s.run(ctx, model.OperationTypeClock, nil, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		clock, err := s.driver.GetClock(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"clock": clock}, nil
	})
}

// SetClock programs the printer clock.
func (s *PrinterService) SetClock(ctx context.Context, t time.Time, requestID string) (*driver.OperationResult, error) {
	data := model.JSONObject{"time": t.Format(time.RFC3339)}
	return s.run(ctx, model.OperationTypeClock, data, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		err := s.driver.SetClock(ctx, s.defaultID(),
			t.Year()%100, int(t.Month()), t.Day(),
			t.Hour(), t.Minute(), t.Second(),
		)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"set": true}, nil
	})
}

// ReceiptRequest is one complete receipt transaction.
type ReceiptRequest struct {
	Items         []novitus.Item                  `json:"items" binding:"required,min=1"`
	ExtraLines    novitus.ExtraLines              `json:"extra_lines"`
	ClientIDType  novitus.ClientIDType            `json:"client_id_type"`
	ClientID      string                          `json:"client_id"`
	CashIn        float64                         `json:"cash_in"`
	Total         float64                         `json:"total" binding:"required"`
	DiscountType  novitus.TransactionDiscountType `json:"discount_type"`
	DiscountValue float64                         `json:"discount_value"`
	NextHeader    bool                            `json:"next_header"`
}

// PrintReceipt runs the whole transaction lifecycle: begin, one line per
// item, confirm. A failure mid-receipt cancels the open transaction so the
// printer returns to idle.
func (s *PrinterService) PrintReceipt(ctx context.Context, req *ReceiptRequest, requestID string) (*driver.OperationResult, error) {
	data := model.JSONObject{"items": len(req.Items), "total": req.Total}
	return s.run(ctx, model.OperationTypeReceipt, data, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		if err := s.driver.BeginTransaction(ctx, len(req.Items), req.ExtraLines, req.ClientIDType, req.ClientID); err != nil {
			return nil, fmt.Errorf("begin transaction: %w", err)
		}

		for i, item := range req.Items {
			if err := s.driver.PrintReceiptLine(ctx, item); err != nil {
				if cerr := s.driver.CancelTransaction(ctx, s.defaultID()); cerr != nil {
					s.logger.Error("Failed to cancel transaction after line error", zap.Error(cerr))
				}
				return nil, fmt.Errorf("receipt line %d: %w", i+1, err)
			}
		}

		err := s.driver.ConfirmTransaction(ctx, s.defaultID(),
			req.CashIn, req.Total, req.DiscountType, req.DiscountValue, req.ExtraLines)
		if err != nil {
			if cerr := s.driver.CancelTransaction(ctx, s.defaultID()); cerr != nil {
				s.logger.Error("Failed to cancel transaction after confirm error", zap.Error(cerr))
			}
			return nil, fmt.Errorf("confirm transaction: %w", err)
		}

		return map[string]interface{}{
			"printed": true,
			"lines":   len(req.Items),
			"total":   req.Total,
		}, nil
	})
}

// InvoiceRequest is one complete VAT invoice.
type InvoiceRequest struct {
	Begin  novitus.BeginInvoiceData  `json:"begin" binding:"required"`
	Items  []novitus.Item            `json:"items" binding:"required,min=1"`
	Finish novitus.FinishInvoiceData `json:"finish"`
}

// PrintInvoice runs the invoice lifecycle: begin, lines, finish.
func (s *PrinterService) PrintInvoice(ctx context.Context, req *InvoiceRequest, requestID string) (*driver.OperationResult, error) {
	data := model.JSONObject{"invoice_nr": req.Begin.InvoiceNr, "items": len(req.Items)}
	return s.run(ctx, model.OperationTypeInvoice, data, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		begin := req.Begin
		begin.Items = len(req.Items)

		if err := s.driver.BeginInvoice(ctx, begin); err != nil {
			return nil, fmt.Errorf("begin invoice: %w", err)
		}

		for i, item := range req.Items {
			if err := s.driver.PrintReceiptLine(ctx, item); err != nil {
				if cerr := s.driver.CancelTransaction(ctx, s.defaultID()); cerr != nil {
					s.logger.Error("Failed to cancel invoice after line error", zap.Error(cerr))
				}
				return nil, fmt.Errorf("invoice line %d: %w", i+1, err)
			}
		}

		if err := s.driver.FinishInvoice(ctx, s.defaultID(), req.Finish); err != nil {
			return nil, fmt.Errorf("finish invoice: %w", err)
		}

		return map[string]interface{}{
			"printed":    true,
			"invoice_nr": req.Begin.InvoiceNr,
			"lines":      len(req.Items),
		}, nil
	})
}

// NonFiscalRequest is one complete non-fiscal printout.
type NonFiscalRequest struct {
	PrintNr    int                     `json:"print_nr" binding:"required"`
	HeaderNr   int                     `json:"header_nr"`
	Lines      []novitus.NonFiscalLine `json:"lines" binding:"required,min=1"`
	SysNr      string                  `json:"sys_nr"`
	ExtraLines novitus.ExtraLines      `json:"extra_lines"`
}

// PrintNonFiscal runs the non-fiscal printout lifecycle.
func (s *PrinterService) PrintNonFiscal(ctx context.Context, req *NonFiscalRequest, requestID string) (*driver.OperationResult, error) {
	data := model.JSONObject{"print_nr": req.PrintNr, "lines": len(req.Lines)}
	return s.run(ctx, model.OperationTypeNonFiscal, data, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		if err := s.driver.BeginNonFiscal(ctx, req.PrintNr, req.HeaderNr); err != nil {
			return nil, fmt.Errorf("begin non-fiscal: %w", err)
		}

		for i, line := range req.Lines {
			if line.PrintNr == 0 {
				line.PrintNr = req.PrintNr
			}
			if err := s.driver.PrintNonFiscal(ctx, line); err != nil {
				return nil, fmt.Errorf("non-fiscal line %d: %w", i+1, err)
			}
		}

		if err := s.driver.FinishNonFiscal(ctx, req.PrintNr, req.SysNr, req.ExtraLines); err != nil {
			return nil, fmt.Errorf("finish non-fiscal: %w", err)
		}

		return map[string]interface{}{"printed": true, "lines": len(req.Lines)}, nil
	})
}

// PrintDailyReport prints the daily fiscal report.
func (s *PrinterService) PrintDailyReport(ctx context.Context, requestID string) (*driver.OperationResult, error) {
	return s.run(ctx, model.OperationTypeDailyReport, nil, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		if err := s.driver.PrintDailyReport(ctx, s.defaultID()); err != nil {
			return nil, err
		}
		return map[string]interface{}{"printed": true}, nil
	})
}

// PeriodicalReportRequest selects a periodical report range.
type PeriodicalReportRequest struct {
	ByDate    bool                         `json:"by_date"`
	FromYear  int                          `json:"from_year"`
	FromMonth int                          `json:"from_month"`
	FromDay   int                          `json:"from_day"`
	ToYear    int                          `json:"to_year"`
	ToMonth   int                          `json:"to_month"`
	ToDay     int                          `json:"to_day"`
	FromNr    int64                        `json:"from_nr"`
	ToNr      int64                        `json:"to_nr"`
	Type      novitus.PeriodicalReportType `json:"type"`
}

// PrintPeriodicalReport prints a periodical report by date or by number.
func (s *PrinterService) PrintPeriodicalReport(ctx context.Context, req *PeriodicalReportRequest, requestID string) (*driver.OperationResult, error) {
	data := model.JSONObject{"by_date": req.ByDate, "type": int(req.Type)}
	return s.run(ctx, model.OperationTypePeriodicalReport, data, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		var err error
		if req.ByDate {
			err = s.driver.PrintPeriodicalReportByDate(ctx, s.defaultID(),
				req.FromYear, req.FromMonth, req.FromDay,
				req.ToYear, req.ToMonth, req.ToDay, req.Type)
		} else {
			err = s.driver.PrintPeriodicalReportByNumber(ctx, s.defaultID(), req.FromNr, req.ToNr, req.Type)
		}
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"printed": true}, nil
	})
}

// PrintShiftReport prints the shift report.
func (s *PrinterService) PrintShiftReport(ctx context.Context, reset bool, shift string, requestID string) (*driver.OperationResult, error) {
	data := model.JSONObject{"reset": reset, "shift": shift}
	return s.run(ctx, model.OperationTypeShiftReport, data, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		if err := s.driver.PrintShiftReport(ctx, s.defaultID(), reset, shift); err != nil {
			return nil, err
		}
		return map[string]interface{}{"printed": true}, nil
	})
}

// PrintCashState prints the drawer state report.
func (s *PrinterService) PrintCashState(ctx context.Context, requestID string) (*driver.OperationResult, error) {
	return s.run(ctx, model.OperationTypeCashState, nil, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		if err := s.driver.PrintCashState(ctx, s.defaultID()); err != nil {
			return nil, err
		}
		return map[string]interface{}{"printed": true}, nil
	})
}

// CashMovementRequest registers a payment into or out of the drawer.
type CashMovementRequest struct {
	Direction string  `json:"direction" binding:"required,oneof=in out"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Euro      bool    `json:"euro"`
}

// CashMovement registers a drawer payment or withdrawal.
func (s *PrinterService) CashMovement(ctx context.Context, req *CashMovementRequest, requestID string) (*driver.OperationResult, error) {
	data := model.JSONObject{"direction": req.Direction, "amount": req.Amount, "euro": req.Euro}
	return s.run(ctx, model.OperationTypeCashMovement, data, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		var err error
		if req.Direction == "in" {
			err = s.driver.PaymentToCash(ctx, s.defaultID(), req.Amount, req.Euro)
		} else {
			err = s.driver.WithdrawalFromCash(ctx, s.defaultID(), req.Amount, req.Euro)
		}
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"registered": true}, nil
	})
}

// FiscalMemoryRequest selects the start of a fiscal memory read pass.
type FiscalMemoryRequest struct {
	ByDate bool  `json:"by_date"`
	Year   int   `json:"year"`
	Month  int   `json:"month"`
	Day    int   `json:"day"`
	Row    int64 `json:"row"`
	Limit  int   `json:"limit"`
}

// ReadFiscalMemory starts a read pass and pulls records until the printer
// reports the end or the limit is reached.
func (s *PrinterService) ReadFiscalMemory(ctx context.Context, req *FiscalMemoryRequest, requestID string) (*driver.OperationResult, error) {
	limit := req.Limit
	if limit <= 0 || limit > 2000 {
		limit = 2000
	}

	data := model.JSONObject{"by_date": req.ByDate, "limit": limit}
	return s.run(ctx, model.OperationTypeFiscalMemory, data, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		var err error
		if req.ByDate {
			err = s.driver.BeginFiscalMemoryReadByDate(ctx, req.Year, req.Month, req.Day, 0, 0, 0)
		} else {
			err = s.driver.BeginFiscalMemoryReadByRow(ctx, req.Row)
		}
		if err != nil {
			return nil, fmt.Errorf("begin fiscal memory read: %w", err)
		}

		var records []novitus.FiscalMemoryRecord
		for len(records) < limit {
			record, err := s.driver.GetFiscalMemoryRecord(ctx)
			if err != nil {
				return nil, fmt.Errorf("fiscal memory record %d: %w", len(records)+1, err)
			}
			if record.Type == novitus.RecordEmpty {
				break
			}
			records = append(records, record)
		}

		return map[string]interface{}{
			"records": records,
			"count":   len(records),
		}, nil
	})
}

// OpenDrawer opens the cash drawer.
func (s *PrinterService) OpenDrawer(ctx context.Context, requestID string) (*driver.OperationResult, error) {
	return s.run(ctx, model.OperationTypeDrawer, nil, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		if err := s.driver.OpenDrawer(ctx); err != nil {
			return nil, err
		}
		return map[string]interface{}{"opened": true}, nil
	})
}

// DisplayMessage sends a text to the customer display.
func (s *PrinterService) DisplayMessage(ctx context.Context, message string, requestID string) (*driver.OperationResult, error) {
	data := model.JSONObject{"message": message}
	return s.run(ctx, model.OperationTypeDisplay, data, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		if err := s.driver.SetDisplayMessage(ctx, message); err != nil {
			return nil, err
		}
		return map[string]interface{}{"displayed": true}, nil
	})
}

// PaperFeed advances the paper.
func (s *PrinterService) PaperFeed(ctx context.Context, lines int, requestID string) (*driver.OperationResult, error) {
	if lines < 1 || lines > 20 {
		return nil, fmt.Errorf("paper feed lines must be between 1 and 20")
	}

	data := model.JSONObject{"lines": lines}
	return s.run(ctx, model.OperationTypeMaintenance, data, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		if err := s.driver.PaperFeed(ctx, lines); err != nil {
			return nil, err
		}
		return map[string]interface{}{"fed": lines}, nil
	})
}

// Bell sounds the printer's audible signal.
func (s *PrinterService) Bell(ctx context.Context, requestID string) (*driver.OperationResult, error) {
	return s.run(ctx, model.OperationTypeMaintenance, nil, requestID, func(ctx context.Context) (map[string]interface{}, error) {
		if err := s.driver.Bell(ctx); err != nil {
			return nil, err
		}
		return map[string]interface{}{"bell": true}, nil
	})
}

// ListOperations returns recent journal entries.
func (s *PrinterService) ListOperations(ctx context.Context, limit, offset int) ([]*model.PrinterOperation, error) {
	if s.operationRepo == nil {
		return nil, fmt.Errorf("operation journal not configured")
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return s.operationRepo.List(ctx, limit, offset)
}
