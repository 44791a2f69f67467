// internal/handler/printer_handler.go
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fiscal-service/internal/driver/novitus"
	"fiscal-service/internal/service"
	"fiscal-service/internal/utils"
)

// PrinterHandler exposes the fiscal printer operations over HTTP
type PrinterHandler struct {
	printerService *service.PrinterService
	logger         *zap.Logger
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService, logger *zap.Logger) *PrinterHandler {
	return &PrinterHandler{
		printerService: printerService,
		logger:         logger,
	}
}

// RegisterRoutes registers printer routes
func (h *PrinterHandler) RegisterRoutes(api *gin.RouterGroup) {
	printer := api.Group("/printer")
	{
		printer.POST("/connect", h.Connect)
		printer.POST("/disconnect", h.Disconnect)

		printer.GET("/status", h.GetStatus)
		printer.GET("/info", h.GetDeviceInfo)
		printer.GET("/totalisers", h.GetTotalisers)

		printer.GET("/clock", h.GetClock)
		printer.PUT("/clock", h.SetClock)

		printer.POST("/receipt", h.PrintReceipt)
		printer.POST("/invoice", h.PrintInvoice)
		printer.POST("/non-fiscal", h.PrintNonFiscal)

		printer.POST("/reports/daily", h.PrintDailyReport)
		printer.POST("/reports/periodical", h.PrintPeriodicalReport)
		printer.POST("/reports/shift", h.PrintShiftReport)

		printer.POST("/cash/state", h.PrintCashState)
		printer.POST("/cash/movement", h.CashMovement)

		printer.GET("/fiscal-memory", h.ReadFiscalMemory)

		printer.POST("/drawer", h.OpenDrawer)
		printer.POST("/display", h.DisplayMessage)
		printer.POST("/feed", h.PaperFeed)
		printer.POST("/bell", h.Bell)

		printer.GET("/operations", h.ListOperations)
	}
}

func requestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// Connect opens the printer connection
// @Summary Connect to the printer
// @Tags printer
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /printer/connect [post]
func (h *PrinterHandler) Connect(c *gin.Context) {
	if err := h.printerService.Connect(c.Request.Context()); err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to connect to printer", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Printer connected", nil)
}

// Disconnect closes the printer connection
func (h *PrinterHandler) Disconnect(c *gin.Context) {
	if err := h.printerService.Disconnect(); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to disconnect printer", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Printer disconnected", nil)
}

// GetStatus polls the printer status bytes and the last error code
// @Summary Printer status
// @Tags printer
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /printer/status [get]
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status, err := h.printerService.GetStatus(c.Request.Context(), requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to read printer status", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Printer status", status)
}

// GetDeviceInfo reads the firmware identity
func (h *PrinterHandler) GetDeviceInfo(c *gin.Context) {
	result, err := h.printerService.GetDeviceInfo(c.Request.Context(), requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to read device info", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Device info", result)
}

// GetTotalisers reads the totaliser snapshot
func (h *PrinterHandler) GetTotalisers(c *gin.Context) {
	mode := 23
	if v := c.Query("mode"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			mode = parsed
		}
	}
	invoices := c.Query("invoices") == "true"

	result, err := h.printerService.GetTotalisers(c.Request.Context(),
		novitus.CashRegisterInfo2Mode(mode), invoices, requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to read totalisers", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Totalisers", result)
}

// GetClock reads the printer clock
func (h *PrinterHandler) GetClock(c *gin.Context) {
	result, err := h.printerService.GetClock(c.Request.Context(), requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to read clock", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Printer clock", result)
}

// SetClockRequest carries the new clock value
type SetClockRequest struct {
	Time time.Time `json:"time" binding:"required"`
}

// SetClock programs the printer clock
func (h *PrinterHandler) SetClock(c *gin.Context) {
	var req SetClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.printerService.SetClock(c.Request.Context(), req.Time, requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to set clock", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Clock set", result)
}

// PrintReceipt prints one fiscal receipt
// @Summary Print a fiscal receipt
// @Tags printer
// @Accept json
// @Produce json
// @Param receipt body service.ReceiptRequest true "Receipt"
// @Success 200 {object} utils.APIResponse
// @Router /printer/receipt [post]
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	var req service.ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid receipt request", err)
		return
	}

	result, err := h.printerService.PrintReceipt(c.Request.Context(), &req, requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to print receipt", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Receipt printed", result)
}

// PrintInvoice prints one VAT invoice
func (h *PrinterHandler) PrintInvoice(c *gin.Context) {
	var req service.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid invoice request", err)
		return
	}

	result, err := h.printerService.PrintInvoice(c.Request.Context(), &req, requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to print invoice", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Invoice printed", result)
}

// PrintNonFiscal prints one non-fiscal document
func (h *PrinterHandler) PrintNonFiscal(c *gin.Context) {
	var req service.NonFiscalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid non-fiscal request", err)
		return
	}

	result, err := h.printerService.PrintNonFiscal(c.Request.Context(), &req, requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to print non-fiscal document", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Non-fiscal document printed", result)
}

// PrintDailyReport prints the daily fiscal report
func (h *PrinterHandler) PrintDailyReport(c *gin.Context) {
	result, err := h.printerService.PrintDailyReport(c.Request.Context(), requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to print daily report", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Daily report printed", result)
}

// PrintPeriodicalReport prints a periodical report
func (h *PrinterHandler) PrintPeriodicalReport(c *gin.Context) {
	var req service.PeriodicalReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid report request", err)
		return
	}

	result, err := h.printerService.PrintPeriodicalReport(c.Request.Context(), &req, requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to print periodical report", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Periodical report printed", result)
}

// ShiftReportRequest selects the shift report parameters
type ShiftReportRequest struct {
	Reset bool   `json:"reset"`
	Shift string `json:"shift" binding:"required,max=8"`
}

// PrintShiftReport prints the shift report
func (h *PrinterHandler) PrintShiftReport(c *gin.Context) {
	var req ShiftReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid shift report request", err)
		return
	}

	result, err := h.printerService.PrintShiftReport(c.Request.Context(), req.Reset, req.Shift, requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to print shift report", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Shift report printed", result)
}

// PrintCashState prints the drawer state report
func (h *PrinterHandler) PrintCashState(c *gin.Context) {
	result, err := h.printerService.PrintCashState(c.Request.Context(), requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to print cash state", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Cash state printed", result)
}

// CashMovement registers a drawer payment or withdrawal
func (h *PrinterHandler) CashMovement(c *gin.Context) {
	var req service.CashMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid cash movement request", err)
		return
	}

	result, err := h.printerService.CashMovement(c.Request.Context(), &req, requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to register cash movement", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Cash movement registered", result)
}

// ReadFiscalMemory pulls fiscal memory records
func (h *PrinterHandler) ReadFiscalMemory(c *gin.Context) {
	req := service.FiscalMemoryRequest{}

	if v := c.Query("row"); v != "" {
		row, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid row", err)
			return
		}
		req.Row = row
	} else {
		req.ByDate = true
		req.Year = queryInt(c, "year", 0)
		req.Month = queryInt(c, "month", 1)
		req.Day = queryInt(c, "day", 1)
	}
	req.Limit = queryInt(c, "limit", 100)

	result, err := h.printerService.ReadFiscalMemory(c.Request.Context(), &req, requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to read fiscal memory", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Fiscal memory records", result)
}

// OpenDrawer opens the cash drawer
func (h *PrinterHandler) OpenDrawer(c *gin.Context) {
	result, err := h.printerService.OpenDrawer(c.Request.Context(), requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to open drawer", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Drawer opened", result)
}

// DisplayMessageRequest carries the display text
type DisplayMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// DisplayMessage sends a text to the customer display
func (h *PrinterHandler) DisplayMessage(c *gin.Context) {
	var req DisplayMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid display request", err)
		return
	}

	result, err := h.printerService.DisplayMessage(c.Request.Context(), req.Message, requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to display message", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Message displayed", result)
}

// PaperFeedRequest carries the line count
type PaperFeedRequest struct {
	Lines int `json:"lines" binding:"required,min=1,max=20"`
}

// PaperFeed advances the paper
func (h *PrinterHandler) PaperFeed(c *gin.Context) {
	var req PaperFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid feed request", err)
		return
	}

	result, err := h.printerService.PaperFeed(c.Request.Context(), req.Lines, requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to feed paper", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Paper fed", result)
}

// Bell sounds the printer's audible signal
func (h *PrinterHandler) Bell(c *gin.Context) {
	result, err := h.printerService.Bell(c.Request.Context(), requestID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to sound bell", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Bell", result)
}

// ListOperations returns recent journal entries
func (h *PrinterHandler) ListOperations(c *gin.Context) {
	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	operations, err := h.printerService.ListOperations(c.Request.Context(), limit, offset)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list operations", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Operations", gin.H{
		"operations": operations,
		"count":      len(operations),
	})
}

func queryInt(c *gin.Context, name string, fallback int) int {
	if v := c.Query(name); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}
