// internal/driver/novitus/types.go
package novitus

// Sentinel VAT rate values defined by the POSNET protocol.
const (
	VatDisabled = 101.0 // rate slot not in use
	VatExempted = 100.0 // rate slot programmed as tax-exempt
)

// ErrorHandlingMode selects how the firmware reports command errors (#e).
// The printer powers up in ErrorHandlingDisplay.
type ErrorHandlingMode int

const (
	ErrorHandlingDisplay     ErrorHandlingMode = 0 // message on the device, operator confirms with OK
	ErrorHandlingSilent      ErrorHandlingMode = 1 // no signalling, host polls the status
	ErrorHandlingDisplaySend ErrorHandlingMode = 2 // like display, code also pushed to the interface
	ErrorHandlingSilentSend  ErrorHandlingMode = 3 // like silent, code also pushed to the interface
)

// DisplayMode selects the idle content of the customer display ($d).
type DisplayMode int

const (
	DisplayModeDateTime DisplayMode = 3
	DisplayModeCash     DisplayMode = 4
)

// ClientIDType identifies the kind of buyer identifier on a receipt.
type ClientIDType int

const (
	ClientIDNone  ClientIDType = 0
	ClientIDNIP   ClientIDType = 1
	ClientIDRegon ClientIDType = 2
	ClientIDPesel ClientIDType = 3
)

// DiscountAlgorithm selects the firmware's discount rounding method ($r).
type DiscountAlgorithm int

const (
	DiscountAlgorithm0 DiscountAlgorithm = 0
	DiscountAlgorithm1 DiscountAlgorithm = 1
)

// DiscountType is the discount/surcharge kind used by transaction-level
// operations ($n, $L, $Y, $y).
type DiscountType int

const (
	DiscountNone          DiscountType = 0
	DiscountPercent       DiscountType = 1
	DiscountSurchargePct  DiscountType = 2
	DiscountAmount        DiscountType = 3
	DiscountSurchargeAmnt DiscountType = 4
)

// ItemDiscountType is the discount/surcharge kind on a single receipt line.
// Note the numbering differs from DiscountType: amount first, percent second.
type ItemDiscountType int

const (
	ItemDiscountNone     ItemDiscountType = 0
	ItemDiscountAmount   ItemDiscountType = 1
	ItemDiscountPercent  ItemDiscountType = 2
	ItemSurchargeAmount  ItemDiscountType = 3
	ItemSurchargePercent ItemDiscountType = 4
)

// TransactionDiscountType is the whole-transaction discount kind ($e).
type TransactionDiscountType int

const (
	TransactionDiscountNone     TransactionDiscountType = 0
	TransactionDiscountPercent  TransactionDiscountType = 1
	TransactionSurchargePercent TransactionDiscountType = 2
)

// DiscountDescriptionType is the canned description printed next to a
// discount. DiscountDescCustom prints the caller-supplied name instead.
type DiscountDescriptionType int

const (
	DiscountDescNone    DiscountDescriptionType = 0
	DiscountDescSpecial DiscountDescriptionType = 1
	DiscountDescCustom  DiscountDescriptionType = 16
)

// DepositType selects the container-deposit operation in a receipt line ($l).
type DepositType int

const (
	DepositCollected       DepositType = 6
	DepositCollectedStorno DepositType = 7
	DepositReturned        DepositType = 10
	DepositReturnedStorno  DepositType = 11
)

// ServiceType is the payment-form registration action ($b).
type ServiceType int

const (
	ServiceRegister ServiceType = 1 // add the amount to the payment type's total
	ServiceCancel   ServiceType = 2 // subtract the amount from the payment type's total
)

// PaymentType enumerates the firmware's payment forms.
type PaymentType int

const (
	PaymentCash     PaymentType = 0
	PaymentCard     PaymentType = 1
	PaymentCheque   PaymentType = 2
	PaymentCoupon   PaymentType = 3
	PaymentOther    PaymentType = 4
	PaymentCredit   PaymentType = 5
	PaymentAccount  PaymentType = 6
	PaymentCurrency PaymentType = 7 // voucher on POSNET firmware
	PaymentTransfer PaymentType = 8
)

// ExtraLineType selects the keyword printed before an extra footer line.
// The full keyword list is model-dependent; the values below cover the
// common set, any documented value can be passed directly.
type ExtraLineType int

const (
	ExtraLineTransactionNr ExtraLineType = 0
	ExtraLinePoints        ExtraLineType = 1
	ExtraLinePointsTotal   ExtraLineType = 2
	ExtraLineRegistration  ExtraLineType = 3
	ExtraLineName          ExtraLineType = 4
	ExtraLineCard          ExtraLineType = 5
	ExtraLineCardNr        ExtraLineType = 6
	ExtraLineValidUntil    ExtraLineType = 7
	ExtraLineCashier       ExtraLineType = 8
	ExtraLineCashierName   ExtraLineType = 9
	ExtraLineAdvance       ExtraLineType = 10
	ExtraLineNoKeyword     ExtraLineType = 25
)

// CashRegisterInfo2Mode selects the totaliser snapshot variant (#s mode).
type CashRegisterInfo2Mode int

const (
	Info2CurrentReceipt  CashRegisterInfo2Mode = 22 // totals of the open receipt
	Info2SinceLastReport CashRegisterInfo2Mode = 23 // totals since the last daily report
	Info2EuroCash        CashRegisterInfo2Mode = 99 // cash field reported in EUR
)

// CashRegisterInfo6Mode selects which amounts mode 100 reports.
type CashRegisterInfo6Mode int

const (
	Info6Gross CashRegisterInfo6Mode = 0
	Info6Net   CashRegisterInfo6Mode = 1
	Info6Vat   CashRegisterInfo6Mode = 2
)

// CashRegisterInfo7Mode selects which amount mode 200 reports for an
// invoice item.
type CashRegisterInfo7Mode int

const (
	Info7Gross CashRegisterInfo7Mode = 0
	Info7Net   CashRegisterInfo7Mode = 1
	Info7Vat   CashRegisterInfo7Mode = 2
)

// PeriodicalReportType selects the periodical report flavour (#o).
type PeriodicalReportType int

const (
	ReportFullByDate     PeriodicalReportType = 0  // full fiscal report for the date range
	ReportSummaryByDate  PeriodicalReportType = 1  // non-fiscal sales summary for the date range
	ReportFullMonthly    PeriodicalReportType = 6  // full monthly fiscal report
	ReportSummaryMonthly PeriodicalReportType = 7  // monthly non-fiscal summary
	ReportSettlementFull PeriodicalReportType = 96 // full settlement report
	ReportSettlementSumm PeriodicalReportType = 97 // settlement summary
)

// ClientSellerOption controls the buyer/seller blocks on an invoice.
type ClientSellerOption int

const (
	ClientSellerInfoBlock    ClientSellerOption = 0 // info block only
	ClientSellerNameAndBlock ClientSellerOption = 1 // name plus info block
	ClientSellerNone         ClientSellerOption = 2 // no buyer/seller information
)

// Invoice summary option bits (@c summary option field).
const (
	InvoiceSummarySkipAmountWords = 1
	InvoiceSummarySkipGrossBlock  = 2
	InvoiceSummaryBoldBuyer       = 4
	InvoiceSummaryBoldSeller      = 8
	InvoiceSummaryBoldBuyerNIP    = 16
	InvoiceSummaryBoldSellerNIP   = 32
)

// Invoice print option bits, group 2 (@c).
const (
	InvoiceOpt2DescriptionLabel = 1
	InvoiceOpt2ItemNumbers      = 2
	InvoiceOpt2PayLabel         = 4
	InvoiceOpt2GroszInWords     = 8
	InvoiceOpt2SkipSameSaleDate = 16
	InvoiceOpt2SkipSellerData   = 32
	InvoiceOpt2SkipItemLabels   = 64
	InvoiceOpt2PaymentHandling  = 128
)

// Invoice print option bits, group 3 (@c).
const (
	InvoiceOpt3SkipClientData  = 1
	InvoiceOpt3PaidCashLabel   = 2
	InvoiceOpt3SkipSellerLabel = 4
	InvoiceOpt3SkipOriginal    = 8
	InvoiceOpt3VatLabel        = 16
)

// SaleReceiptOption controls sale-receipt copies (#g).
type SaleReceiptOption int

const (
	SaleReceiptTwoCopiesKey SaleReceiptOption = 0 // two copies, key press between them
	SaleReceiptTwoCopies    SaleReceiptOption = 1 // two copies back to back
	SaleReceiptOneCopy      SaleReceiptOption = 2
)

// FontAttrs are non-fiscal line font attributes ($w).
type FontAttrs int

const (
	FontDefault FontAttrs = 0
	FontWide    FontAttrs = 1
	FontTall    FontAttrs = 2
	FontWidened FontAttrs = 3
	FontInverse FontAttrs = 4
)

// EnqStatus is the decoded single-byte ENQ reply.
type EnqStatus struct {
	Fiscal        bool `json:"fiscal"`         // device is in fiscal mode
	Command       bool `json:"command"`        // last command executed correctly
	Transaction   bool `json:"transaction"`    // device is in transaction mode
	TransactionOk bool `json:"transaction_ok"` // last transaction finished correctly
}

// DleStatus is the decoded single-byte DLE reply.
type DleStatus struct {
	Online bool `json:"online"` // device is on-line
	Paper  bool `json:"paper"`  // paper out or battery low
	Error  bool `json:"error"`  // mechanism or driver failure
}

// Id identifies the register and the cashier. Operations that accept a
// default identifier omit the identifier block when either field is empty.
type Id struct {
	PrinterID  string `json:"printer_id"`  // register number, up to 8 characters
	OperatorID string `json:"operator_id"` // cashier, up to 32 characters
}

// IsEmpty reports whether the identifier should be treated as absent.
func (id Id) IsEmpty() bool {
	return id.PrinterID == "" || id.OperatorID == ""
}

// DefaultId returns the empty identifier, letting the printer use its own.
func DefaultId() Id { return Id{} }

// VersionInfo is the firmware type and version (#v).
type VersionInfo struct {
	Type    string `json:"type"`    // e.g. "VENTO"
	Version string `json:"version"` // e.g. "1.00"
}

// DeviceInfo1 is the general device description ($i 0).
type DeviceInfo1 struct {
	Name               string `json:"name"`
	SoftwareVersion    string `json:"software_version"`
	PrintModuleVersion string `json:"print_module_version"`
	SystemName         string `json:"system_name"`
	SystemVer          string `json:"system_version"`
	Displays           int    `json:"displays"`
	PrintingWidth      int    `json:"printing_width"`
	ECopy              int    `json:"e_copy"`
	FiscalMemorySize   int    `json:"fiscal_memory_size"`
}

// DeviceInfo2 is the detailed fiscal-memory description ($i 1).
type DeviceInfo2 struct {
	FiscalMemorySize        int    `json:"fiscal_memory_size"`
	RecordSize              int    `json:"record_size"`
	Mode                    int    `json:"mode"` // 0 non-fiscal, 1 fiscal
	UniqueNumber            string `json:"unique_number"`
	NIP                     string `json:"nip"`
	MaxRecordsCount         int    `json:"max_records_count"`
	RecordsCount            int    `json:"records_count"`
	MaxDailyReportsCount    int    `json:"max_daily_reports_count"`
	DailyReportsCount       int    `json:"daily_reports_count"`
	MaxRamResetsCount       int    `json:"max_ram_resets_count"`
	RamResetsCount          int    `json:"ram_resets_count"`
	MaxVatRatesChangesCount int    `json:"max_vat_rates_changes_count"`
	VatRatesChangesCount    int    `json:"vat_rates_changes_count"`
	MaxCurrencyChangesCount int    `json:"max_currency_changes_count"`
	CurrencyChangesCount    int    `json:"currency_changes_count"`
}

// ClockInfo is the printer's date and time (#c).
type ClockInfo struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ServiceDate is a service check or lock date with an optional message (^t).
type ServiceDate struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Day     int    `json:"day"`
	Message string `json:"message"`
}

// CashRegisterInfo1 is the cash register snapshot for #s modes 0-21.
type CashRegisterInfo1 struct {
	LastError     int     `json:"last_error"`
	Fiscal        bool    `json:"fiscal"`
	Transaction   bool    `json:"transaction"`
	TransactionOk bool    `json:"transaction_ok"`
	RamResets     int     `json:"ram_resets"`
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	Day           int     `json:"day"`
	VatA          float64 `json:"vat_a"`
	VatB          float64 `json:"vat_b"`
	VatC          float64 `json:"vat_c"`
	VatD          float64 `json:"vat_d"`
	VatE          float64 `json:"vat_e"`
	VatF          float64 `json:"vat_f"`
	Receipts      int     `json:"receipts"`
	TotA          float64 `json:"tot_a"`
	TotB          float64 `json:"tot_b"`
	TotC          float64 `json:"tot_c"`
	TotD          float64 `json:"tot_d"`
	TotE          float64 `json:"tot_e"`
	TotF          float64 `json:"tot_f"`
	TotG          float64 `json:"tot_g"`
	Cash          float64 `json:"cash"`
	Number        string  `json:"number"` // unique number, ABCNNNNNNNN
}

// CashRegisterInfo2 is the totaliser snapshot for #s modes 22, 23 and 99.
type CashRegisterInfo2 struct {
	LastError     int     `json:"last_error"`
	Fiscal        bool    `json:"fiscal"`
	Transaction   bool    `json:"transaction"`
	TransactionOk bool    `json:"transaction_ok"`
	Resets        int     `json:"resets"`
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	Day           int     `json:"day"`
	VatA          float64 `json:"vat_a"`
	VatB          float64 `json:"vat_b"`
	VatC          float64 `json:"vat_c"`
	VatD          float64 `json:"vat_d"`
	VatE          float64 `json:"vat_e"`
	VatF          float64 `json:"vat_f"`
	VatG          float64 `json:"vat_g"`
	Receipts      int     `json:"receipts"`
	TotA          float64 `json:"tot_a"`
	TotB          float64 `json:"tot_b"`
	TotC          float64 `json:"tot_c"`
	TotD          float64 `json:"tot_d"`
	TotE          float64 `json:"tot_e"`
	TotF          float64 `json:"tot_f"`
	TotG          float64 `json:"tot_g"`
	Cash          float64 `json:"cash"`
	Number        string  `json:"number"`
}

// CashRegisterInfo3 is the fiscal-memory occupancy snapshot (#s mode 24).
type CashRegisterInfo3 struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Day         int     `json:"day"`
	UsedReports int     `json:"used_reports"`
	FreeReports int     `json:"free_reports"`
	Locked      int     `json:"locked"` // number of blocked items
	TotA        float64 `json:"tot_a"`  // last receipt's totalisers
	TotB        float64 `json:"tot_b"`
	TotC        float64 `json:"tot_c"`
	TotD        float64 `json:"tot_d"`
	TotE        float64 `json:"tot_e"`
	TotF        float64 `json:"tot_f"`
	TotG        float64 `json:"tot_g"`
}

// CashRegisterInfo4 is the document counter snapshot (#s mode 50).
type CashRegisterInfo4 struct {
	Documents int `json:"documents"` // document count minus invoices
	Invoices  int `json:"invoices"`
}

// CashRegisterInfo5 is the e-copy memory card state (#s mode 90).
type CashRegisterInfo5 struct {
	Label        string `json:"label"`
	State        string `json:"state"` // "O" open, "Z" closed, "N"/"W"/"B"/"?" per documentation
	Size         int    `json:"size"`
	FreeMem      int    `json:"free_mem"`
	Files        int    `json:"files"`
	FreeReports  int    `json:"free_reports"`
	LastReportNr int    `json:"last_report_nr"`
	LastWrite    string `json:"last_write"` // yyyy-mm-dd hh:mm
}

// CashRegisterInfo6 is the totaliser and transaction-state snapshot
// (#s mode 100).
type CashRegisterInfo6 struct {
	Type        int     `json:"type"`        // 0 gross, 1 net, 2 VAT
	Transaction int     `json:"transaction"` // 0 none, 1 receipt, 17 off-line receipt, 19 VAT invoice
	Total       float64 `json:"total"`
	TotA        float64 `json:"tot_a"`
	TotB        float64 `json:"tot_b"`
	TotC        float64 `json:"tot_c"`
	TotD        float64 `json:"tot_d"`
	TotE        float64 `json:"tot_e"`
	TotF        float64 `json:"tot_f"`
	TotG        float64 `json:"tot_g"`
}

// CashRegisterInfo7 is one invoice item's amount (#s mode 200).
type CashRegisterInfo7 struct {
	Amount float64 `json:"amount"`
}

// FiscalMemoryRecordType discriminates fiscal memory records pulled with
// #s mode 27. The tags map to the five literal reply prefixes; RecordEmpty
// means the read pass is complete.
type FiscalMemoryRecordType int

const (
	RecordEmpty FiscalMemoryRecordType = iota
	RecordDailyReport
	RecordVatChange
	RecordRamReset
	RecordSellAfterRamReset
)

func (t FiscalMemoryRecordType) String() string {
	switch t {
	case RecordDailyReport:
		return "daily-report"
	case RecordVatChange:
		return "vat-change"
	case RecordRamReset:
		return "ram-reset"
	case RecordSellAfterRamReset:
		return "sell-after-ram-reset"
	default:
		return "empty"
	}
}

// FiscalMemoryRecord is one record of the fiscal memory. Only the field
// group matching Type is populated; everything else stays at its default.
type FiscalMemoryRecord struct {
	Type FiscalMemoryRecordType `json:"type"`

	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`

	// Daily report fields
	Receipts               int     `json:"receipts,omitempty"`
	CancelledReceipts      int     `json:"cancelled_receipts,omitempty"`
	DatabaseChanges        int     `json:"database_changes,omitempty"`
	CancelledReceiptsValue float64 `json:"cancelled_receipts_value,omitempty"`
	TotA                   float64 `json:"tot_a,omitempty"`
	TotB                   float64 `json:"tot_b,omitempty"`
	TotC                   float64 `json:"tot_c,omitempty"`
	TotD                   float64 `json:"tot_d,omitempty"`
	TotE                   float64 `json:"tot_e,omitempty"`
	TotF                   float64 `json:"tot_f,omitempty"`
	TotG                   float64 `json:"tot_g,omitempty"`

	// VAT change fields
	VatA float64 `json:"vat_a,omitempty"`
	VatB float64 `json:"vat_b,omitempty"`
	VatC float64 `json:"vat_c,omitempty"`
	VatD float64 `json:"vat_d,omitempty"`
	VatE float64 `json:"vat_e,omitempty"`
	VatF float64 `json:"vat_f,omitempty"`
	VatG float64 `json:"vat_g,omitempty"`

	// RAM reset fields
	Reason      int `json:"reason,omitempty"`
	ResetNumber int `json:"reset_number,omitempty"`
}

// ExtraLines are up to three extra footer lines on a receipt or invoice.
// Lines are used in order up to the last non-empty one; an empty line before
// it is sent as an empty line.
type ExtraLines struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
	Line3 string `json:"line3"`
}

// IsEmpty reports whether no line is set.
func (e ExtraLines) IsEmpty() bool {
	return e.Line1 == "" && e.Line2 == "" && e.Line3 == ""
}

// Count returns the index of the last usable line.
func (e ExtraLines) Count() int {
	if e.Line3 != "" {
		return 3
	}
	if e.Line2 != "" {
		return 2
	}
	if e.Line1 != "" {
		return 1
	}
	return 0
}

// lines returns the first Count() lines in order.
func (e ExtraLines) lines() []string {
	switch e.Count() {
	case 1:
		return []string{e.Line1}
	case 2:
		return []string{e.Line1, e.Line2}
	case 3:
		return []string{e.Line1, e.Line2, e.Line3}
	default:
		return nil
	}
}

// NoExtraLines returns the empty line set.
func NoExtraLines() ExtraLines { return ExtraLines{} }

// Item is one receipt or invoice line. Line number 0 means a storno
// operation; line numbering on the document must stay contiguous around it.
type Item struct {
	Line int `json:"line"`

	Name        string `json:"name"`        // 2..40 characters
	Barcode     string `json:"barcode"`     // printed instead of the description when set; '#' prefix PLU, '@' prefix QR
	Description string `json:"description"` // up to 160 characters

	Vat      string `json:"vat"`      // rate letter A..G
	Quantity string `json:"quantity"` // free-form, the firmware extracts the number itself

	Price float64 `json:"price"` // unit gross price, max 10 digits, 2 decimal places
	Gross float64 `json:"gross"` // quantity x price

	DiscountType  ItemDiscountType        `json:"discount_type"`
	DiscountDesc  DiscountDescriptionType `json:"discount_desc"`
	DiscountValue float64                 `json:"discount_value"`
	DiscountName  string                  `json:"discount_name"` // used when DiscountDesc is DiscountDescCustom
}

// PaymentFormsInfo1 is the $x payment block: one fixed slot per form.
type PaymentFormsInfo1 struct {
	CashFlag             bool `json:"cash_flag"`
	CardFlag             bool `json:"card_flag"`
	ChequeFlag           bool `json:"cheque_flag"`
	CouponFlag           bool `json:"coupon_flag"`
	DepositCollectedFlag bool `json:"deposit_collected_flag"`
	DepositReturnedFlag  bool `json:"deposit_returned_flag"`
	ChangeFlag           bool `json:"change_flag"`

	CashIn           float64 `json:"cash_in"`
	CardIn           float64 `json:"card_in"`
	ChequeIn         float64 `json:"cheque_in"`
	CouponIn         float64 `json:"coupon_in"`
	DepositCollected float64 `json:"deposit_collected"`
	DepositReturned  float64 `json:"deposit_returned"`
	CheckOut         float64 `json:"check_out"`

	CardName   string `json:"card_name"`   // up to 16 characters
	ChequeName string `json:"cheque_name"` // up to 16 characters
	CouponName string `json:"coupon_name"` // up to 16 characters
}

// PaymentForm is one payment form entry for PaymentFormsInfo2.
type PaymentForm struct {
	Type   PaymentType `json:"type"`
	Name   string      `json:"name"`
	Amount float64     `json:"amount"`
}

// Deposit is one collected or returned container deposit for
// PaymentFormsInfo2.
type Deposit struct {
	Nr       string  `json:"nr"`
	Quantity string  `json:"quantity"`
	Amount   float64 `json:"amount"`
}

// PaymentFormsInfo2 is the $y payment block: variable-length form and
// deposit lists.
type PaymentFormsInfo2 struct {
	CashFlag   bool `json:"cash_flag"`
	ChangeFlag bool `json:"change_flag"`

	CashIn    float64 `json:"cash_in"`
	ChangeOut float64 `json:"change_out"`

	PaymentForms []PaymentForm `json:"payment_forms"` // up to 16

	DepositCollected []Deposit `json:"deposit_collected"` // up to 32
	DepositReturned  []Deposit `json:"deposit_returned"`  // up to 32
}

// BeginInvoiceData carries the $h invoice opening block.
type BeginInvoiceData struct {
	Items int `json:"items"` // 0..255

	PrintCopy bool `json:"print_copy"`
	TopMargin bool `json:"top_margin"`
	Signature bool `json:"signature"`

	AdditionalCopies int `json:"additional_copies"` // 0..9, or 255 for original only

	InvoiceNr string `json:"invoice_nr"` // up to 15 characters

	NIP string `json:"nip"` // exactly 13 characters

	Timeout     string `json:"timeout"`      // payment deadline, up to 16 characters
	PaymentForm string `json:"payment_form"` // up to 20 characters, never "INNA"/"INNE"

	Client string `json:"client"` // up to 26 characters
	Seller string `json:"seller"` // up to 26 characters

	SystemNr string `json:"system_nr"` // starts with '#', up to 30 characters

	ClientLines []string `json:"client_lines"` // buyer address lines, up to 8
}

// FinishInvoiceData carries the $e invoice closing block.
type FinishInvoiceData struct {
	PayedFlag bool   `json:"payed_flag"`
	Payed     string `json:"payed"`

	Client ClientSellerOption `json:"client"`
	Seller ClientSellerOption `json:"seller"`

	CashIn float64 `json:"cash_in"`
	Total  float64 `json:"total"`

	DiscountValue float64 `json:"discount_value"`

	ClientName string `json:"client_name"` // up to 26 characters
	SellerName string `json:"seller_name"` // up to 26 characters

	ExtraLines ExtraLines `json:"extra_lines"`
}

// InvoiceOptions carries the @c invoice option block.
type InvoiceOptions struct {
	AdditionalCopies int `json:"additional_copies"`

	Client ClientSellerOption `json:"client"`
	Seller ClientSellerOption `json:"seller"`

	PayedFlag bool   `json:"payed_flag"`
	Payed     string `json:"payed"`

	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`

	SummaryOption   int `json:"summary_option"`
	InvoiceOptions2 int `json:"invoice_options_2"`
	InvoiceOptions3 int `json:"invoice_options_3"`

	ClientIDType ClientIDType `json:"client_id_type"`

	Timeout     string `json:"timeout"`
	PaymentForm string `json:"payment_form"`

	ClientName string `json:"client_name"`
	SellerName string `json:"seller_name"`

	SystemNr string `json:"system_nr"` // up to 10 characters
}

// SaleReceiptData carries the #g / #h credit-card sale receipt block.
type SaleReceiptData struct {
	PrintID bool `json:"print_id"` // print register and cashier numbers

	PrintOption SaleReceiptOption `json:"print_option"`

	Month int `json:"month"` // card expiry
	Year  int `json:"year"`

	Amount float64 `json:"amount"` // amount paid by card

	Receipt string `json:"receipt"` // receipt number the card payment covers

	ClientName string `json:"client_name"` // up to 15 characters
	Terminal   string `json:"terminal"`    // up to 8 characters

	CardName string `json:"card_name"` // up to 16 characters
	CardNr   string `json:"card_nr"`   // up to 20 characters

	AuthCode string `json:"auth_code"` // up to 9 characters
}

// NonFiscalLine is one line of a non-fiscal printout ($w).
type NonFiscalLine struct {
	PrintNr int `json:"print_nr"` // printout number, 2..255; 254 renders the argument as a barcode
	LineNr  int `json:"line_nr"`  // line number within the printout; 255 empty, 254 underline, 253 last receipt nr, 250 graphics, 249 QR

	Bold    bool `json:"bold"`
	Inverse bool `json:"inverse"`
	Center  bool `json:"center"`

	Font int `json:"font"` // 0 or 1

	Attrs FontAttrs `json:"attrs"`

	Lines []string `json:"lines"` // line arguments, any count
}
