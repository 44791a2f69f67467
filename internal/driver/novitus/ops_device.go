// internal/driver/novitus/ops_device.go
package novitus

import "context"

// GetVersionInfo asks for the firmware type and version (#v).
func (d *Driver) GetVersionInfo(ctx context.Context) (VersionInfo, error) {
	payload, err := d.executeRead(ctx, Command{Opcode: "#v"})
	if err != nil {
		return VersionInfo{}, err
	}

	var info VersionInfo

	r := newReader(payload)
	r.literal("1#R")
	info.Type = r.until('/')
	info.Version = r.rest()

	d.logDecode("getVersionInfo", payload, r)
	return info, nil
}

// GetDeviceInfo1 asks for the general device description ($i 0). Some
// devices do not answer before fiscalisation.
func (d *Driver) GetDeviceInfo1(ctx context.Context) (DeviceInfo1, error) {
	payload, err := d.executeRead(ctx, Command{
		IntParams: []int{0},
		Opcode:    "$i",
	})
	if err != nil {
		return DeviceInfo1{}, err
	}

	var info DeviceInfo1

	r := newReader(payload)
	r.readInt()
	r.literal("$I")
	info.Name = r.until('\r')
	info.SoftwareVersion = r.until('\r')
	info.PrintModuleVersion = r.until('\r')
	info.SystemName = r.until('\r')
	info.SystemVer = r.until('\r')
	info.Displays = r.readInt()
	r.delim('\r')
	info.PrintingWidth = r.readInt()
	r.delim('\r')
	info.ECopy = r.readInt()
	r.delim('\r')
	info.FiscalMemorySize = r.readInt()
	r.delim('\r')

	d.logDecode("getDeviceInfo1", payload, r)
	return info, nil
}

// GetDeviceInfo2 asks for the detailed fiscal-memory description ($i 1).
func (d *Driver) GetDeviceInfo2(ctx context.Context) (DeviceInfo2, error) {
	payload, err := d.executeRead(ctx, Command{
		IntParams: []int{1},
		Opcode:    "$i",
	})
	if err != nil {
		return DeviceInfo2{}, err
	}

	var info DeviceInfo2

	r := newReader(payload)
	r.readInt()
	r.literal("$I")
	info.FiscalMemorySize = r.readInt()
	r.delim('\r')
	info.RecordSize = r.readInt()
	r.delim('\r')
	info.Mode = r.readInt()
	r.delim('\r')
	info.UniqueNumber = r.until('\r')
	info.NIP = r.until('\r')
	info.MaxRecordsCount = r.readInt()
	r.delim('\r')
	info.RecordsCount = r.readInt()
	r.delim('\r')
	info.MaxDailyReportsCount = r.readInt()
	r.delim('\r')
	info.DailyReportsCount = r.readInt()
	r.delim('\r')
	info.MaxRamResetsCount = r.readInt()
	r.delim('\r')
	info.RamResetsCount = r.readInt()
	r.delim('\r')
	info.MaxVatRatesChangesCount = r.readInt()
	r.delim('\r')
	info.VatRatesChangesCount = r.readInt()
	r.delim('\r')
	info.MaxCurrencyChangesCount = r.readInt()
	r.delim('\r')
	info.CurrencyChangesCount = r.readInt()
	r.delim('\r')

	d.logDecode("getDeviceInfo2", payload, r)
	return info, nil
}

// SetClock programs the printer's date and time ($c). In fiscal mode the
// time can be changed once per daily report and at most by an hour.
func (d *Driver) SetClock(ctx context.Context, id Id, year, month, day, hour, minute, second int) error {
	cmd := Command{
		IntParams: []int{year, month, day, hour, minute, second},
		Opcode:    "$c",
		WithCtrl:  true,
	}

	if !id.IsEmpty() {
		cmd.TextParams = []string{id.PrinterID + "\r", id.OperatorID + "\r"}
	}

	return d.execute(ctx, cmd)
}

// GetClock asks for the printer's date and time (#c).
func (d *Driver) GetClock(ctx context.Context) (ClockInfo, error) {
	payload, err := d.executeRead(ctx, Command{
		IntParams: []int{0}, // parameter ignored
		Opcode:    "#c",
	})
	if err != nil {
		return ClockInfo{}, err
	}

	var info ClockInfo

	r := newReader(payload)
	r.literal("1#C")
	info.Year = r.readInt()
	r.delim(';')
	info.Month = r.readInt()
	r.delim(';')
	info.Day = r.readInt()
	r.delim(';')
	info.Hour = r.readInt()
	r.delim(';')
	info.Minute = r.readInt()
	r.delim(';')
	r.readInt() // seconds, not reported back

	d.logDecode("getClock", payload, r)
	return info, nil
}

// SetVatRates programs the PTU rates A..G ($p). With count 0 four rates
// are programmed; with count below 7 rate G defaults to exempt. A write
// error leaves the device read-only, so the operation asks for keyboard
// confirmation on the device. Use VatDisabled and VatExempted for unused
// and exempt slots.
func (d *Driver) SetVatRates(ctx context.Context, id Id, count int, rates [7]float64) error {
	cmd := Command{
		IntParams: []int{count},
		Opcode:    "$p",
		WithCtrl:  true,
	}

	if !id.IsEmpty() {
		cmd.TextParams = append(cmd.TextParams, id.PrinterID+"\r", id.OperatorID+"\r")
	}

	n := count
	if n < 1 || n > 7 {
		n = 4
	}
	for i := 0; i < n; i++ {
		cmd.TextParams = append(cmd.TextParams, fromFloat(rates[i])+"/")
	}

	return d.execute(ctx, cmd)
}

// SetHeader programs the receipt header ($f 0). The header may contain CR
// and LF control characters. The same opcode with parameter 1 performs
// fiscalisation, which this driver deliberately does not expose.
func (d *Driver) SetHeader(ctx context.Context, id Id, header string) error {
	cmd := Command{
		IntParams:  []int{0},
		Opcode:     "$f",
		TextParams: []string{header + "\xff"},
		WithCtrl:   true,
	}

	if !id.IsEmpty() {
		cmd.TextParams = append(cmd.TextParams, id.PrinterID+"\r", id.OperatorID+"\r")
	}

	return d.execute(ctx, cmd)
}

// GetHeader asks for the programmed header (^u). The reply carries four
// trailing bytes after the text, which are trimmed.
func (d *Driver) GetHeader(ctx context.Context) (string, error) {
	payload, err := d.executeRead(ctx, Command{
		Opcode:   "^u",
		WithCtrl: true,
	})
	if err != nil {
		return "", err
	}

	r := newReader(payload)
	r.literal("1#U")
	header := r.rest()
	d.logDecode("getHeader", payload, r)

	if len(header) > 4 {
		header = header[:len(header)-4]
	}

	return header, nil
}

// OpenDrawer opens the cash drawer ($d 1).
func (d *Driver) OpenDrawer(ctx context.Context) error {
	return d.execute(ctx, Command{
		IntParams: []int{1},
		Opcode:    "$d",
	})
}

// SetDisplayMessage sends a text to the customer display ($d 2). During a
// transaction the display is driven by the firmware and must be left alone.
func (d *Driver) SetDisplayMessage(ctx context.Context, message string) error {
	return d.execute(ctx, Command{
		IntParams:  []int{2},
		Opcode:     "$d",
		TextParams: []string{message},
	})
}

// SetDisplayMode selects the idle display content ($d 3/4).
func (d *Driver) SetDisplayMode(ctx context.Context, mode DisplayMode) error {
	return d.execute(ctx, Command{
		IntParams: []int{int(mode)},
		Opcode:    "$d",
	})
}

// SetDiscountAlgorithm selects the discount accounting method ($r).
func (d *Driver) SetDiscountAlgorithm(ctx context.Context, mode DiscountAlgorithm) error {
	return d.execute(ctx, Command{
		IntParams: []int{int(mode)},
		Opcode:    "$r",
		WithCtrl:  true,
	})
}

// GetServiceCheckDate asks for the periodic service check date (^t 11).
func (d *Driver) GetServiceCheckDate(ctx context.Context) (ServiceDate, error) {
	payload, err := d.executeRead(ctx, Command{
		IntParams: []int{11},
		Opcode:    "^t",
		WithCtrl:  true,
	})
	if err != nil {
		return ServiceDate{}, err
	}

	var info ServiceDate

	r := newReader(payload)
	r.readInt()
	r.literal("^t")
	info.Year = r.readInt()
	r.delim('/')
	info.Month = r.readInt()
	r.delim('/')
	info.Day = r.readInt()
	r.delim('/')
	if r.more() {
		info.Message = r.until('\r')
	}

	d.logDecode("getServiceCheckDate", payload, r)
	return info, nil
}

// GetServiceLockDate asks for the service lock date (^t 12).
func (d *Driver) GetServiceLockDate(ctx context.Context) (ServiceDate, error) {
	payload, err := d.executeRead(ctx, Command{
		IntParams: []int{12},
		Opcode:    "^t",
		WithCtrl:  true,
	})
	if err != nil {
		return ServiceDate{}, err
	}

	var info ServiceDate

	r := newReader(payload)
	r.readInt()
	r.literal("^t")
	info.Year = r.readInt()
	r.delim('/')
	info.Month = r.readInt()
	r.delim('/')
	info.Day = r.readInt()
	r.delim('/')
	r.until('\r') // check date message, not part of this reply's result
	info.Message = r.until('\r')

	d.logDecode("getServiceLockDate", payload, r)
	return info, nil
}

// DescriptorsReport prints the descriptor report (@d). This consumes a lot
// of paper.
func (d *Driver) DescriptorsReport(ctx context.Context) error {
	return d.execute(ctx, Command{
		IntParams: []int{1}, // parameter ignored
		Opcode:    "@d",
		WithCtrl:  true,
	})
}

// PaperFeed advances the paper by up to 20 lines (#l).
func (d *Driver) PaperFeed(ctx context.Context, lines int) error {
	return d.execute(ctx, Command{
		IntParams: []int{lines},
		Opcode:    "#l",
		WithCtrl:  true,
	})
}

// DebugGenerateError deliberately sends a malformed #l frame so the host
// software's error path can be exercised against a live device.
func (d *Driver) DebugGenerateError(ctx context.Context) error {
	return d.execute(ctx, Command{Opcode: "#l"})
}
