// internal/driver/novitus/command.go
package novitus

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Command is one firmware command before framing: an ordered list of integer
// parameters, the opcode, and an ordered list of text parameters. Each text
// parameter already carries its own terminator ('\r' for textual fields, '/'
// for numeric fields expressed as strings) put there by the operation layer.
type Command struct {
	IntParams  []int
	Opcode     string
	TextParams []string
	WithCtrl   bool
}

// encode serialises the command body in wire order: decimal integer
// parameters joined by ';', the opcode verbatim, then the text parameters
// transcoded to Mazovia.
func (c Command) encode() []byte {
	var body []byte

	for i, p := range c.IntParams {
		if i > 0 {
			body = append(body, ';')
		}
		body = append(body, strconv.Itoa(p)...)
	}

	body = append(body, c.Opcode...)

	for _, s := range c.TextParams {
		body = append(body, ToMazovia(s)...)
	}

	return body
}

// fromInt renders an integer argument for the text block.
func fromInt(n int) string {
	return strconv.Itoa(n)
}

// fromLong renders a wide integer argument for the text block.
func fromLong(n int64) string {
	return strconv.FormatInt(n, 10)
}

// fromFloat renders a monetary or rate value for the text block:
// locale-independent, no thousands separator, at least two fraction digits.
// The firmware tolerates trailing zeros but not a comma, and its own echo
// grammar requires a fractional part, so amounts always carry one. Values
// with more than two decimal places (exchange rates, quantities) keep their
// full precision.
func fromFloat(f float64) string {
	d := decimal.NewFromFloat(f)
	if d.Exponent() >= -2 {
		return d.StringFixed(2)
	}
	return d.String()
}
