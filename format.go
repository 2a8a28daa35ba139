package calc

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders operands for display. The integer part is grouped
// according to the locale; the fraction digits are appended verbatim.
type Formatter struct {
	locale  language.Tag
	printer *message.Printer
}

// NewFormatter returns a Formatter for locale.
func NewFormatter(locale language.Tag) *Formatter {
	return &Formatter{
		locale:  locale,
		printer: message.NewPrinter(locale),
	}
}

// Locale returns the formatter locale.
func (f *Formatter) Locale() language.Tag {
	return f.locale
}

// Format returns the display form of operand, or false when it is absent.
func (f *Formatter) Format(operand Operand) (string, bool) {
	value, ok := operand.Value()
	if !ok {
		return "", false
	}
	integer, fraction, hasFraction := splitOperand(value)
	out := f.formatInteger(integer)
	if hasFraction {
		out += "." + fraction
	}
	return out, true
}

func (f *Formatter) formatInteger(integer string) string {
	n := toNumber(integer)
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "∞"
	case math.IsInf(n, -1):
		return "-∞"
	case n == 0 && math.Signbit(n):
		return "-0"
	}
	return f.printer.Sprintf("%v", number.Decimal(n, number.MaxFractionDigits(0)))
}

// splitOperand cuts value at its first decimal separator, which may be
// written as "." or ",".
func splitOperand(value string) (integer, fraction string, ok bool) {
	i := strings.IndexAny(value, ".,")
	if i < 0 {
		return value, "", false
	}
	return value[:i], value[i+1:], true
}

// FormatOperand formats operand with the calculator locale.
func (c *Calculator) FormatOperand(operand Operand) (string, bool) {
	return c.formatter.Format(operand)
}
