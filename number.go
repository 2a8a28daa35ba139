package calc

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	decimalPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?)`)
	decimalFull   = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?)$`)
)

// ParseNumber reads the longest decimal prefix of s after leading
// whitespace, the way a lenient float parse does: "12abc" is 12, "abc" and
// "." fail. Values outside the float64 range become ±Inf.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, isNumberSpace)
	match := decimalPrefix.FindString(s)
	if match == "" {
		return math.NaN(), false
	}
	return parseDecimal(match), true
}

// toNumber converts the whole of s, ignoring surrounding whitespace. The
// empty string is zero; anything that is not a decimal literal is NaN.
func toNumber(s string) float64 {
	s = strings.TrimFunc(s, isNumberSpace)
	if s == "" {
		return 0
	}
	if !decimalFull.MatchString(s) {
		return math.NaN()
	}
	return parseDecimal(s)
}

func parseDecimal(literal string) float64 {
	sign := 1.0
	body := literal
	switch {
	case strings.HasPrefix(body, "-"):
		sign, body = -1, body[1:]
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}
	if body == "Infinity" {
		return math.Inf(int(sign))
	}
	value, err := strconv.ParseFloat(body, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return sign * value
}

func isNumberSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// FormatNumber renders f as the shortest decimal string that round-trips:
// fixed notation between 1e-7 and 1e21, exponent notation ("1e+21",
// "1.5e-7") outside it, and NaN, Infinity, -Infinity for special values.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	exp, _ := strconv.Atoi(exponent)
	k := len(digits)
	n := exp + 1

	switch {
	case k <= n && n <= 21:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return sign + digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	}

	e := n - 1
	expSign := "+"
	if e < 0 {
		expSign = "-"
		e = -e
	}
	out := digits[:1]
	if k > 1 {
		out += "." + digits[1:]
	}
	return sign + out + "e" + expSign + strconv.Itoa(e)
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case nil:
		return 0, errors.New("evaluator returned no value")
	default:
		return 0, errTypeMismatch(value)
	}
}
