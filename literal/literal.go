// Package literal parses the integer literals found in coefficient and
// sample files.
//
// Two forms are accepted: decimal, and hexadecimal with a 0x or 0X prefix.
// Either may carry a leading '-'. A leading zero never selects octal, so
// "010" is ten.
package literal

import (
	"math/big"
	"strings"

	"github.com/sarchlab/firgold/fault"
)

// Parse interprets token as a signed decimal or 0x-prefixed hex integer.
func Parse(token string) (*big.Int, error) {
	neg, body := splitSign(token)

	base := 10
	digits := body
	if len(body) >= 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		base = 16
		digits = body[2:]
	}

	return parseDigits(token, digits, base, neg)
}

// ParseDecimal interprets token as a signed decimal integer. Hex is rejected.
func ParseDecimal(token string) (*big.Int, error) {
	neg, digits := splitSign(token)
	return parseDigits(token, digits, 10, neg)
}

// Format renders v in the form Parse reads back.
func Format(v *big.Int, hex bool) string {
	if !hex {
		return v.String()
	}

	if v.Sign() < 0 {
		return "-0x" + new(big.Int).Neg(v).Text(16)
	}

	return "0x" + v.Text(16)
}

func splitSign(token string) (bool, string) {
	if strings.HasPrefix(token, "-") {
		return true, token[1:]
	}

	return false, token
}

func parseDigits(token, digits string, base int, neg bool) (*big.Int, error) {
	if digits == "" {
		return nil, fault.Malformed(token, "no digits")
	}

	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i], base) {
			return nil, fault.Malformed(token, "not a decimal or 0x-hex integer")
		}
	}

	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fault.Malformed(token, "not a decimal or 0x-hex integer")
	}

	if neg {
		v.Neg(v)
	}

	return v, nil
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
