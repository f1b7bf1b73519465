package helper

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ShortAddress shortens a ledger account id for logs and UI payloads.
func ShortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:4] + "..." + addr[len(addr)-4:]
}

// FormatBalance normalizes a balance string to 2 decimal places.
// Unparseable input falls back to "0.00".
func FormatBalance(raw string) string {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "0.00"
	}
	return d.StringFixed(2)
}

// TruncateBytes cuts s to at most n bytes without failing on short input.
// The cut lands on a rune boundary so the result stays valid UTF-8.
func TruncateBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
