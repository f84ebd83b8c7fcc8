package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatRupiah renders whole rupiah with Indonesian digit grouping,
// e.g. 3530000 -> "Rp 3.530.000".
func FormatRupiah(amount int64) string {
	if amount < 0 {
		return "-Rp " + printer.Sprintf("%d", -amount)
	}
	return "Rp " + printer.Sprintf("%d", amount)
}
