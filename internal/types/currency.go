package types

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR renders an amount the way the printed documents and the original
// UI do: "Rp 1.234.567" — Indonesian digit grouping, no decimals. Amounts in
// this system are whole rupiah.
func FormatIDR(amount decimal.Decimal) string {
	return idPrinter.Sprintf("Rp %d", amount.Round(0).IntPart())
}
