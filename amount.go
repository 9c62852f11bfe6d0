package taxlot

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// amount is an exact decimal value as printed in a statement, like
// "$1,999.00" or "12.000000".
type amount struct {
	value  decimal.Decimal
	dollar bool // true to print with a leading "$"
}

// parseAmount parses a statement value. Thousands separators and the dollar
// sign are ignored, the number of fraction digits is kept.
func parseAmount(s string) (amount, error) {
	clean := strings.ReplaceAll(strings.ReplaceAll(s, "$", ""), ",", "")
	v, err := decimal.NewFromString(clean)
	if err != nil {
		return amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount{value: v, dollar: strings.HasPrefix(s, "$")}, nil
}

// Add returns a+b keeping the widest fraction, and a's dollar convention.
func (a amount) Add(b amount) amount { return amount{value: a.value.Add(b.value), dollar: a.dollar} }

// places is the number of fraction digits to print.
func (a amount) places() int32 {
	if e := a.value.Exponent(); e < 0 {
		return -e
	}
	return 0
}

// String formats the amount with comma thousands separators.
func (a amount) String() string {
	places := a.places()
	grapheme := ""
	if a.dollar {
		grapheme = "$"
	}
	f := money.NewFormatter(int(places), ".", ",", grapheme, "$1")
	return f.Format(a.value.Shift(places).IntPart())
}

// sumAmounts sums the values returned by field for all records. The result
// follows the first record dollar convention.
func sumAmounts(records []Record, field func(Record) string) (string, error) {
	var total amount
	for i, r := range records {
		a, err := parseAmount(field(r))
		if err != nil {
			return "", err
		}
		if i == 0 {
			total = a
			continue
		}
		total = total.Add(a)
	}
	return total.String(), nil
}
