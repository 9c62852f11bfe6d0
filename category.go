package taxlot

import (
	"errors"
	"fmt"
)

// Category is a sales category as labelled in the 1099-B statement.
type Category string

const (
	ShortTermNoncovered Category = "Short Term – Noncovered Securities"
	LongTermNoncovered  Category = "Long Term – Noncovered Securities"
)

// Categories lists all known categories, in the order they appear in a statement.
var Categories = []Category{ShortTermNoncovered, LongTermNoncovered}

// txfCodes maps categories to their TXF reference number.
// See https://www.taxdataexchange.org/txf/txf-spec.html
var txfCodes = map[Category]string{
	ShortTermNoncovered: "711",
	LongTermNoncovered:  "713",
}

// ErrUnknownCategory is returned when a category has no TXF code.
var ErrUnknownCategory = errors.New("unknown category")

// TXFCode returns the TXF reference number for the category.
func (c Category) TXFCode() (string, error) {
	code, ok := txfCodes[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
	}
	return code, nil
}

func (c Category) String() string { return string(c) }
