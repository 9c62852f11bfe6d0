package taxlot

import (
	"bufio"
	"io"

	"github.com/etnz/taxlot/date"
)

// TXFApplication is the application name reported in TXF headers.
const TXFApplication = "mssb_1099b_to_txf"

// EncodeTXF writes records to w in TXF v042 format, dated on.
//
// Wash sale adjustments are not computed: they are always written empty.
func EncodeTXF(w io.Writer, records []Record, on date.Date) error {
	// validate first, so that nothing is written for invalid records.
	codes := make([]string, len(records))
	for i, r := range records {
		code, err := r.Category.TXFCode()
		if err != nil {
			return err
		}
		codes[i] = code
	}

	bw := bufio.NewWriter(w)
	line := func(s string) {
		bw.WriteString(s)
		bw.WriteByte('\n')
	}

	line("V042")
	line("A " + TXFApplication)
	line("D " + on.TXF())
	line("^")
	for i, r := range records {
		line("TD")
		line("N" + codes[i])
		line("C1")
		line("L1")
		line("P" + r.TXFDescription())
		line("D" + r.DateAcquired)
		line("D" + r.DateSold)
		line(r.CostBasis) // already starts with "$"
		line(r.GrossProceeds)
		line("$") // wash sale
		line("^")
	}
	return bw.Flush()
}
