package taxlot

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// EncodeCSV writes records to w as CSV, with a header row listing Fields.
//
// Lines end with CRLF, as in RFC 4180.
func EncodeCSV(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{} // header only
	}
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return fmt.Errorf("cannot encode records as CSV: %w", err)
	}
	return nil
}

// DecodeCSV reads records from a CSV previously written by EncodeCSV.
//
// Values are read as is: the grammar used to parse statements is not
// applied.
func DecodeCSV(r io.Reader) ([]Record, error) {
	var records []Record
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("cannot decode CSV records: %w", err)
	}
	return records, nil
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (c Category) MarshalCSV() (string, error) { return string(c), nil }

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (c *Category) UnmarshalCSV(s string) error {
	*c = Category(s)
	return nil
}
