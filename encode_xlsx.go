package taxlot

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXSheet is the name of the worksheet written by EncodeXLSX.
const XLSXSheet = "1099-B"

// EncodeXLSX writes records to w as an Excel workbook with a single sheet:
// a header row listing Fields, then one row per record.
//
// Values are written as text, exactly as they are printed in the statement.
func EncodeXLSX(w io.Writer, records []Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", XLSXSheet); err != nil {
		return fmt.Errorf("cannot create sheet: %w", err)
	}
	if err := setRow(f, 1, Fields); err != nil {
		return err
	}
	for i, r := range records {
		if err := setRow(f, i+2, r.values()); err != nil {
			return err
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(XLSXSheet, cell, &cells); err != nil {
		return fmt.Errorf("cannot write row %d: %w", row, err)
	}
	return nil
}

// DecodeXLSX reads records from a workbook written by EncodeXLSX.
func DecodeXLSX(r io.Reader) ([]Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(XLSXSheet)
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", XLSXSheet, err)
	}
	var records []Record
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		// trailing empty cells are not returned.
		v := make([]string, len(Fields))
		copy(v, row)
		records = append(records, Record{
			Category:      Category(v[0]),
			RefNumber:     v[1],
			PlanNumber:    v[2],
			Description:   v[3],
			CUSIP:         v[4],
			Quantity:      v[5],
			DateAcquired:  v[6],
			DateSold:      v[7],
			GrossProceeds: v[8],
			CostBasis:     v[9],
		})
	}
	return records, nil
}
