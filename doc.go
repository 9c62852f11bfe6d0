// Package taxlot extracts tax-lot records from the text of brokerage 1099-B
// statements and encodes them for tax-preparation software.
//
// The core functionalities include:
//   - Text Acquisition: running an external converter (pdftotext) over the
//     statement, or reading text that has already been extracted.
//   - Section Extraction: locating the sales categories (short term, long
//     term) reported in the statement.
//   - Row Extraction: recognizing each sold lot within a category using a
//     fixed-field grammar. Lines that do not fit are ignored.
//   - Post-processing: grouping equivalent lots and sorting them.
//   - Encoding: CSV, JSONL and XLSX tables, and the TXF interchange format
//     understood by most tax-preparation programs.
//
// This package serves as the foundational logic for the `mssb` command-line
// tool.
package taxlot
