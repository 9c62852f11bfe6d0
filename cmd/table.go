package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/taxlot"
	"github.com/google/subcommands"
)

// --- CSV Command ---

type csvCmd struct {
	processFlags
}

func (*csvCmd) Name() string     { return "csv" }
func (*csvCmd) Synopsis() string { return "convert 1099-B statements to CSV" }
func (*csvCmd) Usage() string {
	return `mssb csv [-sort] [-group] <statement>...

  Extracts the tax lots of all the statements and prints them as CSV, with a
  header row. Statements are PDF files, or text files (.txt) already extracted
  with 'pdftotext -raw'.

`
}

func (c *csvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, status := c.decode(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	if err := taxlot.EncodeCSV(stdout, records); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// --- JSONL Command ---

type jsonlCmd struct {
	processFlags
}

func (*jsonlCmd) Name() string     { return "jsonl" }
func (*jsonlCmd) Synopsis() string { return "convert 1099-B statements to JSON lines" }
func (*jsonlCmd) Usage() string {
	return `mssb jsonl [-sort] [-group] <statement>...

  Extracts the tax lots of all the statements and prints them as one JSON
  object per line. Empty reference and plan numbers are omitted.

`
}

func (c *jsonlCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, status := c.decode(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	if err := taxlot.EncodeJSONL(stdout, records); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// --- XLSX Command ---

type xlsxCmd struct {
	processFlags
	output string
}

func (*xlsxCmd) Name() string     { return "xlsx" }
func (*xlsxCmd) Synopsis() string { return "convert 1099-B statements to an Excel workbook" }
func (*xlsxCmd) Usage() string {
	return `mssb xlsx [-sort] [-group] -o <workbook.xlsx> <statement>...

  Extracts the tax lots of all the statements and writes them in a single
  worksheet. Values are written as text, as printed in the statements.

`
}

func (c *xlsxCmd) SetFlags(f *flag.FlagSet) {
	c.processFlags.SetFlags(f)
	f.StringVar(&c.output, "o", "", "Output workbook file (required)")
}

func (c *xlsxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		fmt.Fprintln(stderr, "Error: -o is required")
		return subcommands.ExitUsageError
	}
	records, status := c.decode(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating workbook %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := taxlot.EncodeXLSX(out, records); err != nil {
		fmt.Fprintf(stderr, "Error writing workbook %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(stderr, "Error writing workbook %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
