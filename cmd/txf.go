package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/taxlot"
	"github.com/etnz/taxlot/date"
	"github.com/google/subcommands"
)

type txfCmd struct {
	date string
}

func (*txfCmd) Name() string     { return "txf" }
func (*txfCmd) Synopsis() string { return "convert a 1099-B statement to TXF" }
func (*txfCmd) Usage() string {
	return `mssb txf [-date <MM/DD/YYYY>] <statement>

  Extracts the tax lots of a single statement and prints them in the TXF
  (Tax eXchange Format, v042) format, ready to be imported in tax
  preparation software. Wash sales are not handled: the adjustment is
  always left empty.

`
}

func (c *txfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Date of the TXF file, MM/DD/YYYY or YYYY-MM-DD (defaults to today)")
}

func (c *txfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Usage: mssb txf path-to-1099b-pdf")
		return subcommands.ExitUsageError
	}

	on := date.Today()
	if c.date != "" {
		var err error
		if on, err = parseDate(c.date); err != nil {
			fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	records, err := DecodeRecords(f.Args(), taxlot.Options{})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := taxlot.EncodeTXF(stdout, records, on); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// parseDate accepts both the TXF and the ISO date formats.
func parseDate(s string) (date.Date, error) {
	if d, err := date.ParseTXF(s); err == nil {
		return d, nil
	}
	return date.Parse(s)
}
