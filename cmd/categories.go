package cmd

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/etnz/taxlot"
	"github.com/google/subcommands"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the recognized sales categories and their TXF codes" }
func (*categoriesCmd) Usage() string {
	return `mssb categories

  Lists the sales categories recognized in statements, with the TXF
  reference number they are reported under.
`
}

func (*categoriesCmd) SetFlags(*flag.FlagSet) {}

func (*categoriesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tCATEGORY")
	for _, c := range taxlot.Categories {
		code, err := c.TXFCode()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(w, "%s\t%s\n", code, c)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
