// Package cmd implements the CLI application to extract tax lots from 1099-B statements.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/etnz/taxlot"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&csvCmd{}, "statements")
	c.Register(&jsonlCmd{}, "statements")
	c.Register(&xlsxCmd{}, "statements")
	c.Register(&txfCmd{}, "statements")

	c.Register(&categoriesCmd{}, "help")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var Verbose = flag.Bool("v", false, "Verbose output, log parsing details on stderr")
var pdfToText = flag.String("pdftotext", "", "pdftotext binary used to extract text from statements (default from $"+EnvPdfToText+" or "+taxlot.DefaultPdfToText+")")

// stdout and stderr are the command outputs, tests can replace them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// verbose reports whether verbose mode is on, from the flag or the environment.
func verbose() bool {
	if *Verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// SetupLogging configures the global logger and the taxlot package logger,
// it must be called after flags are parsed.
func SetupLogging() {
	level := zerolog.InfoLevel
	if verbose() {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().
		Logger()
	taxlot.Logger = log.Logger
}

// PdfToTextBin returns the text converter to use.
func PdfToTextBin() string {
	if *pdfToText != "" {
		return *pdfToText
	}
	if bin := os.Getenv(EnvPdfToText); bin != "" {
		return bin
	}
	return taxlot.DefaultPdfToText
}

// DecodeRecords parses all the statement files and post-processes their records.
func DecodeRecords(files []string, opts taxlot.Options) ([]taxlot.Record, error) {
	records, err := taxlot.ParseFiles(taxlot.PdfToText{Bin: PdfToTextBin()}, files...)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("records", len(records)).Int("files", len(files)).Msg("parsed statements")
	return opts.Process(records)
}

// processFlags are the post-processing flags shared by tabular commands.
type processFlags struct {
	opts taxlot.Options
}

func (p *processFlags) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.opts.Sort, "sort", false, "Sort the entries by category, description and dates")
	f.BoolVar(&p.opts.Group, "group", false, "Group equivalent tax lots (discards ref/plan numbers), implies -sort")
}

// decode reads the records of all the files in f arguments, reporting errors on stderr.
func (p *processFlags) decode(f *flag.FlagSet) ([]taxlot.Record, subcommands.ExitStatus) {
	if f.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: at least one statement file is required")
		return nil, subcommands.ExitUsageError
	}
	records, err := DecodeRecords(f.Args(), p.opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return records, subcommands.ExitSuccess
}
