// Command mssb extracts tax lots from Morgan Stanley (MSSB) 1099-B statements,
// and converts them to CSV, JSONL, XLSX or TXF.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"path"

	"github.com/etnz/taxlot/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// an optional .env file can set MSSB_* variables.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("cannot load .env file")
	}

	// Handles shell completion requests (and exits) if any.
	cmd.Completion().Complete("mssb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogging()

	if sub := flag.Arg(0); sub != "" && !isRegistered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// isRegistered reports whether name is a builtin subcommand.
func isRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		if sc.Name() == name {
			found = true
		}
	})
	return found
}
