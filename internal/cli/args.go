package cli

import (
	"flag"
	"fmt"
	"io"
)

// ParseArgs validates the command line. The program takes no flags or
// arguments; -h and --help print usage and return flag.ErrHelp.
func ParseArgs(name string, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s\n\n", name)
		fmt.Fprintf(stderr, "Interactive inventory manager for the bookstore catalog.\n\n")
		fmt.Fprintf(stderr, "The catalog is stored in data/ebookstore.db and is reset to the\n")
		fmt.Fprintf(stderr, "seed books on every start.\n\n")
		fmt.Fprintf(stderr, "Environment:\n")
		fmt.Fprintf(stderr, "  BOOKSTORE_DATA_DIR        Data directory (default: data)\n")
		fmt.Fprintf(stderr, "  BOOKSTORE_DATABASE_FILE   Database file name (default: ebookstore.db)\n")
		fmt.Fprintf(stderr, "  BOOKSTORE_RESET_ON_START  Drop and reseed the catalog on start (default: true)\n")
		fmt.Fprintf(stderr, "  BOOKSTORE_LOG_LEVEL       Log level (default: warn)\n")
		fmt.Fprintf(stderr, "  BOOKSTORE_SQL_DEBUG       Log SQL statements (default: false)\n")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	return nil
}
