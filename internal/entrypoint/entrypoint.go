package entrypoint

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-colorable"

	"github.com/ebookstore/inventory/internal/cli"
	"github.com/ebookstore/inventory/internal/config"
	"github.com/ebookstore/inventory/internal/database"
	"github.com/ebookstore/inventory/internal/database/books"
	"github.com/ebookstore/inventory/internal/logging"
)

// Streams are the console endpoints of a session. Terminal is the file
// behind Out when it may be a TTY; nil disables screen clearing and colours.
type Streams struct {
	In       io.Reader
	Out      io.Writer
	Err      io.Writer
	Terminal *os.File
}

// StdStreams returns the process's standard streams, with ANSI output
// translated on Windows consoles.
func StdStreams() Streams {
	return Streams{
		In:       os.Stdin,
		Out:      colorable.NewColorableStdout(),
		Err:      colorable.NewColorableStderr(),
		Terminal: os.Stdout,
	}
}

// Run prepares the catalog and runs the interactive menu on the standard
// streams until the operator exits.
func Run(cfg *config.Config, version string) error {
	return RunWith(cfg, version, StdStreams())
}

// RunWith is Run with explicit streams.
func RunWith(cfg *config.Config, version string, s Streams) error {
	log := logging.New(s.Err, cfg.Logging.Level)
	log.Info().
		Str("version", version).
		Str("database", cfg.Database.Path()).
		Bool("reset", cfg.Database.ResetOnStart).
		Msg("Starting eBookStore")

	connect := database.NewConnector(cfg.Database.Path(), logging.GormLogger(log, cfg.Logging.SQLDebug))

	inserted, err := database.Initialize(connect, database.InitOptions{Reset: cfg.Database.ResetOnStart}, log)
	if err != nil {
		log.Error().Err(err).Str("database", cfg.Database.Path()).Msg("Failed to initialize catalog")
		return fmt.Errorf("failed to initialize catalog: %w", err)
	}
	fmt.Fprintf(s.Out, "\n%s records have been inserted into the table.\n", humanize.Comma(int64(inserted)))

	opts := cli.MenuOptions{
		In:     s.In,
		Out:    s.Out,
		Screen: cli.NoScreen{},
		Log:    log,
	}
	if s.Terminal != nil {
		opts.Screen = cli.NewScreen(s.Terminal)
		opts.Color = cli.IsTerminal(s.Terminal)
	}

	cmd := cli.NewMenuCommand(books.NewRepository(connect), opts)
	if err := cmd.Run(); err != nil {
		log.Error().Err(err).Msg("Console session failed")
		return err
	}

	log.Info().Msg("Session ended")
	return nil
}
