package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ebookstore/inventory/internal/services"
)

// MenuChoice is a selection on the main menu.
type MenuChoice int

const (
	ChoiceExit MenuChoice = iota
	ChoiceAdd
	ChoiceUpdate
	ChoiceDelete
	ChoiceSearch
	ChoiceViewAll
)

// menuOrder is the order options are listed in; Exit goes last.
var menuOrder = []MenuChoice{ChoiceAdd, ChoiceUpdate, ChoiceDelete, ChoiceSearch, ChoiceViewAll, ChoiceExit}

func (c MenuChoice) String() string {
	switch c {
	case ChoiceExit:
		return "Exit"
	case ChoiceAdd:
		return "Add book"
	case ChoiceUpdate:
		return "Update book"
	case ChoiceDelete:
		return "Delete book"
	case ChoiceSearch:
		return "Search books"
	case ChoiceViewAll:
		return "View all books"
	default:
		return fmt.Sprintf("MenuChoice(%d)", int(c))
	}
}

// MenuOptions configures the console's input, output and terminal handling.
type MenuOptions struct {
	In     io.Reader
	Out    io.Writer
	Screen Screen
	Color  bool
	Log    zerolog.Logger
}

// MenuCommand runs the interactive catalog menu.
type MenuCommand struct {
	store    services.CatalogStore
	in       *bufio.Reader
	out      io.Writer
	screen   Screen
	palette  palette
	log      zerolog.Logger
	handlers map[MenuChoice]func() error
}

func NewMenuCommand(store services.CatalogStore, opts MenuOptions) *MenuCommand {
	screen := opts.Screen
	if screen == nil {
		screen = NoScreen{}
	}

	cmd := &MenuCommand{
		store:   store,
		in:      bufio.NewReader(opts.In),
		out:     opts.Out,
		screen:  screen,
		palette: palette{enabled: opts.Color},
		log:     opts.Log,
	}
	cmd.handlers = map[MenuChoice]func() error{
		ChoiceAdd:     cmd.addBook,
		ChoiceUpdate:  cmd.updateBook,
		ChoiceDelete:  cmd.deleteBook,
		ChoiceSearch:  cmd.searchBooks,
		ChoiceViewAll: cmd.viewAll,
	}
	return cmd
}

// Run shows the menu until the operator exits or input ends. Only console
// I/O failures are returned; storage and validation problems are reported to
// the operator and the loop carries on.
func (cmd *MenuCommand) Run() error {
	for {
		cmd.screen.Clear()
		cmd.printMenu()

		line, err := cmd.prompt("\nEnter selection: ")
		if err != nil {
			return cmd.finish(err)
		}

		choice, err := parseChoice(line)
		if err != nil {
			cmd.fail("Error: Please enter a number only")
		} else if choice == ChoiceExit {
			cmd.farewell()
			return nil
		} else if handler, ok := cmd.handlers[choice]; !ok {
			cmd.println("Invalid selection")
		} else if err := handler(); err != nil {
			return cmd.finish(err)
		}

		if err := cmd.pause(); err != nil {
			return cmd.finish(err)
		}
	}
}

func (cmd *MenuCommand) printMenu() {
	cmd.println(cmd.palette.success("╔════════════════════════════╗ "))
	cmd.println(cmd.palette.success(" ══════   eBookStore   ══════ "))
	cmd.println(cmd.palette.success("╚════════════════════════════╝ \n"))
	for _, c := range menuOrder {
		cmd.printf("%d. %s\n", int(c), c)
	}
}

func parseChoice(line string) (MenuChoice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, err
	}
	return MenuChoice(n), nil
}

// finish ends the session; running out of input counts as exiting.
func (cmd *MenuCommand) finish(err error) error {
	if errors.Is(err, io.EOF) {
		cmd.farewell()
		return nil
	}
	return err
}

func (cmd *MenuCommand) farewell() {
	cmd.println("\nGoodbye\n")
}

func (cmd *MenuCommand) pause() error {
	_, err := cmd.prompt("\nPress Enter to continue...")
	return err
}

// prompt writes msg and reads one line without its line terminator. A final
// line without a newline is returned normally; io.EOF is only reported when
// nothing was read.
func (cmd *MenuCommand) prompt(msg string) (string, error) {
	fmt.Fprint(cmd.out, msg)
	line, err := cmd.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (cmd *MenuCommand) println(s string) {
	fmt.Fprintln(cmd.out, s)
}

func (cmd *MenuCommand) printf(format string, args ...interface{}) {
	fmt.Fprintf(cmd.out, format, args...)
}

func (cmd *MenuCommand) succeed(format string, args ...interface{}) {
	cmd.println(cmd.palette.success("\n✔ " + fmt.Sprintf(format, args...)))
}

func (cmd *MenuCommand) fail(format string, args ...interface{}) {
	cmd.println(cmd.palette.failure("✘ " + fmt.Sprintf(format, args...)))
}
