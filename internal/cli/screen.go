package cli

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/mattn/go-isatty"
)

// Screen clears the terminal between menu iterations.
type Screen interface {
	Clear()
}

// NoScreen never clears. It is used when output is not a terminal.
type NoScreen struct{}

func (NoScreen) Clear() {}

// TerminalScreen clears the terminal using the host's clear command.
type TerminalScreen struct {
	out *os.File
}

// NewScreen returns a TerminalScreen when f is a terminal and NoScreen
// otherwise.
func NewScreen(f *os.File) Screen {
	if !IsTerminal(f) {
		return NoScreen{}
	}
	return TerminalScreen{out: f}
}

func (s TerminalScreen) Clear() {
	var c *exec.Cmd
	if runtime.GOOS == "windows" {
		c = exec.Command("cmd", "/c", "cls")
	} else {
		c = exec.Command("clear")
	}
	c.Stdout = s.out
	_ = c.Run()
}

// IsTerminal reports whether f is an interactive terminal, including
// Cygwin/MSYS terminals on Windows.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
