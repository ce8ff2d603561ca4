package tui

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// Key bindings shared by the interactive views
const (
	KeyCtrlC = "ctrl+c"
	KeyQuit  = "q"
)

// ErrInteractiveDisabled is returned when prompts are disabled via GITDECK_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (GITDECK_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled
func checkInteractiveAllowed() error {
	if os.Getenv("GITDECK_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// IsTTY returns true if we can use a TTY for interactive TUI
func IsTTY() bool {
	if checkInteractiveAllowed() != nil {
		return false
	}
	if !((isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))) {
		return false
	}
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
