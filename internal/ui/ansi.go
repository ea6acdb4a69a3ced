package ui

import (
	"fmt"
	"os"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"
)

var (
	forceColor   bool
	disableColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// C wraps s in the given ANSI color when output goes to a terminal.
func C(color, s string) string {
	if disableColor || color == "" {
		return s
	}
	if forceColor || isTTY() {
		return color + s + reset
	}
	return s
}

func OK(msg string)   { fmt.Println(C(fgGreen, Current().SymDone+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(os.Stderr, C(fgRed, Current().SymFail+" "+msg)) }

// Hint prints a muted follow-up line on stderr, next to a Fail.
func Hint(msg string) { fmt.Fprintln(os.Stderr, C(fgGray, msg)) }
