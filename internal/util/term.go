package util

import (
	"os"

	"github.com/fatih/color"
)

// IsTTY reports whether f is a character device such as a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// ColorEnabled reports whether output may be coloured: the --no-color flag
// and NO_COLOR are unset and stdout is a terminal.
func ColorEnabled(noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTTY(os.Stdout)
}

// InitColor turns colour off for fatih/color when ColorEnabled says so.
func InitColor(noColor bool) {
	if !ColorEnabled(noColor) {
		color.NoColor = true
	}
}
