// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"todo/internal/model"
)

// Color modes accepted by NewPrinter.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	// TaskSeparator separates the index from the description in list output.
	TaskSeparator = " | "

	errorPrefix      = "error:"
	invalidArgPrefix = "invalid arg:"
)

// FormatTask formats a task line for the list action.
// Format: "{index} | {description}\n"
func FormatTask(w io.Writer, index int, task model.Task) {
	fmt.Fprintf(w, "%d%s%s\n", index, TaskSeparator, task.Description)
}

// Printer writes diagnostics to the error stream, coloring the prefix when
// enabled.
type Printer struct {
	w      io.Writer
	prefix *color.Color
}

// NewPrinter creates a Printer on w for the given color mode.
// In auto mode color is used only when w is a terminal.
func NewPrinter(w io.Writer, mode string) *Printer {
	prefix := color.New(color.FgRed, color.Bold)
	if useColor(w, mode) {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	return &Printer{w: w, prefix: prefix}
}

// Error prints a fatal condition.
// Format: "error: {err}\n"
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.w, "%s %v\n", p.prefix.Sprint(errorPrefix), err)
}

// InvalidArg prints a rejected command line.
// Format: "invalid arg: {err}\n"
func (p *Printer) InvalidArg(err error) {
	fmt.Fprintf(p.w, "%s %v\n", p.prefix.Sprint(invalidArgPrefix), err)
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
