// Package output renders analytics results for the terminal.
//
// Everything writes to an io.Writer so commands can target stdout and tests
// a buffer. Colors are applied only when the Printer was built with color on.
package output

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	ruleWidth = 59
	barWidth  = 30

	colorBar = color.FgBlue
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Printer writes formatted sections to w
type Printer struct {
	w     io.Writer
	color bool
}

// New creates a Printer. Pass IsColorEnabled() for terminal output.
func New(w io.Writer, useColor bool) *Printer {
	return &Printer{w: w, color: useColor}
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer { return p.w }

func (p *Printer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Title prints the dashboard banner
func (p *Printer) Title(title string, lines ...string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, strings.Repeat("═", ruleWidth))
	p.paint(color.FgCyan, color.Bold).Fprintf(p.w, "  %s\n", title)
	if len(lines) > 0 {
		fmt.Fprintln(p.w, strings.Repeat("─", ruleWidth))
		for _, l := range lines {
			fmt.Fprintf(p.w, "  %s\n", l)
		}
	}
	fmt.Fprintln(p.w, strings.Repeat("═", ruleWidth))
}

// Section prints a section heading
func (p *Printer) Section(title string) {
	fmt.Fprintln(p.w)
	p.paint(color.FgYellow, color.Bold).Fprintln(p.w, title)
	fmt.Fprintln(p.w, strings.Repeat("─", ruleWidth))
}

// Subsection prints a minor heading
func (p *Printer) Subsection(title string) {
	fmt.Fprintln(p.w)
	p.paint(color.Bold).Fprintln(p.w, title)
}

// Warning prints a warning message
func (p *Printer) Warning(message string) {
	p.paint(color.FgYellow).Fprintf(p.w, "⚠️  %s\n", message)
}

// Success prints a success message
func (p *Printer) Success(message string) {
	p.paint(color.FgGreen).Fprintf(p.w, "✅ %s\n", message)
}

// Error prints an error message
func (p *Printer) Error(message string) {
	p.paint(color.FgRed).Fprintf(p.w, "❌ %s\n", message)
}

// Info prints an info message
func (p *Printer) Info(message string) {
	fmt.Fprintf(p.w, "ℹ️  %s\n", message)
}

// FormatFloat rounds to two decimals for display; NaN shows as n/a
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatKey renders a tenure or code value without a trailing .00
func formatKey(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
