// Package presenter prints user-facing status messages for the CLI.
// Catalog and report content renders to an io.Writer elsewhere; this
// package carries only the chatter around it. Errors and warnings go to
// the error writer so machine-readable stdout stays clean.
package presenter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ColorMode controls whether styled output is forced, suppressed, or
// left to terminal detection.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Presenter writes status messages to a pair of writers. Quiet mode
// drops everything except errors.
type Presenter struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool

	errStyle  *color.Color
	warnStyle *color.Color
}

// New returns a presenter on stdout and stderr with the color mode
// taken from the environment.
func New() *Presenter {
	return NewWithWriters(os.Stdout, os.Stderr, colorModeFromEnv())
}

// NewWithWriters returns a presenter on the given writers. Tests use it
// to capture output.
func NewWithWriters(out, errOut io.Writer, mode ColorMode) *Presenter {
	p := &Presenter{
		out:       out,
		errOut:    errOut,
		errStyle:  color.New(color.FgRed, color.Bold),
		warnStyle: color.New(color.FgYellow, color.Bold),
	}

	switch mode {
	case ColorAlways:
		p.errStyle.EnableColor()
		p.warnStyle.EnableColor()
	case ColorNever:
		p.errStyle.DisableColor()
		p.warnStyle.DisableColor()
	}

	return p
}

// colorModeFromEnv honors NO_COLOR first, then AGENTSCAN_COLOR.
func colorModeFromEnv() ColorMode {
	if os.Getenv("NO_COLOR") != "" {
		return ColorNever
	}

	switch os.Getenv("AGENTSCAN_COLOR") {
	case "always", "force":
		return ColorAlways
	case "never", "off":
		return ColorNever
	default:
		return ColorAuto
	}
}

// SetQuiet toggles quiet mode. Errors print regardless.
func (p *Presenter) SetQuiet(quiet bool) {
	p.quiet = quiet
}

// Error reports a failed operation with its cause. A nil error is a
// no-op.
func (p *Presenter) Error(err error, context string) {
	if err == nil {
		return
	}
	if context == "" {
		p.errStyle.Fprintf(p.errOut, "[ERROR] %v\n", err)
		return
	}
	p.errStyle.Fprintf(p.errOut, "[ERROR] %s: %v\n", context, err)
}

// Warning reports a degraded but continuing operation.
func (p *Presenter) Warning(message string) {
	if p.quiet {
		return
	}
	p.warnStyle.Fprintf(p.errOut, "⚠ %s\n", message)
}

// Info prints an unstyled hint.
func (p *Presenter) Info(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s\n", message)
}

var defaultPresenter = New()

// Error reports through the default presenter.
func Error(err error, context string) {
	defaultPresenter.Error(err, context)
}

// Warning reports through the default presenter.
func Warning(message string) {
	defaultPresenter.Warning(message)
}

// Info prints through the default presenter.
func Info(message string) {
	defaultPresenter.Info(message)
}

// SetQuiet toggles quiet mode on the default presenter.
func SetQuiet(quiet bool) {
	defaultPresenter.SetQuiet(quiet)
}
