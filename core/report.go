// Package core formats failure reports and restores the terminal on crashes.
package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/lixenwraith/twopane/terminal"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5F87"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"})

	traceStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// FormatReport renders err, any secondary failures and the deepest recorded stack trace
// A *terminal.SessionError anywhere in the chain is split into its run error and the restore failure
func FormatReport(err error, secondary ...error) string {
	if err == nil {
		return ""
	}
	var se *terminal.SessionError
	if errors.As(err, &se) {
		err = se.Run
		secondary = append([]error{se.Restore}, secondary...)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Error: " + err.Error()))
	b.WriteString("\n")

	for _, s := range secondary {
		if s == nil {
			continue
		}
		b.WriteString(labelStyle.Render("also failed: " + s.Error()))
		b.WriteString("\n")
	}

	if st := deepestStack(err); st != nil {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Stack Trace:"))
		b.WriteString("\n")
		b.WriteString(traceStyle.Render(strings.TrimLeft(fmt.Sprintf("%+v", st), "\n")))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatCrash renders a recovered panic value with its goroutine stack
func FormatCrash(r any, stack []byte) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("CRASH DETECTED: %v", r)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Stack Trace:"))
	b.WriteString("\n")
	b.Write(stack)
	b.WriteString("\n")
	return b.String()
}

// Report writes FormatReport to w
func Report(w io.Writer, err error, secondary ...error) {
	if err == nil {
		return
	}
	io.WriteString(w, FormatReport(err, secondary...))
}

// deepestStack returns the stack recorded closest to where the error originated
// Wrap frames win over the package-init stack of an errors.New sentinel
func deepestStack(err error) errors.StackTrace {
	var st errors.StackTrace
	for e := err; e != nil; e = errors.Unwrap(e) {
		t, ok := e.(stackTracer)
		if !ok {
			continue
		}
		if errors.Unwrap(e) != nil || st == nil {
			st = t.StackTrace()
		}
	}
	return st
}
