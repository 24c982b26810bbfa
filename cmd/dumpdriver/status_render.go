package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"dumpdriver/internal/deps"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

var statusStyles = map[statusKind]struct {
	label string
	color string
}{
	statusInfo:  {"INFO", "\x1b[34m"},
	statusOK:    {"OK", ansiGreen},
	statusWarn:  {"WARN", "\x1b[33m"},
	statusError: {"ERROR", "\x1b[31m"},
}

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"

	statusLabelWidth = 20
	statusIndent     = "  "
)

// renderStatusLine formats "  Label:   [KIND] message", colored by kind when
// colorize is set.
func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	style, ok := statusStyles[kind]
	if !ok {
		style = statusStyles[statusInfo]
	}
	text := "[" + style.label + "]"
	if message != "" {
		text += " " + message
	}
	line := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", text)
	if colorize {
		return style.color + line + ansiReset
	}
	return line
}

// dependencyLines reports each engine executable that is missing. A missing
// default engine is an error; others are warnings.
func dependencyLines(statuses []deps.Status, colorize bool) []string {
	var lines []string
	for _, status := range statuses {
		if status.Available {
			continue
		}
		kind := statusError
		if status.Optional {
			kind = statusWarn
		}
		lines = append(lines, renderStatusLine(status.Name, kind, status.Detail, colorize))
	}
	return lines
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
