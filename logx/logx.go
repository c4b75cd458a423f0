// file:radix/logx/logx.go

// Package logx builds styled zerolog loggers for programs using the radix
// tree. Output is colorized with lipgloss when the target is a terminal
// and falls back to plain text otherwise.
package logx

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

//
// ---------- IBM Carbon Colors ----------

const (
	ColorTeal40    = "#3ddbd9"
	ColorBlue40    = "#78a9ff"
	ColorBlue60    = "#4589ff"
	ColorRed60     = "#da1e28"
	ColorRedStrong = "#ff0000"
	ColorOrange40  = "#ff832b"
	ColorGray10    = "#f4f4f4"
	ColorGray60    = "#8d8d8d"
)

//
// ---------- Constructors ----------

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// Console returns a logger writing human-readable lines to w. Styling is
// enabled only when w is a terminal.
func Console(w io.Writer) zerolog.Logger {
	cw := ConsoleWriter(w, isTerminal(w))
	return zerolog.New(cw).With().Timestamp().Logger()
}

// ConsoleWriter builds a zerolog.ConsoleWriter with lipgloss styles.
func ConsoleWriter(w io.Writer, colored bool) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: zerolog.TimeFieldFormat,
		NoColor:    !colored,
	}
	if !colored {
		return cw
	}

	cw.FormatLevel = func(i any) string {
		lvl := strings.ToLower(fmt.Sprint(i))
		var color string
		switch lvl {
		case "trace", "debug":
			color = ColorTeal40
		case "info":
			color = ColorBlue60
		case "warn":
			color = ColorOrange40
		case "error":
			color = ColorRed60
		case "fatal":
			color = ColorRedStrong
		default:
			color = ColorGray60
		}
		if len(lvl) < 3 {
			lvl = "log"
		}
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(color)).
			Padding(0, 1).
			Render(strings.ToUpper(lvl[:3]))
	}

	cw.FormatTimestamp = func(i any) string {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray60)).
			Render(fmt.Sprintf("[%s]", i))
	}

	cw.FormatFieldName = func(i any) string {
		key := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlue40)).
			Render(fmt.Sprint(i))
		eq := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray60)).
			Render("=")
		return key + eq
	}

	cw.FormatMessage = func(i any) string {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray10)).
			Render(fmt.Sprint(i))
	}

	return cw
}

//
// ---------- TTY Detection ----------

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
