// Package term provides ANSI color resolution and terminal detection.
//
// Colors are carried in a [Palette] value rather than package-level state;
// [Configure] builds one during startup and the logger owns it afterwards.
// When colors are disabled every palette entry renders text unchanged.
package term

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/backmassage/subrename/internal/config"
)

// Palette holds the colors used for level labels and highlights.
type Palette struct {
	Red     *color.Color
	Green   *color.Color
	Yellow  *color.Color
	Blue    *color.Color
	Cyan    *color.Color
	Magenta *color.Color
	enabled bool
}

// Configure resolves the color mode against out and returns the palette.
func Configure(mode config.ColorMode, out *os.File) Palette {
	return NewPalette(resolve(mode, out))
}

// NewPalette returns a palette with colors forced on or off.
func NewPalette(enabled bool) Palette {
	p := Palette{
		Red:     color.New(color.FgHiRed, color.Bold),
		Green:   color.New(color.FgHiGreen, color.Bold),
		Yellow:  color.New(color.FgHiYellow, color.Bold),
		Blue:    color.New(color.FgHiBlue, color.Bold),
		Cyan:    color.New(color.FgHiCyan, color.Bold),
		Magenta: color.New(color.FgHiMagenta, color.Bold),
		enabled: enabled,
	}
	for _, c := range []*color.Color{p.Red, p.Green, p.Yellow, p.Blue, p.Cyan, p.Magenta} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Enabled reports whether the palette emits ANSI sequences.
func (p Palette) Enabled() bool { return p.enabled }

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode, out *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(out) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (including Cygwin/MSYS pipes).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
