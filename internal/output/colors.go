package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Key   *color.Color
	Value *color.Color
	Path  *color.Color
	Index *color.Color
	Muted *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Key:   color.New(color.FgBlue, color.Bold),
		Value: color.New(color.FgWhite),
		Path:  color.New(color.FgCyan),
		Index: color.New(color.FgYellow),
		Muted: color.New(color.FgHiBlack),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Key.DisableColor()
	scheme.Value.DisableColor()
	scheme.Path.DisableColor()
	scheme.Index.DisableColor()
	scheme.Muted.DisableColor()

	return scheme
}

// InfoIcon returns an info symbol with appropriate color
func InfoIcon(noColor bool) string {
	if noColor {
		return "ℹ"
	}
	return color.New(color.FgBlue).Sprint("ℹ")
}
