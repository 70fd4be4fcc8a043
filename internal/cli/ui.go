package cli

import (
	"github.com/charmbracelet/lipgloss"

	perrors "github.com/matzehuels/pretty/pkg/errors"
	"github.com/matzehuels/pretty/pkg/jsondoc"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - numbers
	colorGreen  = lipgloss.Color("35")  // Green - strings
	colorYellow = lipgloss.Color("220") // Amber - booleans
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - keys
	colorGray   = lipgloss.Color("245") // Gray - punctuation
	colorDim    = lipgloss.Color("240") // Dim gray - null
)

// =============================================================================
// Status Styles
// =============================================================================

var (
	// StyleError marks error messages on stderr.
	StyleError = lipgloss.NewStyle().Foreground(colorRed)

	styleIconError = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

const iconError = "✗"

// FormatError renders msg as a one-line error status.
func FormatError(msg string) string {
	return styleIconError.Render(iconError) + " " + StyleError.Render(msg)
}

// ExitCode maps err to a process exit status: 2 when the input, flags or
// configuration were rejected, 1 for everything else.
func ExitCode(err error) int {
	switch perrors.GetCode(err) {
	case perrors.ErrCodeInvalidInput,
		perrors.ErrCodeInvalidWidth,
		perrors.ErrCodeInvalidIndent,
		perrors.ErrCodeInvalidConfig,
		perrors.ErrCodeInvalidJSON,
		perrors.ErrCodeInvalidColor,
		perrors.ErrCodeInvalidMeasure,
		perrors.ErrCodeFileNotFound:
		return 2
	default:
		return 1
	}
}

// defaultPalette returns the built-in token colors.
func defaultPalette() map[string]StyleConfig {
	return map[string]StyleConfig{
		jsondoc.Punct.String():  {Foreground: string(colorGray)},
		jsondoc.Key.String():    {Foreground: string(colorBlue), Bold: true},
		jsondoc.String.String(): {Foreground: string(colorGreen)},
		jsondoc.Number.String(): {Foreground: string(colorCyan)},
		jsondoc.Bool.String():   {Foreground: string(colorYellow)},
		jsondoc.Null.String():   {Foreground: string(colorDim), Italic: true},
	}
}
