package theme

import "github.com/thenoetrevino/chatdo/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight  string
	Assistant  string
	CardBorder string
	Title      string
	Subtle     string
	Normal     string
	InfoFg     string
	InfoBg     string
	WarningFg  string
	WarningBg  string
	ErrorFg    string
	ErrorBg    string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Assistant = colors.Assistant
	CardBorder = colors.CardBorder
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
