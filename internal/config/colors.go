package config

import "github.com/thenoetrevino/chatdo/internal/config/colors"

// ColorScheme is the theme section of the config file. Preset picks the base
// palette and every non-empty field overrides it.
type ColorScheme = colors.ColorScheme

// PresetNames lists the accepted values of theme.preset
var PresetNames = []string{"default", "monochrome"}

// ResolveColorScheme returns the named preset with every color filled in.
// Unknown names resolve to the default palette.
func ResolveColorScheme(preset string) ColorScheme {
	scheme := ColorScheme{Preset: preset}
	scheme.ApplyDefaults()
	return scheme
}
