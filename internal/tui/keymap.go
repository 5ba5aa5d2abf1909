package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/chatdo/internal/config"
)

// KeyMap holds the bindings built from the configured key mappings
type KeyMap struct {
	Submit     key.Binding
	ClearInput key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	Refresh    key.Binding
	Quit       key.Binding
}

// NewKeyMap converts config.KeyMappings into key bindings
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		Submit:     key.NewBinding(key.WithKeys(km.Submit), key.WithHelp(km.Submit, "send")),
		ClearInput: key.NewBinding(key.WithKeys(km.ClearInput), key.WithHelp(km.ClearInput, "clear")),
		ScrollUp:   key.NewBinding(key.WithKeys(km.ScrollUp), key.WithHelp(km.ScrollUp, "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys(km.ScrollDown), key.WithHelp(km.ScrollDown, "scroll down")),
		NextPage:   key.NewBinding(key.WithKeys(km.NextPage), key.WithHelp(km.NextPage, "next page")),
		PrevPage:   key.NewBinding(key.WithKeys(km.PrevPage), key.WithHelp(km.PrevPage, "prev page")),
		Refresh:    key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "refresh")),
		Quit:       key.NewBinding(key.WithKeys(km.Quit), key.WithHelp(km.Quit, "quit")),
	}
}

// hint renders "key: desc" pairs for the status bar
func hint(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		out += b.Help().Key + ": " + b.Help().Desc
	}
	return out
}
