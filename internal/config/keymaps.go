package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Chat
	Submit     string `yaml:"submit"`
	ClearInput string `yaml:"clear_input"`
	ScrollUp   string `yaml:"scroll_up"`
	ScrollDown string `yaml:"scroll_down"`

	// Navigation
	NextPage string `yaml:"next_page"`
	PrevPage string `yaml:"prev_page"`

	// History
	Refresh string `yaml:"refresh"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		Submit:     "enter",
		ClearInput: "esc",
		ScrollUp:   "pgup",
		ScrollDown: "pgdown",
		NextPage:   "tab",
		PrevPage:   "shift+tab",
		Refresh:    "r",
		Quit:       "ctrl+c",
	}
}

// applyDefaults fills in any missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.Submit == "" {
		k.Submit = defaults.Submit
	}
	if k.ClearInput == "" {
		k.ClearInput = defaults.ClearInput
	}
	if k.ScrollUp == "" {
		k.ScrollUp = defaults.ScrollUp
	}
	if k.ScrollDown == "" {
		k.ScrollDown = defaults.ScrollDown
	}
	if k.NextPage == "" {
		k.NextPage = defaults.NextPage
	}
	if k.PrevPage == "" {
		k.PrevPage = defaults.PrevPage
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
