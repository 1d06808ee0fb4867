package config

import "github.com/kodexeditor/kodex/internal/keys"

// ResolveKeybindings overlays the config's raw `keybindings.<action>`
// entries onto keys.DefaultBindings(), so a config that only overrides a
// handful of actions still gets the full default table for the rest.
func (c *Config) ResolveKeybindings() map[keys.Action][]string {
	merged := keys.DefaultBindings()
	for action, specs := range c.Keybindings {
		merged[keys.Action(action)] = specs
	}
	return merged
}
