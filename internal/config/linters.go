package config

import "github.com/kodexeditor/kodex/internal/integration"

// ResolveLinterCommand overlays the config's `linters.<lang>` override
// onto integration.DefaultLinterCommands(), returning nil when no
// command is known for language at all.
func (c *Config) ResolveLinterCommand(language string) []string {
	if cmd, ok := c.Linters[language]; ok {
		return cmd
	}
	return integration.DefaultLinterCommands()[language]
}

// ResolveAiConfig adapts the on-disk ai.* keys into the shape
// internal/integration's provider factory consumes.
func (c *Config) ResolveAiConfig() integration.AiConfig {
	return integration.AiConfig{
		Keys:            c.Ai.Keys,
		Models:          c.Ai.Models,
		DefaultProvider: c.Ai.DefaultProvider,
	}
}
