package config

import "github.com/kodexeditor/kodex/internal/syntax"

// RuleSpecsFor returns the configured custom highlight rules for one
// language, per spec §6 `syntax_highlighting.<lang>.patterns`.
func (c *Config) RuleSpecsFor(language string) []syntax.RuleSpec {
	entry, ok := c.SyntaxHighlighting[language]
	if !ok {
		return nil
	}
	specs := make([]syntax.RuleSpec, len(entry.Patterns))
	for i, p := range entry.Patterns {
		specs[i] = syntax.RuleSpec{Pattern: p.Pattern, Color: p.Color}
	}
	return specs
}
