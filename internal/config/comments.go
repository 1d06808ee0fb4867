package config

import "github.com/kodexeditor/kodex/internal/comment"

// ResolveCommentTable overlays the config's `comments.<lang>` overrides
// onto comment.DefaultTable(), per spec §6.
func (c *Config) ResolveCommentTable() comment.Table {
	merged := comment.DefaultTable()
	for lang, spec := range c.Comments {
		merged[lang] = comment.Syntax{
			LinePrefix:     spec.LinePrefix,
			BlockOpen:      spec.BlockOpen,
			BlockClose:     spec.BlockClose,
			DocstringDelim: spec.DocstringDelim,
		}
	}
	return merged
}
