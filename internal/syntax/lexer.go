package syntax

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// resolveLexer implements the three-tier detection order from spec §4.4:
//  1. filename/extension match
//  2. content-sample guess (go-enry tiers, then chroma's own analyser)
//  3. plain-text fallback
//
// It returns the chosen lexer and a stable identity string ("lexer id")
// used as part of the tokenization cache key.
func resolveLexer(filename, content string) (chroma.Lexer, string) {
	if filename != "" {
		if l := lexers.Match(filename); l != nil {
			return coalesced(l)
		}
		if l := lexers.Get(extLexerName(filename)); l != nil {
			return coalesced(l)
		}
	}

	if guess := guessLanguage(content); guess.chromaName != "" {
		if l := lexers.Get(guess.chromaName); l != nil {
			return coalesced(l)
		}
	}
	if l := lexers.Analyse(sampleContent(content)); l != nil {
		return coalesced(l)
	}

	return coalesced(lexers.Fallback)
}

func extLexerName(filename string) string {
	ext := filepath.Ext(filename)
	if len(ext) > 1 {
		return ext[1:]
	}
	return filename
}

func coalesced(l chroma.Lexer) (chroma.Lexer, string) {
	l = chroma.Coalesce(l)
	name := "text"
	if cfg := l.Config(); cfg != nil {
		name = cfg.Name
	}
	return l, name
}
