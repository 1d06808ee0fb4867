package syntax

import (
	"strings"

	enry "github.com/go-enry/go-enry/v2"
)

// maxGuessLines and maxGuessChars bound the content sample used for
// language guessing, per spec §4.4 ("first ~200 lines, capped at ~10,000
// characters").
const (
	maxGuessLines = 200
	maxGuessChars = 10000
)

// commonLanguages is the curated candidate set handed to go-enry's
// Bayesian classifier, grounded on the teacher's txfmt.go list: keeping it
// focused avoids false positives from obscure languages that share
// keywords with common ones.
var commonLanguages = []string{
	"C", "C++", "C#", "CSS", "Dart", "Elixir", "Erlang",
	"Go", "Groovy", "HTML", "Haskell", "Java", "JavaScript",
	"Kotlin", "Lua", "Markdown", "Objective-C",
	"PHP", "Perl", "PowerShell", "Python", "R", "Ruby",
	"Rust", "Scala", "Shell", "Swift", "TypeScript", "Zig",
}

// guessResult names the language found and how, for diagnostics.
type guessResult struct {
	chromaName string
	method     string
}

// sampleContent truncates text to the guess budget.
func sampleContent(text string) string {
	lines := strings.SplitN(text, "\n", maxGuessLines+1)
	if len(lines) > maxGuessLines {
		lines = lines[:maxGuessLines]
	}
	sample := strings.Join(lines, "\n")
	if len(sample) > maxGuessChars {
		sample = sample[:maxGuessChars]
	}
	return sample
}

// guessLanguage implements spec §4.4 tier 2: guess a lexer from a content
// sample when no filename match exists. It walks go-enry's detectors in
// increasing cost/decreasing confidence order, exactly as the teacher's
// inferLanguage does for texelterm command output.
func guessLanguage(content string) guessResult {
	sample := []byte(sampleContent(content))
	if len(sample) == 0 {
		return guessResult{}
	}

	if lang, safe := enry.GetLanguageByShebang(sample); safe {
		return guessResult{chromaName: enryToChroma(lang), method: "shebang"}
	}
	if lang, safe := enry.GetLanguageByModeline(sample); safe {
		return guessResult{chromaName: enryToChroma(lang), method: "modeline"}
	}
	text := string(sample)
	if strings.Contains(text, "package ") && strings.Contains(text, "func ") {
		return guessResult{chromaName: "go", method: "heuristic"}
	}
	if lang, _ := enry.GetLanguageByClassifier(sample, commonLanguages); lang != "" {
		return guessResult{chromaName: enryToChroma(lang), method: "classifier"}
	}
	return guessResult{}
}

// enryToChromaMap maps go-enry language names to Chroma lexer aliases
// where they differ.
var enryToChromaMap = map[string]string{
	"Shell": "bash",
}

func enryToChroma(enryName string) string {
	if alias, ok := enryToChromaMap[enryName]; ok {
		return alias
	}
	return strings.ToLower(enryName)
}
