package syntax

import (
	"fmt"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// Engine is the syntax highlighting pipeline: language detection,
// optional custom regex rules, and memoized per-line tokenization. The
// zero value is not usable; construct with NewEngine.
type Engine struct {
	mu sync.Mutex

	lexer     chroma.Lexer
	lexerID   string
	filename  string

	rules    []Rule
	ruleKey  string

	palette     *Palette
	defaultAttr Attr

	cache *tokenCache

	lastWarnings []string
}

// NewEngine builds an Engine with the plain-text lexer selected and an
// empty cache sized to the spec minimum.
func NewEngine(cap Capability, styleName string) *Engine {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	lexer, id := resolveLexer("", "")
	return &Engine{
		lexer:   lexer,
		lexerID: id,
		palette: NewPalette(cap, style),
		cache:   newTokenCache(MinCacheCapacity),
	}
}

// LexerID returns the opaque identity of the current lexer, used
// externally as part of cache-invalidation tests and status-bar display.
func (e *Engine) LexerID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lexerID
}

// HasCustomRules reports whether any custom regex rules are currently
// active for the resolved language.
func (e *Engine) HasCustomRules() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.rules) > 0
}

// CacheLen exposes the current cache occupancy for tests/diagnostics.
func (e *Engine) CacheLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cache.len()
}

// DetectLanguage resolves the lexer for filename/content per the
// three-tier order in spec §4.4. If the resolved lexer identity changes,
// the tokenization cache is invalidated.
func (e *Engine) DetectLanguage(filename, contentSample string) {
	lexer, id := resolveLexer(filename, contentSample)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filename = filename
	if id != e.lexerID {
		e.lexer = lexer
		e.lexerID = id
		e.cache.purge()
	}
}

// SetRules installs the custom regex rule set for the resolved language.
// If the rule set differs from the one currently active, the cache is
// invalidated (spec §4.4's highlight-cache-invalidation property covers
// both the lexer identity and the rule set).
func (e *Engine) SetRules(specs []RuleSpec) (warnings []string) {
	rules, warnings := CompileRules(specs)
	key := ruleSetKey(rules)
	e.mu.Lock()
	defer e.mu.Unlock()
	if key != e.ruleKey {
		e.rules = rules
		e.ruleKey = key
		e.cache.purge()
	}
	e.lastWarnings = warnings
	return warnings
}

// ColorResolver resolves a configured color name (or a literal "#rrggbb")
// to a concrete Color. Engines default to a small built-in semantic table;
// EditorCore overrides this with one backed by the loaded configuration's
// `colors.<semantic_name>` table.
type ColorResolver func(name string) (Color, bool)

var defaultResolver ColorResolver = func(name string) (Color, bool) {
	if c, ok := builtinSemanticColors[name]; ok {
		return c, true
	}
	return parseHexColor(name)
}

var builtinSemanticColors = map[string]Color{
	"red":     {R: 205, G: 0, B: 0, Set: true},
	"green":   {R: 0, G: 205, B: 0, Set: true},
	"yellow":  {R: 205, G: 205, B: 0, Set: true},
	"blue":    {R: 0, G: 0, B: 205, Set: true},
	"magenta": {R: 205, G: 0, B: 205, Set: true},
	"cyan":    {R: 0, G: 205, B: 205, Set: true},
}

func parseHexColor(s string) (Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, false
	}
	var r, g, b int
	if n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); n != 3 || err != nil {
		return Color{}, false
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), Set: true}, true
}

// Resolver allows the caller to plug in a config-backed color lookup.
var Resolver = defaultResolver

// Tokenize implements spec §4.4's per-line tokenization contract,
// memoized by (line_text, lexer_id, has_custom_rules).
func (e *Engine) Tokenize(line string) []Segment {
	e.mu.Lock()
	hasRules := len(e.rules) > 0
	key := cacheKey{text: line, lexerID: e.lexerID, hasCustomRules: hasRules}
	if segs, ok := e.cache.get(key); ok {
		e.mu.Unlock()
		return segs
	}

	var segs []Segment
	if hasRules {
		segs = tokenizeWithRules(line, e.rules, Resolver, e.defaultAttr)
	} else {
		segs = e.tokenizeLexer(line)
	}
	e.cache.put(key, segs)
	e.mu.Unlock()
	return segs
}

func (e *Engine) tokenizeLexer(line string) []Segment {
	tokens, err := chroma.Tokenise(e.lexer, nil, line)
	if err != nil {
		return []Segment{{Text: line, Attr: e.defaultAttr}}
	}
	var segs []Segment
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType || tok.Value == "" {
			continue
		}
		attr, ok := e.palette.Resolve(tok.Type, e.defaultAttr)
		if !ok {
			attr = e.defaultAttr
		}
		segs = append(segs, Segment{Text: tok.Value, Attr: attr})
	}
	return segs
}
