package syntax

import (
	"fmt"
	"regexp"
)

// Rule is one compiled custom highlight rule: a regex and the name of the
// color it paints matches with (resolved later via a ColorResolver).
type Rule struct {
	Pattern *regexp.Regexp
	Raw     string
	Color   string
}

// RuleSpec is the uncompiled (pattern, color_name) pair as read from
// configuration (`syntax_highlighting.<lang>.patterns`).
type RuleSpec struct {
	Pattern string
	Color   string
}

// CompileRules compiles each spec, skipping (and reporting) invalid
// regexes rather than failing the whole set, per spec §4.4 "invalid
// rules are skipped with a warning".
func CompileRules(specs []RuleSpec) (rules []Rule, warnings []string) {
	for _, s := range specs {
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("syntax: invalid custom rule %q: %v", s.Pattern, err))
			continue
		}
		rules = append(rules, Rule{Pattern: re, Raw: s.Pattern, Color: s.Color})
	}
	return rules, warnings
}

// ruleSetKey produces a stable identity for a rule slice so the engine can
// tell when the configured rule set changed (which must invalidate the
// tokenization cache per spec §4.4's cache-invalidation property).
func ruleSetKey(rules []Rule) string {
	key := ""
	for _, r := range rules {
		key += r.Raw + "\x00" + r.Color + "\x1f"
	}
	return key
}

// tokenizeWithRules applies each rule's matches, in order, across line,
// building a character-indexed attribute map, then merges adjacent
// characters sharing an identical Attr into Segments.
func tokenizeWithRules(line string, rules []Rule, resolve func(name string) (Color, bool), defaultAttr Attr) []Segment {
	runes := []rune(line)
	if len(runes) == 0 {
		return nil
	}
	attrs := make([]Attr, len(runes))
	for i := range attrs {
		attrs[i] = defaultAttr
	}

	for _, rule := range rules {
		color, ok := resolve(rule.Color)
		if !ok {
			continue
		}
		for _, loc := range rule.Pattern.FindAllStringIndex(line, -1) {
			startRune := len([]rune(line[:loc[0]]))
			endRune := len([]rune(line[:loc[1]]))
			for i := startRune; i < endRune && i < len(attrs); i++ {
				attrs[i] = Attr{FG: color}
			}
		}
	}

	return mergeSegments(runes, attrs)
}

func mergeSegments(runes []rune, attrs []Attr) []Segment {
	var segs []Segment
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i == len(runes) || attrs[i] != attrs[i-1] {
			segs = append(segs, Segment{Text: string(runes[start:i]), Attr: attrs[start]})
			start = i
		}
	}
	return segs
}
