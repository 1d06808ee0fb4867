package syntax

import "testing"

func TestDetectLanguageInvalidatesCacheOnChange(t *testing.T) {
	e := NewEngine(Cap256Plus, "")
	e.DetectLanguage("main.go", "package main\nfunc main() {}\n")
	e.Tokenize("func main() {")
	if e.CacheLen() == 0 {
		t.Fatalf("expected cache to hold an entry")
	}
	e.DetectLanguage("main.py", "def main():\n    pass\n")
	if e.CacheLen() != 0 {
		t.Fatalf("expected cache purge on lexer change, got len=%d", e.CacheLen())
	}
}

func TestSetRulesInvalidatesCacheOnChange(t *testing.T) {
	e := NewEngine(Cap256Plus, "")
	e.Tokenize("TODO: fix this")
	if e.CacheLen() == 0 {
		t.Fatalf("expected cache entry before rule change")
	}
	e.SetRules([]RuleSpec{{Pattern: `TODO`, Color: "yellow"}})
	if e.CacheLen() != 0 {
		t.Fatalf("expected purge after installing custom rules")
	}
	if !e.HasCustomRules() {
		t.Fatalf("expected HasCustomRules true")
	}
}

func TestInvalidCustomRuleSkippedWithWarning(t *testing.T) {
	e := NewEngine(Cap256Plus, "")
	warnings := e.SetRules([]RuleSpec{{Pattern: `(unclosed`, Color: "red"}})
	if len(warnings) == 0 {
		t.Fatalf("expected a warning for invalid regex")
	}
	if e.HasCustomRules() {
		t.Fatalf("invalid rule should not be installed")
	}
}

func TestCustomRuleSegmentsMerge(t *testing.T) {
	rules, warn := CompileRules([]RuleSpec{{Pattern: `foo`, Color: "red"}})
	if len(warn) != 0 {
		t.Fatalf("unexpected warnings: %v", warn)
	}
	segs := tokenizeWithRules("foo bar foo", rules, defaultResolver, Attr{})
	if len(segs) == 0 {
		t.Fatalf("expected segments")
	}
	var total int
	for _, s := range segs {
		total += len([]rune(s.Text))
	}
	if total != len([]rune("foo bar foo")) {
		t.Fatalf("segments do not cover full line: total=%d", total)
	}
}

func TestGuessLanguageShebang(t *testing.T) {
	r := guessLanguage("#!/usr/bin/env python\nprint('hi')\n")
	if r.method != "shebang" {
		t.Fatalf("expected shebang detection, got %+v", r)
	}
}

func TestCapabilityClassification(t *testing.T) {
	cases := []struct {
		n    int
		want Capability
	}{
		{1, CapMono}, {8, Cap8}, {16, Cap16}, {256, Cap256Plus},
	}
	for _, c := range cases {
		if got := ClassifyCapability(c.n); got != c.want {
			t.Fatalf("ClassifyCapability(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}
