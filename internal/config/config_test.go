package config

import "testing"

func TestDefaultHasSaneEditorValues(t *testing.T) {
	c := Default()
	if c.Editor.TabSize != 4 || !c.Editor.UseSpaces {
		t.Fatalf("unexpected editor defaults: %+v", c.Editor)
	}
	if !c.Git.Enabled {
		t.Fatalf("expected git enabled by default")
	}
}

func TestResolveKeybindingsOverlaysOverrides(t *testing.T) {
	c := Default()
	c.Keybindings = map[string][]string{"save": {"ctrl+shift+s"}}
	merged := c.ResolveKeybindings()
	if got := merged["save"]; len(got) != 1 || got[0] != "ctrl+shift+s" {
		t.Fatalf("expected override to take effect, got %v", got)
	}
	if _, ok := merged["quit"]; !ok {
		t.Fatalf("expected untouched default action to survive the merge")
	}
}

func TestResolveCommentTableOverlaysOverrides(t *testing.T) {
	c := Default()
	c.Comments = map[string]CommentSpec{"go": {LinePrefix: "///"}}
	table := c.ResolveCommentTable()
	if table["go"].LinePrefix != "///" {
		t.Fatalf("expected go override, got %+v", table["go"])
	}
	if table["python"].LinePrefix != "#" {
		t.Fatalf("expected untouched default language to survive, got %+v", table["python"])
	}
}

func TestRuleSpecsForUnknownLanguageReturnsNil(t *testing.T) {
	c := Default()
	if specs := c.RuleSpecsFor("cobol"); specs != nil {
		t.Fatalf("expected nil for an unconfigured language, got %v", specs)
	}
}
