package panel

import (
	"strings"

	"github.com/kodexeditor/kodex/internal/keys"
	"github.com/kodexeditor/kodex/internal/render"
	"github.com/kodexeditor/kodex/internal/syntax"
)

// textPanel is the shared shape for the multi-line-output panels (Git,
// LintReport, AiResponse): spec §7 says these "render the full text and
// leave a footer hint describing how to close", so they differ only in
// title and close-key.
type textPanel struct {
	title    string
	body     []string
	scroll   int
	closeKey string
}

func (p *textPanel) Open(kwargs map[string]any) {
	p.scroll = 0
	if text, ok := kwargs["text"].(string); ok {
		p.body = strings.Split(text, "\n")
	} else {
		p.body = nil
	}
}

func (p *textPanel) Close() {}

func (p *textPanel) Draw(s render.Surface, x, y, w, h int) {
	for row := 0; row < h; row++ {
		s.ClearRow(y + row)
	}
	render.DrawText(s, x, y, w, p.title, syntax.Attr{Bold: true})
	for i := 1; i < h-1 && p.scroll+i-1 < len(p.body); i++ {
		render.DrawText(s, x, y+i, w, p.body[p.scroll+i-1], syntax.Attr{})
	}
	if h > 1 {
		render.DrawText(s, x, y+h-1, w, "press "+p.closeKey+" to close", syntax.Attr{})
	}
}

func (p *textPanel) HandleKey(host Host, k keys.Key) bool {
	switch {
	case k.Name == "esc":
		host.Close()
		return true
	case k.Name == "down":
		if p.scroll < len(p.body)-1 {
			p.scroll++
		}
		return true
	case k.Name == "up":
		if p.scroll > 0 {
			p.scroll--
		}
		return true
	}
	return false
}

func (p *textPanel) Resize(w, h int) {}

func newAiResponsePanel() Panel {
	return &textPanel{title: "AI response", closeKey: "Esc"}
}

func newGitPanel() Panel {
	return &textPanel{title: "Git", closeKey: "Esc"}
}

func newLintReportPanel() Panel {
	return &textPanel{title: "Lint report", closeKey: "Esc"}
}

// helpPanel shows the static key-binding reference, supplemented per
// DESIGN.md (dropped from spec.md's PanelState enum prose but kept as a
// glossary Panel kind).
type helpPanel struct {
	lines []string
}

func newHelpPanel() Panel {
	return &helpPanel{}
}

func (p *helpPanel) Open(kwargs map[string]any) {
	bindings, _ := kwargs["bindings"].(map[keys.Action][]string)
	p.lines = p.lines[:0]
	for action, specs := range bindings {
		p.lines = append(p.lines, string(action)+": "+strings.Join(specs, ", "))
	}
}

func (p *helpPanel) Close() {}

func (p *helpPanel) Draw(s render.Surface, x, y, w, h int) {
	for row := 0; row < h; row++ {
		s.ClearRow(y + row)
	}
	render.DrawText(s, x, y, w, "Key bindings", syntax.Attr{Bold: true})
	for i := 1; i < h-1 && i-1 < len(p.lines); i++ {
		render.DrawText(s, x, y+i, w, p.lines[i-1], syntax.Attr{})
	}
	if h > 1 {
		render.DrawText(s, x, y+h-1, w, "press Esc to close", syntax.Attr{})
	}
}

func (p *helpPanel) HandleKey(host Host, k keys.Key) bool {
	if k.Name == "esc" {
		host.Close()
		return true
	}
	return false
}

func (p *helpPanel) Resize(w, h int) {}

// fileBrowserPanel is described at the interface level only per spec §1;
// this is the minimal concrete implementation that exercises the Panel
// contract (list entries, navigate, select closes with the chosen path).
type fileBrowserPanel struct {
	dir      string
	entries  []string
	cursor   int
	onSelect func(path string)
}

func newFileBrowserPanel() Panel {
	return &fileBrowserPanel{}
}

func (p *fileBrowserPanel) Open(kwargs map[string]any) {
	p.dir, _ = kwargs["dir"].(string)
	if entries, ok := kwargs["entries"].([]string); ok {
		p.entries = entries
	}
	p.onSelect, _ = kwargs["on_select"].(func(string))
	p.cursor = 0
}

func (p *fileBrowserPanel) Close() {}

func (p *fileBrowserPanel) Draw(s render.Surface, x, y, w, h int) {
	for row := 0; row < h; row++ {
		s.ClearRow(y + row)
	}
	render.DrawText(s, x, y, w, "Files: "+p.dir, syntax.Attr{Bold: true})
	for i := 1; i < h-1 && i-1 < len(p.entries); i++ {
		attr := syntax.Attr{}
		if i-1 == p.cursor {
			attr.Reverse = true
		}
		render.DrawText(s, x, y+i, w, p.entries[i-1], attr)
	}
	if h > 1 {
		render.DrawText(s, x, y+h-1, w, "Enter to open, Esc to close", syntax.Attr{})
	}
}

func (p *fileBrowserPanel) HandleKey(host Host, k keys.Key) bool {
	switch {
	case k.Name == "esc":
		host.Close()
		return true
	case k.Name == "down":
		if p.cursor < len(p.entries)-1 {
			p.cursor++
		}
		return true
	case k.Name == "up":
		if p.cursor > 0 {
			p.cursor--
		}
		return true
	case k.Name == "enter":
		if p.onSelect != nil && p.cursor >= 0 && p.cursor < len(p.entries) {
			p.onSelect(p.entries[p.cursor])
		}
		host.Close()
		return true
	}
	return false
}

func (p *fileBrowserPanel) Resize(w, h int) {}
