package comment

import (
	"regexp"
	"strings"
)

// definitionPattern pairs a regex matched against a stripped line with the
// definition kind it identifies.
type definitionPattern struct {
	re   *regexp.Regexp
	kind string
}

var definitionPatterns = []definitionPattern{
	{regexp.MustCompile(`^def\s+\w+.*:\s*$`), "function"},
	{regexp.MustCompile(`^class\s+\w+.*:\s*$`), "class"},
	{regexp.MustCompile(`^async\s+def\s+\w+.*:\s*$`), "async_function"},
}

const definitionSearchWindow = 20

// docstringContext describes whether a line range is a valid slot for a
// docstring and, if so, at what indentation.
type docstringContext struct {
	valid           bool
	definitionLine  int
	definitionKind  string
	indentSpaces    int
}

// analyzeContext implements spec §4.5's docstring-context rule: the range
// sits at the top of file, or immediately follows a function/class/
// async-def definition with only blank lines or comments between.
func analyzeContext(lines []string, startY int) docstringContext {
	if startY <= 1 {
		significant := false
		for y := 0; y < startY; y++ {
			if y >= len(lines) {
				continue
			}
			line := strings.TrimSpace(lines[y])
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "#") ||
				strings.HasPrefix(line, "#!/") ||
				strings.Contains(line, "coding:") ||
				strings.Contains(line, "encoding:") ||
				strings.Contains(line, "vim:") ||
				strings.Contains(line, "emacs:") {
				continue
			}
			significant = true
			break
		}
		if !significant {
			return docstringContext{valid: true, definitionLine: -1, definitionKind: "module"}
		}
	}

	if def, ok := findPrecedingDefinition(lines, startY); ok {
		return docstringContext{
			valid:          true,
			definitionLine: def.line,
			definitionKind: def.kind,
			indentSpaces:   def.indent + 4,
		}
	}
	return docstringContext{}
}

type definitionMatch struct {
	line   int
	kind   string
	indent int
}

// findPrecedingDefinition searches upward from startY-1 within a bounded
// window for the nearest def/class/async-def statement that is not
// separated from startY by any executable code.
func findPrecedingDefinition(lines []string, startY int) (definitionMatch, bool) {
	floor := startY - definitionSearchWindow
	if floor < -1 {
		floor = -1
	}
	for y := startY - 1; y > floor; y-- {
		if y >= len(lines) {
			continue
		}
		full := lines[y]
		stripped := strings.TrimSpace(full)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}
		matchedDef := false
		for _, p := range definitionPatterns {
			if p.re.MatchString(stripped) {
				matchedDef = true
				if isValidDocstringPosition(lines, y, startY) {
					return definitionMatch{
						line:   y,
						kind:   p.kind,
						indent: len(full) - len(strings.TrimLeft(full, " \t")),
					}, true
				}
				break
			}
		}
		if matchedDef {
			continue
		}
		break
	}
	return definitionMatch{}, false
}

// isValidDocstringPosition verifies that no executable code sits between
// a definition line and the candidate docstring start.
func isValidDocstringPosition(lines []string, defLine, start int) bool {
	for y := defLine + 1; y < start; y++ {
		if y >= len(lines) {
			continue
		}
		line := strings.TrimSpace(lines[y])
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, `"""`) || strings.HasPrefix(line, "'''") {
			continue
		}
		return false
	}
	return true
}
