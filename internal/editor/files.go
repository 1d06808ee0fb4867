package editor

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/kodexeditor/kodex/internal/panel"
)

// openFileBrowser lists the current file's directory (or the working
// directory, for an unnamed buffer) and opens the FileBrowser panel over
// it; selecting an entry opens it in place of the current buffer.
func (e *EditorCore) openFileBrowser() {
	dir := "."
	if e.path != "" {
		dir = filepath.Dir(e.path)
	}
	entries, err := listDir(dir)
	if err != nil {
		e.Status(err.Error())
		return
	}
	e.ShowPanel(panel.FileBrowser, map[string]any{
		"dir":     dir,
		"entries": entries,
		"on_select": func(name string) {
			if err := e.Open(filepath.Join(dir, name)); err != nil {
				e.Status(err.Error())
			}
		},
	})
}

func listDir(dir string) ([]string, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		name := it.Name()
		if it.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
