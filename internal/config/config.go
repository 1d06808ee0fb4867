// Package config loads and defaults the editor's on-disk JSON
// configuration, covering the full key surface of spec §6.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Editor holds the plain editing-behavior keys.
type Editor struct {
	UseSystemClipboard bool   `json:"use_system_clipboard"`
	TabSize            int    `json:"tab_size"`
	UseSpaces          bool   `json:"use_spaces"`
	ShowLineNumbers    bool   `json:"show_line_numbers"`
	DefaultNewFilename string `json:"default_new_filename"`
}

// Settings holds miscellaneous top-level behavior keys.
type Settings struct {
	AutoSaveIntervalSeconds int `json:"auto_save_interval"`
}

// Shell holds external-process timeout configuration.
type Shell struct {
	TimeoutSeconds int `json:"timeout_seconds"`
}

// CommentSpec is one language's override of the commenting table from
// `internal/comment`'s default (spec §6 `comments.<lang>`).
type CommentSpec struct {
	LinePrefix     string `json:"line_prefix,omitempty"`
	BlockOpen      string `json:"block_open,omitempty"`
	BlockClose     string `json:"block_close,omitempty"`
	DocstringDelim string `json:"docstring_delim,omitempty"`
}

// PatternRule is one custom regex-based syntax highlighting rule, per
// spec §6 `syntax_highlighting.<lang>.patterns`.
type PatternRule struct {
	Pattern string `json:"pattern"`
	Color   string `json:"color"`
}

// Ai holds provider credentials/model selection, per spec §6.
type Ai struct {
	Keys            map[string]string `json:"keys,omitempty"`
	Models          map[string]string `json:"models,omitempty"`
	DefaultProvider string            `json:"default_provider,omitempty"`
}

// Git holds the Git integration toggle.
type Git struct {
	Enabled bool `json:"enabled"`
}

// Config is the full on-disk configuration document.
type Config struct {
	Editor             Editor                          `json:"editor"`
	Settings           Settings                         `json:"settings"`
	Shell              Shell                            `json:"shell"`
	Comments           map[string]CommentSpec           `json:"comments,omitempty"`
	SyntaxHighlighting map[string]struct {
		Patterns []PatternRule `json:"patterns"`
	} `json:"syntax_highlighting,omitempty"`
	Colors             map[string]string   `json:"colors,omitempty"`
	SearchHighlightBg  string              `json:"search_highlight_bg,omitempty"`
	Keybindings        map[string][]string `json:"keybindings,omitempty"`
	Ai                 Ai                  `json:"ai"`
	Git                Git                 `json:"git"`
	Linters            map[string][]string `json:"linters,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: Editor{
			UseSystemClipboard: true,
			TabSize:            4,
			UseSpaces:          true,
			ShowLineNumbers:    true,
			DefaultNewFilename: "untitled",
		},
		Settings: Settings{AutoSaveIntervalSeconds: 0},
		Shell:    Shell{TimeoutSeconds: 10},
		Colors: map[string]string{
			"foreground": "#d8d8d8",
			"background": "#1e1e1e",
			"error":      "#ff5f5f",
			"gutter":     "#5c6370",
			"selection":  "#3e4452",
		},
		SearchHighlightBg: "#ffd866",
		Git:               Git{Enabled: true},
	}
}

// Load reads the configuration from its standard location, falling back
// to Default() when the file is absent; only actual I/O or decode errors
// are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to its standard location, creating the parent
// directory as needed.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
