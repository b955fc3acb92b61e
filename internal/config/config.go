// Package config loads and watches editor configuration.
package config

import "fmt"

// Line ending policy names accepted in configuration files.
const (
	LineEndingAuto = "auto"
	LineEndingLF   = "lf"
	LineEndingCRLF = "crlf"
)

// Config is the full editor configuration.
type Config struct {
	Editor EditorConfig `toml:"editor" yaml:"editor"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// EditorConfig controls buffer and motion behavior.
type EditorConfig struct {
	// IndentWidth is the number of spaces per indentation level shown
	// in rendered output.
	IndentWidth int `toml:"indent_width" yaml:"indent_width"`

	// LineEnding selects the terminator policy for new buffers:
	// "auto" detects from content, "lf" and "crlf" force a convention.
	LineEnding string `toml:"line_ending" yaml:"line_ending"`

	// BigWord makes word motions treat punctuation as word scalars.
	BigWord bool `toml:"big_word" yaml:"big_word"`

	// IndentRules is an optional path to a Lua indent rules script.
	IndentRules string `toml:"indent_rules" yaml:"indent_rules"`
}

// LogConfig controls the session log.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			IndentWidth: 2,
			LineEnding:  LineEndingAuto,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks field values, returning the first problem found.
func (c Config) Validate() error {
	if c.Editor.IndentWidth < 1 || c.Editor.IndentWidth > 16 {
		return fmt.Errorf("editor.indent_width %d out of range [1,16]", c.Editor.IndentWidth)
	}

	switch c.Editor.LineEnding {
	case LineEndingAuto, LineEndingLF, LineEndingCRLF:
	default:
		return fmt.Errorf("editor.line_ending %q, want auto, lf or crlf", c.Editor.LineEnding)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q, want debug, info, warn or error", c.Log.Level)
	}

	return nil
}
