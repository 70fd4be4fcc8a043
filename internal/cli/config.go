package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/pretty/pkg/doc"
	perrors "github.com/matzehuels/pretty/pkg/errors"
	"github.com/matzehuels/pretty/pkg/jsondoc"
	"github.com/matzehuels/pretty/pkg/term"
)

const (
	colorAuto   = "auto"   // color when the output is a terminal
	colorAlways = "always" // always emit escape sequences
	colorNever  = "never"  // plain text

	measureDisplay = "display" // terminal columns
	measureBytes   = "bytes"   // raw byte length
	measureANSI    = "ansi"    // terminal columns, ignoring embedded escapes

	defaultWidth  = 80
	defaultIndent = 2
)

// Config is the on-disk configuration. Every field can be overridden by the
// matching command-line flag.
//
//	width = 100
//	indent = 4
//	color = "always"
//	measure = "display"
//
//	[palette.key]
//	fg = "75"
//	bold = true
type Config struct {
	Width   int                    `toml:"width"`
	Indent  int                    `toml:"indent"`
	Color   string                 `toml:"color"`
	Measure string                 `toml:"measure"`
	Palette map[string]StyleConfig `toml:"palette"`
}

// StyleConfig describes how one token class is colored.
type StyleConfig struct {
	Foreground string `toml:"fg"`
	Background string `toml:"bg"`
	Bold       bool   `toml:"bold"`
	Faint      bool   `toml:"faint"`
	Italic     bool   `toml:"italic"`
	Underline  bool   `toml:"underline"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Width:   defaultWidth,
		Indent:  defaultIndent,
		Color:   colorAuto,
		Measure: measureDisplay,
		Palette: defaultPalette(),
	}
}

// loadConfig reads the configuration at path on top of the defaults. An
// empty path means the default location, where a missing file is not an
// error; an explicitly named file must exist.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if explicit {
			return cfg, perrors.New(perrors.ErrCodeFileNotFound, "config file %s not found", path)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "invalid %s", path)
	}
	return cfg, nil
}

// Validate checks every field of c.
func (c Config) Validate() error {
	if err := perrors.ValidateWidth(c.Width); err != nil {
		return err
	}
	if err := perrors.ValidateIndent(c.Indent); err != nil {
		return err
	}
	if err := perrors.ValidateChoice(perrors.ErrCodeInvalidColor, "color mode", c.Color,
		colorAuto, colorAlways, colorNever); err != nil {
		return err
	}
	if err := perrors.ValidateChoice(perrors.ErrCodeInvalidMeasure, "measure", c.Measure,
		measureDisplay, measureBytes, measureANSI); err != nil {
		return err
	}
	names := make([]string, 0, len(c.Palette))
	for name := range c.Palette {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := jsondoc.ParseClass(name); !ok {
			return perrors.New(perrors.ErrCodeInvalidConfig, "unknown palette class %q", name)
		}
	}
	return nil
}

// measure returns the literal measure selected by c.Measure.
func (c Config) measure() doc.Measure {
	switch c.Measure {
	case measureBytes:
		return doc.ByteLen
	case measureANSI:
		return doc.ANSIWidth
	default:
		return doc.DisplayWidth
	}
}

// palette converts the configured styles to term styles keyed by class.
func (c Config) palette() map[jsondoc.Class]term.Style {
	out := make(map[jsondoc.Class]term.Style, len(c.Palette))
	for name, sc := range c.Palette {
		class, ok := jsondoc.ParseClass(name)
		if !ok {
			continue
		}
		out[class] = term.Style{
			Foreground: lipgloss.Color(sc.Foreground),
			Background: lipgloss.Color(sc.Background),
			Bold:       sc.Bold,
			Faint:      sc.Faint,
			Italic:     sc.Italic,
			Underline:  sc.Underline,
		}
	}
	return out
}
