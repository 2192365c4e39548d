package mockup

import (
	"fmt"

	"github.com/unitrack/mockups/screens"
)

// Config holds the user settings, as decoded from the
// configuration file, the environment and the flags.
type Config struct {
	OutputDir string            `mapstructure:"output_dir" yaml:"output_dir"`
	Formats   []string          `mapstructure:"formats" yaml:"formats"`
	Manifest  bool              `mapstructure:"manifest" yaml:"manifest"`
	FontSize  float64           `mapstructure:"font_size" yaml:"font_size"`
	Palette   map[string]string `mapstructure:"palette" yaml:"palette,omitempty"`
	Only      []string          `mapstructure:"only" yaml:"only,omitempty"`
}

// DefaultOutputDir is where the mockups are written by default.
const DefaultOutputDir = "mockups"

// DefaultConfig returns the settings used without configuration.
func DefaultConfig() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		Formats:   []string{string(PNG)},
		Manifest:  true,
	}
}

// Screens returns the catalog entries selected by `Only`,
// in catalog order. An empty selection means every screen.
func (c Config) Screens() ([]screens.Screen, error) {
	catalog := screens.Catalog()
	if len(c.Only) == 0 {
		return catalog, nil
	}
	wanted := map[string]bool{}
	for _, slug := range c.Only {
		if _, ok := screens.Lookup(slug); !ok {
			return nil, fmt.Errorf("unknown screen %q", slug)
		}
		wanted[slug] = true
	}
	var out []screens.Screen
	for _, s := range catalog {
		if wanted[s.Slug] {
			out = append(out, s)
		}
	}
	return out, nil
}

// Renderer validates the configuration and returns the matching renderer.
// Errors are reported before anything is written.
func (c Config) Renderer() (*Renderer, error) {
	formats, err := ParseFormats(c.Formats)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	palette, err := screens.DefaultPalette().WithOverrides(c.Palette)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	selected, err := c.Screens()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if c.FontSize < 0 {
		return nil, fmt.Errorf("invalid configuration: negative font size %g", c.FontSize)
	}
	outDir := c.OutputDir
	if outDir == "" {
		outDir = DefaultOutputDir
	}
	return &Renderer{
		OutDir:   outDir,
		Formats:  formats,
		Palette:  palette,
		Screens:  selected,
		Manifest: c.Manifest,
		FontSize: c.FontSize,
	}, nil
}
