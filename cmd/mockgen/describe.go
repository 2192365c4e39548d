package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/unitrack/mockups/screens"
	"github.com/unitrack/mockups/wireframe"
)

var describeCmd = &cobra.Command{
	Use:   "describe <slug>",
	Short: "Print the layout of a screen as YAML",
	Long: `Describe prints the shape primitives of a screen, in drawing order,
with the configured palette and text size. Known slugs:

  ` + strings.Join(slugs(), "\n  "),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, ok := screens.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown screen %q", args[0])
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		r, err := cfg.Renderer()
		if err != nil {
			return err
		}
		l := r.Layout(s)

		doc := struct {
			Name       string                 `yaml:"name"`
			Width      int                    `yaml:"width"`
			Height     int                    `yaml:"height"`
			Background wireframe.Color        `yaml:"background"`
			Shapes     []wireframe.Descriptor `yaml:"shapes"`
		}{l.Name, l.Width, l.Height, l.Background, l.Descriptors()}

		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	},
}

func slugs() []string {
	var out []string
	for _, s := range screens.Catalog() {
		out = append(out, s.Slug)
	}
	return out
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
