package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the mockups to the output directory",
	Long: `Render writes every screen, in catalog order and in every requested
format, to the output directory (created if needed). Files are replaced
atomically. A manifest.yaml recording sizes and digests is written last,
unless --no-manifest is given.

The first failure stops the run; the files written so far are kept.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	addRenderFlags(renderCmd)
	rootCmd.AddCommand(renderCmd)
}

// addRenderFlags registers the render flags on cmd, bound to the
// configuration keys when cmd runs.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("out", "o", "", "output directory (default \"mockups\")")
	cmd.Flags().StringSlice("format", nil, "output formats: png, pdf (default png)")
	cmd.Flags().Bool("no-manifest", false, "do not write manifest.yaml")
	cmd.Flags().StringSlice("only", nil, "render only the given screen slugs")
	cmd.Flags().Float64("font-size", 0, "default text size, in pixels")
}

func bindRenderFlags(cmd *cobra.Command) error {
	for key, flag := range map[string]string{
		"output_dir": "out",
		"formats":    "format",
		"only":       "only",
		"font_size":  "font-size",
	} {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	if noManifest, _ := cmd.Flags().GetBool("no-manifest"); noManifest {
		viper.Set("manifest", false)
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	if err := bindRenderFlags(cmd); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := cfg.Renderer()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}

	rep := newReport(os.Stdout)
	r.Progress = rep.created
	paths, err := r.Render()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	rep.done(len(paths), r.OutDir)
	return nil
}
