// Package main is the entry point for the mockgen CLI, which renders
// the UniTrack wireframe mockups.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unitrack/mockups/mockup"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd renders every screen when called without subcommand.
var rootCmd = &cobra.Command{
	Use:   "mockgen",
	Short: "Render the UniTrack wireframe mockups",
	Long: `mockgen renders the seven phone screens of the UniTrack faculty locator
as 400x800 images named {seq}_{slug}.png, ready to be embedded in the
project proposal.

Without subcommand, it behaves like "mockgen render".`,
	SilenceUsage: true,
	RunE:         runRender,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mockgen.yaml or ~/.config/mockgen/mockgen.yaml)")
	addRenderFlags(rootCmd)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mockgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mockgen"))
		}
	}

	def := mockup.DefaultConfig()
	viper.SetDefault("output_dir", def.OutputDir)
	viper.SetDefault("formats", def.Formats)
	viper.SetDefault("manifest", def.Manifest)
	viper.SetDefault("font_size", def.FontSize)

	viper.SetEnvPrefix("MOCKGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged configuration.
func loadConfig() (mockup.Config, error) {
	var c mockup.Config
	if err := viper.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("reading configuration: %w", err)
	}
	return c, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
