package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unitrack/mockups/mockup"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that every expected mockup is present",
	Long: `Check fails when a file expected by the proposal document is missing
from the output directory, or when a file no longer matches the digest
recorded in manifest.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlag("output_dir", cmd.Flags().Lookup("out")); err != nil {
			return err
		}
		if err := viper.BindPFlag("formats", cmd.Flags().Lookup("format")); err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		r, err := cfg.Renderer()
		if err != nil {
			return err
		}
		if err := mockup.Check(r.OutDir, r.Screens, r.Formats); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return err
		}
		fmt.Printf("%d mockup(s) present in %s\n", len(r.Screens)*len(r.Formats), r.OutDir)
		return nil
	},
}

func init() {
	checkCmd.Flags().StringP("out", "o", "", "output directory (default \"mockups\")")
	checkCmd.Flags().StringSlice("format", nil, "expected formats: png, pdf (default png)")
	rootCmd.AddCommand(checkCmd)
}
