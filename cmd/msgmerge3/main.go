// Command msgmerge3 is a thin CLI around the three-way catalog merger in
// internal/merge3: a cobra root command, a handful of persistent flags,
// and an optional rotating log file for diagnostics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/potools/msgmerge3/internal/config"
	"github.com/potools/msgmerge3/internal/debug"
)

var (
	toCode   string
	jsonOut  bool
	noColor  bool
	logFile  string
	debugOut bool
)

var rootCmd = &cobra.Command{
	Use:   "msgmerge3",
	Short: "msgmerge3 - three-way merge for gettext-style message catalogs",
	Long:  `Merges two modified copies (A and B) of a message catalog against their common ancestor (ORIGIN).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if !cmd.Flags().Changed("to-code") {
			toCode = config.GetString("to-code")
		}
		if !cmd.Flags().Changed("json") {
			jsonOut = config.GetBool("json")
		}
		if !cmd.Flags().Changed("no-color") {
			noColor = config.GetBool("no-color")
		}
		if !cmd.Flags().Changed("log-file") {
			logFile = config.GetString("log-file")
		}
		if debugOut {
			debug.SetEnabled(true)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&toCode, "to-code", "", "Target encoding for the merged catalog (default: autodetect)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Disable colored diagnostic output; output stays plain text, not JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored diagnostic output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append rotating diagnostic logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debugOut, "debug", false, "Enable verbose debug output (same as MSGMERGE3_DEBUG)")

	rootCmd.AddCommand(mergeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
