/*
Copyright © 2024 The parse24 authors

*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "parse24",
	Short: "Tooling for the IPPcode24 language",
	Long: `Parse24 is the front end for the IPPcode24 language. It reads
IPPcode24 source and produces the XML program representation consumed
by the downstream interpreter. Run "parse24 parse" for the translator
itself.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
