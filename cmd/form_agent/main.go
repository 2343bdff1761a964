// Package main provides the entry point for the form autofill agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "form_agent",
	Short: "Web form autofill agent",
	Long:  "Form agent fills web forms by matching detected fields against a known-data profile, generating unmatched answers from the candidate's resume via an LLM.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
