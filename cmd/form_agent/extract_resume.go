package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/form-autofill/internal/resume"
)

var extractResumeCommand = &cobra.Command{
	Use:   "extract-resume",
	Short: "Extract and print the plain text of a resume document",
	Long:  "Extracts the text the agent would ground generated answers in. Useful for checking what a PDF actually yields before a fill run.",
	RunE:  runExtractResumeCmd,
}

var extractResumePath string

func init() {
	extractResumeCommand.Flags().StringVarP(&extractResumePath, "resume", "r", "", "Path to resume document (PDF or plain text)")
	_ = extractResumeCommand.MarkFlagRequired("resume")

	rootCmd.AddCommand(extractResumeCommand)
}

func runExtractResumeCmd(_ *cobra.Command, _ []string) error {
	ctx, err := resume.Load(extractResumePath)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, ctx.Text)
	fmt.Fprintf(os.Stderr, "\nExtracted %d characters from %s\n", len(ctx.Text), ctx.Path)
	return nil
}
