package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/ingest"
	"github.com/jonathan/resume-analyzer/internal/skills"
)

var (
	ingestURL        string
	ingestUseBrowser bool
	ingestTimeout    int
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch a job posting and suggest requirement skills",
	Long:  `Fetch a job posting URL, extract the posting text and print the skills found in it, ready to paste into a requirements file.`,
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestURL, "url", "", "Job posting URL")
	ingestCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Render JavaScript-heavy pages in a headless browser")
	ingestCmd.Flags().IntVar(&ingestTimeout, "timeout", 0, "Fetch timeout in seconds")
	_ = ingestCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	opts := ingest.DefaultOptions()
	opts.UseBrowser = ingestUseBrowser
	if ingestTimeout > 0 {
		opts.Timeout = time.Duration(ingestTimeout) * time.Second
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	posting, err := ingest.FetchPosting(ctx, ingestURL, opts)
	if err != nil {
		return fmt.Errorf("failed to fetch posting: %w", err)
	}

	return printJSON(map[string]any{
		"url":              posting.URL,
		"text":             posting.Text,
		"suggested_skills": skills.Extract(posting.Text, nil),
	})
}
