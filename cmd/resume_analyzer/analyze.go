package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/grammar"
	"github.com/jonathan/resume-analyzer/internal/quality"
	"github.com/jonathan/resume-analyzer/internal/readability"
	"github.com/jonathan/resume-analyzer/internal/scoring"
)

var (
	analyzeRequirementsPath string
	analyzeResumePath       string
	analyzeComprehensive    bool
	analyzeTargetSkills     []string
	analyzeLanguageToolURL  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against requirements from the command line",
	Long: `Score a resume file against a requirements JSON file and print the fit
breakdown and quality report as JSON. With --comprehensive, print the full
quality report instead of fit scoring.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeRequirementsPath, "requirements", "", "Path to requirements JSON file")
	analyzeCmd.Flags().StringVar(&analyzeResumePath, "resume", "", "Path to resume text file")
	analyzeCmd.Flags().BoolVar(&analyzeComprehensive, "comprehensive", false, "Run the comprehensive quality report instead of fit scoring")
	analyzeCmd.Flags().StringSliceVar(&analyzeTargetSkills, "target-skills", nil, "Skills for keyword density analysis (comprehensive mode)")
	analyzeCmd.Flags().StringVar(&analyzeLanguageToolURL, "languagetool", "", "LanguageTool endpoint for grammar checking")
	_ = analyzeCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	resumeBytes, err := os.ReadFile(analyzeResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	resumeText := string(resumeBytes)

	var checker grammar.Checker
	if url := analyzeLanguageToolURL; url != "" {
		checker = grammar.NewLanguageTool(url, grammar.DefaultTimeout)
	} else if url := os.Getenv("LANGUAGETOOL_URL"); url != "" {
		checker = grammar.NewLanguageTool(url, grammar.DefaultTimeout)
	}
	engine := quality.NewEngine(readability.NewScorer(), checker)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if analyzeComprehensive {
		return printJSON(engine.Comprehensive(ctx, resumeText, analyzeTargetSkills))
	}

	var req scoring.Requirements
	if analyzeRequirementsPath != "" {
		reqBytes, err := os.ReadFile(analyzeRequirementsPath)
		if err != nil {
			return fmt.Errorf("failed to read requirements file: %w", err)
		}
		if err := json.Unmarshal(reqBytes, &req); err != nil {
			return fmt.Errorf("failed to parse requirements JSON: %w", err)
		}
	}

	fit, breakdown, err := scoring.ComputeFit(req, resumeText)
	if err != nil {
		return err
	}

	return printJSON(map[string]any{
		"fit_score": fit,
		"breakdown": breakdown,
		"quality":   engine.Analyze(ctx, resumeText),
	})
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
