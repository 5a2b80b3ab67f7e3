package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"alfredoptarigan/recruiter-analyzer/internal/client"
	"alfredoptarigan/recruiter-analyzer/internal/models"
)

var (
	jobPath        string
	resumePath     string
	analysisPath   string
	transcriptPath string
	gaps           []string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compare a resume with a job description",
	RunE: func(cmd *cobra.Command, args []string) error {
		job, resume, err := loadJobAndResume()
		if err != nil {
			return err
		}

		result, err := client.New(serverURL).AnalyzeForRecruiter(job, resume, language)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Make a preliminary interview decision from a saved analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		analysis, err := loadAnalysis(analysisPath)
		if err != nil {
			return err
		}

		result, err := client.New(serverURL).GeneratePreliminaryDecision(*analysis, language)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var consistencyCmd = &cobra.Command{
	Use:   "consistency",
	Short: "Check an interview transcript against the resume and known gaps",
	RunE: func(cmd *cobra.Command, args []string) error {
		job, resume, err := loadJobAndResume()
		if err != nil {
			return err
		}

		transcript, err := os.ReadFile(transcriptPath)
		if err != nil {
			return fmt.Errorf("failed to read transcript: %w", err)
		}

		allGaps := append([]string{}, gaps...)
		if analysisPath != "" {
			analysis, err := loadAnalysis(analysisPath)
			if err != nil {
				return err
			}
			allGaps = append(allGaps, analysis.CompatibilityGaps...)
		}

		result, err := client.New(serverURL).AnalyzeInterviewConsistency(job, resume, string(transcript), allGaps, language)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite a resume towards a job description (Markdown output)",
	RunE: func(cmd *cobra.Command, args []string) error {
		job, resume, err := loadJobAndResume()
		if err != nil {
			return err
		}

		result, err := client.New(serverURL).RewriteResumeForJob(job, resume, language)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result.RewrittenResume)
		return err
	},
}

func init() {
	for _, cmd := range []*cobra.Command{analyzeCmd, consistencyCmd, rewriteCmd} {
		cmd.Flags().StringVar(&jobPath, "job", "", "Path to the job description (text, PDF, DOCX)")
		cmd.Flags().StringVar(&resumePath, "resume", "", "Path to the resume (text, PDF, DOCX)")
		_ = cmd.MarkFlagRequired("job")
		_ = cmd.MarkFlagRequired("resume")
	}

	decideCmd.Flags().StringVar(&analysisPath, "analysis", "", "Path to a JSON result of 'analyze'")
	_ = decideCmd.MarkFlagRequired("analysis")

	consistencyCmd.Flags().StringVar(&transcriptPath, "transcript", "", "Path to the interview transcript")
	consistencyCmd.Flags().StringVar(&analysisPath, "analysis", "", "Path to a JSON result of 'analyze' to take compatibility gaps from")
	consistencyCmd.Flags().StringArrayVar(&gaps, "gap", nil, "Previously identified compatibility gap (repeatable)")
	_ = consistencyCmd.MarkFlagRequired("transcript")
}

func loadJobAndResume() (models.AnalysisInput, models.AnalysisInput, error) {
	job, err := loadInput(jobPath)
	if err != nil {
		return models.AnalysisInput{}, models.AnalysisInput{}, err
	}
	resume, err := loadInput(resumePath)
	if err != nil {
		return models.AnalysisInput{}, models.AnalysisInput{}, err
	}
	return job, resume, nil
}

func loadAnalysis(path string) (*models.RecruiterAnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis: %w", err)
	}

	var analysis models.RecruiterAnalysisResult
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis %s: %w", path, err)
	}
	return &analysis, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
