package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"alfredoptarigan/recruiter-analyzer/internal/models"
)

const defaultLanguage = "English"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildRecruiterAnalysisPrompt creates the parts for comparing a resume with a job description
func (pb *PromptBuilder) BuildRecruiterAnalysisPrompt(job, resume models.AnalysisInput, language string) []*genai.Part {
	return []*genai.Part{
		genai.NewPartFromText(fmt.Sprintf("You are an expert HR recruiter analyzing a resume against a job description. Your output must be in JSON and conform to the provided schema. The analysis language should be: %s.", languageOrDefault(language))),
		genai.NewPartFromText("Job Description:"),
		BuildContentPart(job),
		genai.NewPartFromText("Candidate's Resume:"),
		BuildContentPart(resume),
		genai.NewPartFromText("Analyze the resume against the job description and provide a detailed analysis."),
	}
}

// BuildPreliminaryDecisionPrompt embeds a previous analysis and asks for an interview decision.
// The analysis JSON is only re-indented; keys, order and characters are kept as given.
func (pb *PromptBuilder) BuildPreliminaryDecisionPrompt(analysis json.RawMessage, language string) ([]*genai.Part, error) {
	var serialized bytes.Buffer
	if err := json.Indent(&serialized, analysis, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to serialize analysis: %w", err)
	}

	prompt := fmt.Sprintf(`Based on the following recruitment analysis, make a preliminary decision. The decision should be either "%s" or "%s". Provide pros, cons, and an explanation. The response language must be %s. Your output must be in JSON and conform to the provided schema. Analysis: %s`,
		models.DecisionRecommendedForInterview, models.DecisionNotRecommended, languageOrDefault(language), serialized.String())

	return []*genai.Part{genai.NewPartFromText(prompt)}, nil
}

// BuildConsistencyPrompt checks an interview transcript against the resume and earlier gaps
func (pb *PromptBuilder) BuildConsistencyPrompt(job, resume models.AnalysisInput, transcript string, gaps []string, language string) []*genai.Part {
	return []*genai.Part{
		genai.NewPartFromText(fmt.Sprintf("You are an expert HR analyst assessing consistency. Your output must be in JSON and conform to the provided schema. The analysis language should be: %s.", languageOrDefault(language))),
		genai.NewPartFromText("Job Description:"),
		BuildContentPart(job),
		genai.NewPartFromText("Candidate's Resume:"),
		BuildContentPart(resume),
		genai.NewPartFromText("Interview Transcript:\n" + transcript),
		genai.NewPartFromText("Previously identified compatibility gaps:\n- " + strings.Join(gaps, "\n- ")),
		genai.NewPartFromText("Analyze the interview transcript."),
	}
}

// BuildRewritePrompt asks for the resume rewritten towards the job. The resume goes first.
func (pb *PromptBuilder) BuildRewritePrompt(job, resume models.AnalysisInput, language string) []*genai.Part {
	return []*genai.Part{
		genai.NewPartFromText(fmt.Sprintf("You are an expert resume writer. Rewrite a resume to better align with a specific job description, without fabricating information. Use Markdown formatting. The output language should be: %s. Your output must be in JSON and conform to the provided schema.", languageOrDefault(language))),
		genai.NewPartFromText("Original Resume:"),
		BuildContentPart(resume),
		genai.NewPartFromText("Target Job Description:"),
		BuildContentPart(job),
		genai.NewPartFromText("Rewrite the resume."),
	}
}

func languageOrDefault(language string) string {
	if strings.TrimSpace(language) == "" {
		return defaultLanguage
	}
	return language
}
