package services

import (
	"context"
	"sync"

	"google.golang.org/genai"
)

type stubGemini struct {
	mu         sync.Mutex
	response   string
	err        error
	calls      int
	lastParts  []*genai.Part
	lastSchema *genai.Schema
}

func (s *stubGemini) GenerateJSON(ctx context.Context, parts []*genai.Part, schema *genai.Schema) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	s.lastParts = parts
	s.lastSchema = schema
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

const recruiterAnalysisJSON = `{
  "jobTitle": "Backend Engineer",
  "summary": "Solid backend profile.",
  "keyResponsibilitiesMatch": {"items": [{"item": "Build APIs", "status": "Match", "explanation": "5 years of API work"}], "score": 90},
  "requiredSkillsMatch": {"items": [{"item": "Go", "status": "Partial", "explanation": "Mostly Java"}], "score": 60},
  "niceToHaveSkillsMatch": {"items": [], "score": 50},
  "companyCultureFit": {"analysis": "Collaborative", "score": 80},
  "salaryAndBenefits": "Not specified",
  "redFlags": [],
  "interviewQuestions": ["Tell us about a Go project."],
  "overallFitScore": 75,
  "fitExplanation": "Good fit with a Go gap.",
  "compatibilityGaps": ["Limited Go experience"]
}`

const preliminaryDecisionJSON = `{
  "decision": "Recommended for Interview",
  "pros": ["Strong backend experience"],
  "cons": ["Limited Go"],
  "explanation": "Worth an interview."
}`

const consistencyAnalysisJSON = `{
  "consistencyScore": 82,
  "summary": "Transcript matches the resume.",
  "recommendation": "Strong Fit",
  "softSkillsAnalysis": {"items": "Clear communicator", "score": 85},
  "inconsistencies": {"items": [], "score": 100},
  "missingFromInterview": {"items": ["Kubernetes"], "score": 70},
  "newInInterview": {"items": ["Side project in Go"], "score": 80},
  "gapResolutions": {"items": [{"gap": "Limited Go experience", "resolution": "Built a Go service", "isResolved": true}], "score": 90},
  "prosForHiring": ["Resolved the Go gap"],
  "consForHiring": [],
  "updatedOverallFitScore": 84,
  "hiringDecision": "Recommended for Hire"
}`

const rewrittenResumeJSON = `{"rewrittenResume":"Jane Doe..."}`
