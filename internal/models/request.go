package models

import "encoding/json"

type OperationType string

const (
	OperationAnalyzeForRecruiter         OperationType = "analyzeForRecruiter"
	OperationGeneratePreliminaryDecision OperationType = "generatePreliminaryDecision"
	OperationAnalyzeInterviewConsistency OperationType = "analyzeInterviewConsistency"
	OperationRewriteResumeForJob         OperationType = "rewriteResumeForJob"
)

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Type    OperationType   `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type RecruiterAnalysisPayload struct {
	JobInput    *AnalysisInput `json:"jobInput" validate:"required"`
	ResumeInput *AnalysisInput `json:"resumeInput" validate:"required"`
	Language    string         `json:"language"`
}

// PreliminaryDecisionPayload keeps the analysis as sent so the prompt embeds
// the caller's JSON unchanged.
type PreliminaryDecisionPayload struct {
	AnalysisResult json.RawMessage `json:"analysisResult" validate:"required"`
	Language       string                   `json:"language"`
}

type InterviewConsistencyPayload struct {
	JobInput            *AnalysisInput `json:"jobInput" validate:"required"`
	ResumeInput         *AnalysisInput `json:"resumeInput" validate:"required"`
	InterviewTranscript string         `json:"interviewTranscript" validate:"required"`
	CompatibilityGaps   []string       `json:"compatibilityGaps"`
	Language            string         `json:"language"`
}

type RewriteResumePayload struct {
	JobInput    *AnalysisInput `json:"jobInput" validate:"required"`
	ResumeInput *AnalysisInput `json:"resumeInput" validate:"required"`
	Language    string         `json:"language"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

// DocumentResponse is returned by POST /api/documents.
type DocumentResponse struct {
	Input     AnalysisInput `json:"input"`
	Filename  string        `json:"filename"`
	MIMEType  string        `json:"mimeType"`
	Text      string        `json:"text"`
	PageCount int           `json:"pageCount"`
}
