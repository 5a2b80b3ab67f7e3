// Package client is the HTTP transport for calling the analysis API from Go.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"

	"alfredoptarigan/recruiter-analyzer/internal/models"
)

const generatePath = "/api/generate"

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) AnalyzeForRecruiter(jobInput, resumeInput models.AnalysisInput, language string) (*models.RecruiterAnalysisResult, error) {
	var out models.RecruiterAnalysisResult
	err := c.generate(models.OperationAnalyzeForRecruiter, models.RecruiterAnalysisPayload{
		JobInput:    &jobInput,
		ResumeInput: &resumeInput,
		Language:    language,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GeneratePreliminaryDecision(analysis models.RecruiterAnalysisResult, language string) (*models.PreliminaryDecisionResult, error) {
	raw, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}

	var out models.PreliminaryDecisionResult
	err = c.generate(models.OperationGeneratePreliminaryDecision, models.PreliminaryDecisionPayload{
		AnalysisResult: raw,
		Language:       language,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AnalyzeInterviewConsistency(jobInput, resumeInput models.AnalysisInput, transcript string, gaps []string, language string) (*models.ConsistencyAnalysisResult, error) {
	if gaps == nil {
		gaps = []string{}
	}

	var out models.ConsistencyAnalysisResult
	err := c.generate(models.OperationAnalyzeInterviewConsistency, models.InterviewConsistencyPayload{
		JobInput:            &jobInput,
		ResumeInput:         &resumeInput,
		InterviewTranscript: transcript,
		CompatibilityGaps:   gaps,
		Language:            language,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RewriteResumeForJob(jobInput, resumeInput models.AnalysisInput, language string) (*models.RewrittenResumeResult, error) {
	var out models.RewrittenResumeResult
	err := c.generate(models.OperationRewriteResumeForJob, models.RewriteResumePayload{
		JobInput:    &jobInput,
		ResumeInput: &resumeInput,
		Language:    language,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// generate posts a {type, payload} envelope and decodes a successful body into out.
func (c *Client) generate(op models.OperationType, payload any, out any) error {
	envelope := struct {
		Type    models.OperationType `json:"type"`
		Payload any                  `json:"payload"`
	}{
		Type:    op,
		Payload: payload,
	}

	agent := fiber.Post(c.baseURL + generatePath)
	agent.JSON(envelope)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("request to %s failed: %w", generatePath, errors.Join(errs...))
	}

	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return &APIError{
			StatusCode: code,
			Message:    errorMessage(code, body),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", op, err)
	}

	return nil
}

func errorMessage(code int, body []byte) string {
	if !gjson.ValidBytes(body) {
		return "An unknown API error occurred."
	}
	if msg := gjson.GetBytes(body, "message").String(); msg != "" {
		return msg
	}
	return fmt.Sprintf("API request failed with status %d", code)
}
