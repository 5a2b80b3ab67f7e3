package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"google.golang.org/genai"

	"alfredoptarigan/recruiter-analyzer/internal/models"
)

var payloadValidator = validator.New()

// Operation describes one analysis type: the schema the model must follow,
// how the prompt is built from the payload and which Go type the output decodes into.
type Operation struct {
	Name      models.OperationType
	Schema    *genai.Schema
	Build     func(pb *PromptBuilder, payload json.RawMessage) ([]*genai.Part, error)
	NewResult func() any

	validator *SchemaValidator
}

func newOperation(
	name models.OperationType,
	schema *genai.Schema,
	build func(pb *PromptBuilder, payload json.RawMessage) ([]*genai.Part, error),
	newResult func() any,
) *Operation {
	v, err := NewSchemaValidator(string(name), schema)
	if err != nil {
		panic(err)
	}

	return &Operation{
		Name:      name,
		Schema:    schema,
		Build:     build,
		NewResult: newResult,
		validator: v,
	}
}

// DefaultOperations returns the four registered analysis operations.
func DefaultOperations() map[models.OperationType]*Operation {
	ops := []*Operation{
		newOperation(models.OperationAnalyzeForRecruiter, RecruiterAnalysisSchema,
			func(pb *PromptBuilder, raw json.RawMessage) ([]*genai.Part, error) {
				p, err := decodePayload[models.RecruiterAnalysisPayload](raw)
				if err != nil {
					return nil, err
				}
				return pb.BuildRecruiterAnalysisPrompt(*p.JobInput, *p.ResumeInput, p.Language), nil
			},
			func() any { return &models.RecruiterAnalysisResult{} },
		),
		newOperation(models.OperationGeneratePreliminaryDecision, PreliminaryDecisionSchema,
			func(pb *PromptBuilder, raw json.RawMessage) ([]*genai.Part, error) {
				p, err := decodePayload[models.PreliminaryDecisionPayload](raw)
				if err != nil {
					return nil, err
				}
				if !isJSONObject(p.AnalysisResult) {
					return nil, &PayloadError{Message: "analysisResult must be a recruiter analysis object"}
				}
				var analysis models.RecruiterAnalysisResult
				if err := json.Unmarshal(p.AnalysisResult, &analysis); err != nil {
					return nil, &PayloadError{Message: "analysisResult must be a recruiter analysis object", Cause: err}
				}
				return pb.BuildPreliminaryDecisionPrompt(p.AnalysisResult, p.Language)
			},
			func() any { return &models.PreliminaryDecisionResult{} },
		),
		newOperation(models.OperationAnalyzeInterviewConsistency, ConsistencyAnalysisSchema,
			func(pb *PromptBuilder, raw json.RawMessage) ([]*genai.Part, error) {
				p, err := decodePayload[models.InterviewConsistencyPayload](raw)
				if err != nil {
					return nil, err
				}
				return pb.BuildConsistencyPrompt(*p.JobInput, *p.ResumeInput, p.InterviewTranscript, p.CompatibilityGaps, p.Language), nil
			},
			func() any { return &models.ConsistencyAnalysisResult{} },
		),
		newOperation(models.OperationRewriteResumeForJob, RewrittenResumeSchema,
			func(pb *PromptBuilder, raw json.RawMessage) ([]*genai.Part, error) {
				p, err := decodePayload[models.RewriteResumePayload](raw)
				if err != nil {
					return nil, err
				}
				return pb.BuildRewritePrompt(*p.JobInput, *p.ResumeInput, p.Language), nil
			},
			func() any { return &models.RewrittenResumeResult{} },
		),
	}

	registry := make(map[models.OperationType]*Operation, len(ops))
	for _, op := range ops {
		registry[op.Name] = op
	}
	return registry
}

func decodePayload[T any](raw json.RawMessage) (*T, error) {
	var p T
	if len(raw) == 0 {
		return nil, &PayloadError{Message: "payload is required"}
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &PayloadError{Message: "failed to decode payload", Cause: err}
	}
	if err := payloadValidator.Struct(&p); err != nil {
		return nil, &PayloadError{Message: "missing or invalid fields", Cause: err}
	}
	return &p, nil
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// Dispatcher routes an operation name and payload to a single model call.
type Dispatcher struct {
	gemini     GeminiService
	prompts    *PromptBuilder
	operations map[models.OperationType]*Operation
	strict     bool
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithStrictSchema toggles local validation of model output against the operation schema.
func WithStrictSchema(strict bool) DispatcherOption {
	return func(d *Dispatcher) {
		d.strict = strict
	}
}

// NewDispatcher wires the model client into the operation table. A nil
// gemini means no credential was configured; every dispatch then fails.
func NewDispatcher(gemini GeminiService, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		gemini:     gemini,
		prompts:    NewPromptBuilder(),
		operations: DefaultOperations(),
		strict:     true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Ready reports whether a model client is configured.
func (d *Dispatcher) Ready() bool {
	return d.gemini != nil
}

// Operations returns the registered operation names, sorted.
func (d *Dispatcher) Operations() []models.OperationType {
	names := make([]models.OperationType, 0, len(d.operations))
	for name := range d.operations {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Dispatch runs one operation end to end: prompt, a single model call, parse.
func (d *Dispatcher) Dispatch(ctx context.Context, name models.OperationType, payload json.RawMessage) (any, error) {
	if !d.Ready() {
		return nil, &ConfigurationError{}
	}

	op, ok := d.operations[name]
	if !ok {
		return nil, &InvalidOperationError{Operation: string(name)}
	}

	parts, err := op.Build(d.prompts, payload)
	if err != nil {
		var payloadErr *PayloadError
		if errors.As(err, &payloadErr) {
			return nil, err
		}
		return nil, &PayloadError{Message: "failed to build prompt", Cause: err}
	}

	log.Printf("🤖 Calling model for %s (%d parts)\n", op.Name, len(parts))

	text, err := d.gemini.GenerateJSON(ctx, parts, op.Schema)
	if err != nil {
		var parseErr *ParseError
		var transportErr *TransportError
		if errors.As(err, &parseErr) || errors.As(err, &transportErr) {
			return nil, err
		}
		return nil, &TransportError{Cause: err}
	}

	return d.parse(op, text)
}

func (d *Dispatcher) parse(op *Operation, text string) (any, error) {
	raw := []byte(strings.TrimSpace(text))

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ParseError{Message: "model output is not valid JSON", Cause: err}
	}

	if d.strict {
		if err := op.validator.Validate(doc); err != nil {
			return nil, err
		}
	}

	if _, ok := doc.(map[string]any); !ok {
		return nil, &SchemaViolationError{
			Operation: string(op.Name),
			Errors:    []FieldError{{Field: "(root)", Message: "expected a JSON object"}},
		}
	}

	result := op.NewResult()
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, &SchemaViolationError{
			Operation: string(op.Name),
			Errors:    []FieldError{{Field: "(root)", Message: err.Error()}},
		}
	}

	return result, nil
}
