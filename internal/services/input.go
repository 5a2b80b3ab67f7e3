package services

import (
	"google.golang.org/genai"

	"alfredoptarigan/recruiter-analyzer/internal/models"
)

// BuildContentPart turns an input into a single model content part.
// Binary documents are attached verbatim; everything else goes in as text.
func BuildContentPart(input models.AnalysisInput) *genai.Part {
	if input.Format == models.FormatFile && input.Content.File != nil {
		return genai.NewPartFromBytes(input.Content.File.Data, input.Content.File.MIMEType)
	}
	return genai.NewPartFromText(input.Content.Text)
}
