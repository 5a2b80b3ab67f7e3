package main

import (
	"fmt"
	"os"

	"alfredoptarigan/recruiter-analyzer/internal/models"
	"alfredoptarigan/recruiter-analyzer/internal/services"
)

var documentParser = services.NewDocumentParserService()

// loadInput reads a file and sends text-like content as text, anything else as an inline document.
func loadInput(path string) (models.AnalysisInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.AnalysisInput{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	mimeType := documentParser.DetectMIMEType(data)
	if mimeType == "text/plain" {
		return models.TextInput(string(data)), nil
	}
	return models.FileInput(data, mimeType), nil
}
