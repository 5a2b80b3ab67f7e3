package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type InputFormat string

const (
	FormatText InputFormat = "text"
	FormatFile InputFormat = "file"
)

// AnalysisInput is a job description or resume, either pasted text or an uploaded document.
type AnalysisInput struct {
	Content InputContent `json:"content"`
	Format  InputFormat  `json:"format" validate:"required,oneof=text file"`
}

// InputContent holds either a plain string or an inline binary document.
// On the wire it is a JSON string or an object {"data": <base64>, "mimeType": "..."}.
type InputContent struct {
	Text string
	File *FileContent
}

type FileContent struct {
	Data     []byte `json:"data"`
	MIMEType string `json:"mimeType"`
}

func TextInput(text string) AnalysisInput {
	return AnalysisInput{Content: InputContent{Text: text}, Format: FormatText}
}

func FileInput(data []byte, mimeType string) AnalysisInput {
	return AnalysisInput{
		Content: InputContent{File: &FileContent{Data: data, MIMEType: mimeType}},
		Format:  FormatFile,
	}
}

func (c InputContent) MarshalJSON() ([]byte, error) {
	if c.File != nil {
		return json.Marshal(c.File)
	}
	return json.Marshal(c.Text)
}

func (c *InputContent) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = InputContent{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*c = InputContent{Text: text}
	case '{':
		var file FileContent
		if err := json.Unmarshal(trimmed, &file); err != nil {
			return fmt.Errorf("invalid file content: %w", err)
		}
		*c = InputContent{File: &file}
	default:
		return fmt.Errorf("content must be a string or an object with data and mimeType")
	}

	return nil
}
