package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisInput_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    AnalysisInput
		wantErr bool
	}{
		{
			name: "text content",
			raw:  `{"content": "Backend engineer, Go, 3 yrs", "format": "text"}`,
			want: TextInput("Backend engineer, Go, 3 yrs"),
		},
		{
			name: "file content",
			raw:  `{"content": {"data": "JVBERi0xLjQ=", "mimeType": "application/pdf"}, "format": "file"}`,
			want: FileInput([]byte("%PDF-1.4"), "application/pdf"),
		},
		{
			name: "null content",
			raw:  `{"content": null, "format": "text"}`,
			want: AnalysisInput{Format: FormatText},
		},
		{
			name:    "numeric content",
			raw:     `{"content": 7, "format": "text"}`,
			wantErr: true,
		},
		{
			name:    "invalid base64",
			raw:     `{"content": {"data": "***", "mimeType": "application/pdf"}, "format": "file"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got AnalysisInput
			err := json.Unmarshal([]byte(tt.raw), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnalysisInput_MarshalJSON(t *testing.T) {
	text, err := json.Marshal(TextInput("hello"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"content": "hello", "format": "text"}`, string(text))

	file, err := json.Marshal(FileInput([]byte("%PDF-1.4"), "application/pdf"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"content": {"data": "JVBERi0xLjQ=", "mimeType": "application/pdf"}, "format": "file"}`, string(file))
}
