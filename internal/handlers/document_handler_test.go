package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/recruiter-analyzer/internal/models"
	"alfredoptarigan/recruiter-analyzer/internal/services"
)

func newUploadApp(maxFileSize int64) *fiber.App {
	app := fiber.New()
	h := NewDocumentHandler(services.NewDocumentParserService(), maxFileSize)
	app.Post("/api/documents", h.HandleUpload)
	return app
}

func uploadRequest(t *testing.T, field, filename string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		w, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/documents", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandleUpload_TextFile(t *testing.T) {
	app := newUploadApp(1024)

	resp, err := app.Test(uploadRequest(t, "file", "resume.txt", []byte("Jane Doe\nJava dev 4 yrs\n")))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out models.DocumentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	assert.Equal(t, "resume.txt", out.Filename)
	assert.Equal(t, "text/plain", out.MIMEType)
	assert.Equal(t, "Jane Doe\nJava dev 4 yrs\n", out.Text)
	assert.Equal(t, 1, out.PageCount)
	assert.Equal(t, models.TextInput("Jane Doe\nJava dev 4 yrs\n"), out.Input)
}

func TestHandleUpload_BinaryFile(t *testing.T) {
	app := newUploadApp(1024)
	data := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}

	resp, err := app.Test(uploadRequest(t, "file", "blob.bin", data))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out models.DocumentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	assert.Equal(t, models.FormatFile, out.Input.Format)
	require.NotNil(t, out.Input.Content.File)
	assert.Equal(t, data, out.Input.Content.File.Data)
	assert.Empty(t, out.Text)
}

func TestHandleUpload_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		data        []byte
		wantMessage string
	}{
		{
			name:        "no file",
			wantMessage: "No file uploaded. Please upload a document in the 'file' field.",
		},
		{
			name:        "too large",
			field:       "file",
			data:        bytes.Repeat([]byte("a"), 64),
			wantMessage: "File too large. Max size: 32 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newUploadApp(32)

			resp, err := app.Test(uploadRequest(t, tt.field, "resume.txt", tt.data))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"message": "`+tt.wantMessage+`"}`, string(raw))
		})
	}
}
