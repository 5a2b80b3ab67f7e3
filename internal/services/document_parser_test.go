package services

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := map[string]string{
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body + `</w:body></w:document>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestDocumentParser_DetectMIMEType(t *testing.T) {
	parser := NewDocumentParserService()

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "plain text", data: []byte("Jane Doe\nJava developer, 4 years"), want: "text/plain"},
		{name: "pdf", data: []byte("%PDF-1.4\n%âãÏÓ\n1 0 obj\n"), want: mimePDF},
		{name: "binary", data: []byte{0x00, 0x01, 0x02, 0x03, 0xfe, 0xff, 0x00, 0x10}, want: "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.DetectMIMEType(tt.data))
		})
	}
}

func TestDocumentParser_ExtractText_PlainText(t *testing.T) {
	content, err := NewDocumentParserService().ExtractText([]byte("Backend engineer, Go, 3 yrs"), "text/plain")
	require.NoError(t, err)

	assert.Equal(t, "Backend engineer, Go, 3 yrs", content.Text)
	assert.Equal(t, 1, content.PageCount)
	assert.Equal(t, "text/plain", content.MIMEType)
}

func TestDocumentParser_ExtractText_Docx(t *testing.T) {
	data := buildDocx(t,
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Java &amp; Go developer</w:t></w:r></w:p>`+
			`<w:p></w:p>`)

	content, err := NewDocumentParserService().ExtractText(data, mimeDOCX)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\nJava & Go developer", content.Text)
	assert.Equal(t, mimeDOCX, content.MIMEType)
}

func TestDocumentParser_ExtractText_CorruptInputs(t *testing.T) {
	parser := NewDocumentParserService()

	_, err := parser.ExtractText([]byte("not a zip"), mimeDOCX)
	assert.Error(t, err)

	_, err = parser.ExtractText([]byte("not a pdf"), mimePDF)
	assert.Error(t, err)
}

func TestDocumentParser_ExtractText_UnsupportedType(t *testing.T) {
	content, err := NewDocumentParserService().ExtractText([]byte{0x89, 0x50, 0x4e, 0x47}, "image/png")
	require.NoError(t, err)

	assert.Empty(t, content.Text)
	assert.Equal(t, "image/png", content.MIMEType)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "line one\nline two", CleanText("  \n  line one  \n\n\t\n line two\n"))
	assert.Empty(t, CleanText("   \n \n"))
}
