package services

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// DocumentParserService produces a plain-text preview of uploaded documents.
type DocumentParserService interface {
	DetectMIMEType(data []byte) string
	ExtractText(data []byte, mimeType string) (*DocumentContent, error)
}

type DocumentContent struct {
	Text      string
	PageCount int
	MIMEType  string
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

// DetectMIMEType sniffs data and returns the bare media type, without parameters.
func (p *documentParserService) DetectMIMEType(data []byte) string {
	detected := mimetype.Detect(data)
	for m := detected; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return "text/plain"
		}
	}
	mediaType, _, _ := strings.Cut(detected.String(), ";")
	return mediaType
}

// ExtractText returns the readable text of a PDF, DOCX or plain text document.
// Other types yield empty text and no error.
func (p *documentParserService) ExtractText(data []byte, mimeType string) (*DocumentContent, error) {
	switch {
	case mimeType == mimePDF:
		return extractPDF(data)
	case mimeType == mimeDOCX:
		return extractDOCX(data)
	case strings.HasPrefix(mimeType, "text/"):
		return &DocumentContent{Text: string(data), PageCount: 1, MIMEType: mimeType}, nil
	default:
		return &DocumentContent{MIMEType: mimeType}, nil
	}
}

func extractPDF(data []byte) (*DocumentContent, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return &DocumentContent{
		Text:      CleanText(textBuilder.String()),
		PageCount: totalPage,
		MIMEType:  mimePDF,
	}, nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
)

func extractDOCX(data []byte) (*DocumentContent, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTag.ReplaceAllString(content, "")

	return &DocumentContent{
		Text:      CleanText(html.UnescapeString(content)),
		PageCount: 0,
		MIMEType:  mimeDOCX,
	}, nil
}

// CleanText trims every line and drops blank ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
