package handlers

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/recruiter-analyzer/internal/models"
	"alfredoptarigan/recruiter-analyzer/internal/services"
)

type DocumentHandler struct {
	parser      services.DocumentParserService
	maxFileSize int64
}

func NewDocumentHandler(parser services.DocumentParserService, maxFileSize int64) *DocumentHandler {
	return &DocumentHandler{
		parser:      parser,
		maxFileSize: maxFileSize,
	}
}

// HandleUpload handles POST /api/documents. The uploaded file is turned into an
// analysis input ready for /api/generate; nothing is kept on the server.
func (h *DocumentHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Message: "No file uploaded. Please upload a document in the 'file' field.",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Message: fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Message: fmt.Sprintf("failed to open uploaded file: %v", err),
		})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Message: fmt.Sprintf("failed to read uploaded file: %v", err),
		})
	}

	mimeType := h.parser.DetectMIMEType(data)
	if mimeType == "application/octet-stream" {
		if declared := fileHeader.Header.Get(fiber.HeaderContentType); declared != "" {
			mimeType = declared
		}
	}

	var text string
	var pageCount int
	content, err := h.parser.ExtractText(data, mimeType)
	if err != nil {
		log.Printf("⚠️  Could not extract text from %s: %v\n", fileHeader.Filename, err)
	} else {
		text = content.Text
		pageCount = content.PageCount
	}

	input := models.FileInput(data, mimeType)
	if strings.HasPrefix(mimeType, "text/") {
		input = models.TextInput(string(data))
	}

	return c.Status(fiber.StatusOK).JSON(models.DocumentResponse{
		Input:     input,
		Filename:  fileHeader.Filename,
		MIMEType:  mimeType,
		Text:      text,
		PageCount: pageCount,
	})
}
