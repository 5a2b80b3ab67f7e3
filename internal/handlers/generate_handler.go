package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/recruiter-analyzer/internal/models"
	"alfredoptarigan/recruiter-analyzer/internal/services"
)

type GenerateHandler struct {
	dispatcher *services.Dispatcher
}

func NewGenerateHandler(dispatcher *services.Dispatcher) *GenerateHandler {
	return &GenerateHandler{
		dispatcher: dispatcher,
	}
}

// HandleGenerate handles /api/generate. Only POST is accepted.
func (h *GenerateHandler) HandleGenerate(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(models.ErrorResponse{
			Message: "Method Not Allowed",
		})
	}

	if !h.dispatcher.Ready() {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Message: (&services.ConfigurationError{}).Error(),
		})
	}

	var req models.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Message: "Invalid request payload",
		})
	}

	result, err := h.dispatcher.Dispatch(c.UserContext(), req.Type, req.Payload)
	if err != nil {
		log.Printf("❌ [%v] %s failed: %v\n", c.Locals("requestid"), req.Type, err)
		return c.Status(services.HTTPStatus(err)).JSON(models.ErrorResponse{
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
