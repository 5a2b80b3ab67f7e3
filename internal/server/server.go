package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"alfredoptarigan/recruiter-analyzer/internal/config"
	"alfredoptarigan/recruiter-analyzer/internal/handlers"
	"alfredoptarigan/recruiter-analyzer/internal/models"
	"alfredoptarigan/recruiter-analyzer/internal/services"
)

// New builds the fiber app with middleware and routes registered.
func New(cfg *config.Config, dispatcher *services.Dispatcher, parser services.DocumentParserService) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Recruiter Analyzer API",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		// base64 inline documents grow by a third on the wire
		BodyLimit:    int(cfg.Upload.MaxFileSize) * 2,
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))

	generateHandler := handlers.NewGenerateHandler(dispatcher)
	documentHandler := handlers.NewDocumentHandler(parser, cfg.Upload.MaxFileSize)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.All("/generate", generateHandler.HandleGenerate)
	api.Post("/documents", documentHandler.HandleUpload)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":    "Recruiter Analyzer API",
			"version":    "1.0.0",
			"operations": dispatcher.Operations(),
			"endpoints": []string{
				"POST /api/generate",
				"POST /api/documents",
				"GET /api/health",
			},
		})
	})

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Message: err.Error(),
	})
}
