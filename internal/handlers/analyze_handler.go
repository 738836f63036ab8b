package handlers

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Devendra-Pratap-Singh/AI-Resume-Analyzer/internal/models"
	"github.com/Devendra-Pratap-Singh/AI-Resume-Analyzer/internal/repositories"
	"github.com/Devendra-Pratap-Singh/AI-Resume-Analyzer/internal/services"
)

type AnalyzeHandler struct {
	extractor   services.DocumentExtractor
	analyzer    services.AnalyzerService
	resumeRepo  repositories.ResumeRepository
	maxFileSize int64
}

func NewAnalyzeHandler(
	extractor services.DocumentExtractor,
	analyzer services.AnalyzerService,
	resumeRepo repositories.ResumeRepository,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		extractor:   extractor,
		analyzer:    analyzer,
		resumeRepo:  resumeRepo,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze. It runs the whole pipeline
// synchronously: extract, normalize, analyze, persist.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	userID, ok := c.Locals(userIDKey).(uuid.UUID)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open uploaded file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}

	contentType := fileHeader.Header.Get("Content-Type")

	rawText, err := h.extractor.ExtractText(data, contentType, fileHeader.Filename)
	if err != nil {
		return extractionError(c, err)
	}

	text, err := services.NormalizeText(rawText)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Resume content is too short or unreadable. If you uploaded a scanned PDF, please convert it to text or upload DOCX.",
		})
	}

	analysis := h.analyzer.Analyze(text)

	resume := &models.Resume{
		ID:        uuid.New(),
		UserID:    userID,
		FileName:  fileHeader.Filename,
		Score:     analysis.Score,
		Analysis:  *analysis,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.resumeRepo.Create(resume); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save analysis record: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.AnalyzeResponse{
		ID:              resume.ID.String(),
		FileName:        resume.FileName,
		Score:           analysis.Score,
		Summary:         analysis.Summary,
		Pros:            analysis.Pros,
		Cons:            analysis.Cons,
		Recommendations: analysis.Recommendations,
		Jobs:            analysis.Jobs,
	})
}

// extractionError maps the extractor's error taxonomy onto HTTP statuses:
// unsupported declarations are the caller's mistake (400), while parser
// rejections of accepted uploads are unprocessable content (422).
func extractionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUnsupportedFormat):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported file type. Please upload PDF or DOCX only.",
		})
	case errors.Is(err, services.ErrScannedDocument),
		errors.Is(err, services.ErrEmptyDocument),
		errors.Is(err, services.ErrExtractionFailed):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to read file: %v", err),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
