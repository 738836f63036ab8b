package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devendra-Pratap-Singh/AI-Resume-Analyzer/internal/models"
	"github.com/Devendra-Pratap-Singh/AI-Resume-Analyzer/internal/repositories"
	"github.com/Devendra-Pratap-Singh/AI-Resume-Analyzer/internal/services"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText(data []byte, contentType, filename string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

type stubResumeRepo struct {
	created   []*models.Resume
	createErr error
}

func (s *stubResumeRepo) Create(resume *models.Resume) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, resume)
	return nil
}

func (s *stubResumeRepo) FindByIDForUser(id, userID uuid.UUID) (*models.Resume, error) {
	for _, r := range s.created {
		if r.ID == id && r.UserID == userID {
			return r, nil
		}
	}
	return nil, repositories.ErrResumeNotFound
}

func (s *stubResumeRepo) FindByUserID(userID uuid.UUID) ([]models.Resume, error) {
	var out []models.Resume
	for _, r := range s.created {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

// newAnalyzeApp wires the handler behind a middleware that injects a fixed
// caller identity, standing in for the JWT middleware.
func newAnalyzeApp(h *AnalyzeHandler, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Post("/analyze", func(c *fiber.Ctx) error {
		c.Locals(userIDKey, userID)
		return c.Next()
	}, h.HandleAnalyze)
	return app
}

func multipartRequest(t *testing.T, field, filename, contentType string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["error"]
}

const resumeText = "Experience as a frontend engineer. Skills: React, JavaScript, testing. " +
	"Education: university degree. Contact: email and phone on request."

func TestHandleAnalyzeSuccess(t *testing.T) {
	repo := &stubResumeRepo{}
	userID := uuid.New()
	h := NewAnalyzeHandler(&stubExtractor{text: resumeText}, services.NewAnalyzerService(), repo, 10<<20)
	app := newAnalyzeApp(h, userID)

	req := multipartRequest(t, "file", "resume.pdf", "application/pdf", []byte("%PDF-stub"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body models.AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	recordID, err := uuid.Parse(body.ID)
	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", body.FileName)
	assert.NotEmpty(t, body.Summary)
	assert.NotEmpty(t, body.Jobs)

	require.Len(t, repo.created, 1)
	assert.Equal(t, recordID, repo.created[0].ID)
	assert.Equal(t, userID, repo.created[0].UserID)
	assert.Equal(t, body.Score, repo.created[0].Score)
}

func TestHandleAnalyzeNoFile(t *testing.T) {
	h := NewAnalyzeHandler(&stubExtractor{text: resumeText}, services.NewAnalyzerService(), &stubResumeRepo{}, 10<<20)
	app := newAnalyzeApp(h, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(""))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp), "No file uploaded")
}

func TestHandleAnalyzeUnsupportedFormat(t *testing.T) {
	h := NewAnalyzeHandler(&stubExtractor{err: services.ErrUnsupportedFormat}, services.NewAnalyzerService(), &stubResumeRepo{}, 10<<20)
	app := newAnalyzeApp(h, uuid.New())

	req := multipartRequest(t, "file", "resume.txt", "text/plain", []byte("plain text"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp), "PDF or DOCX")
}

func TestHandleAnalyzeScannedPDF(t *testing.T) {
	h := NewAnalyzeHandler(&stubExtractor{err: services.ErrScannedDocument}, services.NewAnalyzerService(), &stubResumeRepo{}, 10<<20)
	app := newAnalyzeApp(h, uuid.New())

	req := multipartRequest(t, "file", "scanned.pdf", "application/pdf", []byte("%PDF-stub"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandleAnalyzeParserFault(t *testing.T) {
	parserErr := fmt.Errorf("%w: unexpected EOF", services.ErrExtractionFailed)
	h := NewAnalyzeHandler(&stubExtractor{err: parserErr}, services.NewAnalyzerService(), &stubResumeRepo{}, 10<<20)
	app := newAnalyzeApp(h, uuid.New())

	req := multipartRequest(t, "file", "broken.docx", "application/octet-stream", []byte("junk"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp), "unexpected EOF")
}

func TestHandleAnalyzeContentTooShort(t *testing.T) {
	h := NewAnalyzeHandler(&stubExtractor{text: "short extraction result"}, services.NewAnalyzerService(), &stubResumeRepo{}, 10<<20)
	app := newAnalyzeApp(h, uuid.New())

	req := multipartRequest(t, "file", "resume.pdf", "application/pdf", []byte("%PDF-stub"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp), "too short")
}

func TestHandleAnalyzePersistenceFailure(t *testing.T) {
	repo := &stubResumeRepo{createErr: fmt.Errorf("connection refused")}
	h := NewAnalyzeHandler(&stubExtractor{text: resumeText}, services.NewAnalyzerService(), repo, 10<<20)
	app := newAnalyzeApp(h, uuid.New())

	req := multipartRequest(t, "file", "resume.pdf", "application/pdf", []byte("%PDF-stub"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	tokens := services.NewTokenService("secret", "issuer", time.Hour)
	app := fiber.New()
	app.Get("/protected", RequireAuth(tokens), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthAcceptsBearerToken(t *testing.T) {
	tokens := services.NewTokenService("secret", "issuer", time.Hour)
	userID := uuid.New()
	token, err := tokens.Generate(userID)
	require.NoError(t, err)

	var gotUserID uuid.UUID
	app := fiber.New()
	app.Get("/protected", RequireAuth(tokens), func(c *fiber.Ctx) error {
		gotUserID, _ = c.Locals(userIDKey).(uuid.UUID)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, userID, gotUserID)
}
