// Package server exposes the statement pipeline over HTTP. One endpoint
// accepts a PDF upload and returns the structured statement record; the
// document is also persisted through the store.
package server

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/almasriprojects/BankAPI/internal/config"
	"github.com/almasriprojects/BankAPI/internal/logging"
	"github.com/almasriprojects/BankAPI/internal/models"
	"github.com/almasriprojects/BankAPI/internal/parsererror"
	"github.com/almasriprojects/BankAPI/internal/pipeline"
	"github.com/almasriprojects/BankAPI/internal/store"
)

// TextExtractor turns an uploaded PDF file into an OCR transcript.
type TextExtractor interface {
	ExtractText(ctx context.Context, pdfPath string) (string, error)
}

// Server wires the extractor, pipeline and store behind a Fiber app.
type Server struct {
	cfg       *config.Config
	extractor TextExtractor
	pipeline  *pipeline.Pipeline
	store     *store.Store
	logger    logging.Logger
	app       *fiber.App
}

// successResponse is the envelope for a processed statement.
type successResponse struct {
	Status   string                `json:"status"`
	Data     *models.StatementData `json:"data"`
	FilePath string                `json:"file_path"`
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// New creates a Server with its routes registered.
func New(cfg *config.Config, extractor TextExtractor, p *pipeline.Pipeline, st *store.Store, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.GetLogger()
	}

	s := &Server{
		cfg:       cfg,
		extractor: extractor,
		pipeline:  p,
		store:     st,
		logger:    logger,
	}

	s.app = fiber.New(fiber.Config{
		AppName:   "BankAPI",
		BodyLimit: cfg.Server.MaxUploadMB * 1024 * 1024,
	})
	s.app.Get("/health", s.handleHealth)
	s.app.Post("/upload-statement", s.handleUpload)

	return s
}

// App exposes the underlying Fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on the configured address.
func (s *Server) Listen() error {
	s.logger.WithField("address", s.cfg.Server.Listen).Info("Starting HTTP server")
	return s.app.Listen(s.cfg.Server.Listen)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleUpload(c *fiber.Ctx) error {
	start := time.Now()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "missing form field \"file\"")
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		return badRequest(c, (&parsererror.InvalidFormatError{
			FileName: fileHeader.Filename,
			Msg:      "only PDF statements are accepted",
		}).Error())
	}

	upload, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "could not read uploaded file")
	}
	defer upload.Close()

	content, err := io.ReadAll(upload)
	if err != nil {
		return badRequest(c, "could not read uploaded file")
	}
	if len(content) == 0 {
		return badRequest(c, (&parsererror.InvalidFormatError{
			FileName: fileHeader.Filename,
			Msg:      "uploaded file is empty",
		}).Error())
	}

	// The OCR toolchain works on files, so spool the upload to disk.
	tempFile, err := os.CreateTemp("", "bankapi-upload-*.pdf")
	if err != nil {
		return internalError(c, s.logger, err)
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)
	if _, err := tempFile.Write(content); err != nil {
		tempFile.Close()
		return internalError(c, s.logger, err)
	}
	if err := tempFile.Close(); err != nil {
		return internalError(c, s.logger, err)
	}

	ctx := c.Context()
	text, err := s.extractor.ExtractText(ctx, tempPath)
	if err != nil {
		s.logger.WithError(err).WithField(logging.FieldFile, fileHeader.Filename).
			Error("Text extraction failed")
		return internalError(c, s.logger, err)
	}

	data, err := s.pipeline.Process(ctx, text, content, fileHeader.Filename, start)
	if err != nil {
		var extractionErr *parsererror.ExtractionError
		if errors.As(err, &extractionErr) {
			return badRequest(c, extractionErr.Error())
		}
		return internalError(c, s.logger, err)
	}

	savedPath, err := s.store.SaveJSON(data)
	if err != nil {
		return internalError(c, s.logger, err)
	}

	return c.JSON(successResponse{
		Status:   "success",
		Data:     data,
		FilePath: savedPath,
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
		Status: "error",
		Error:  msg,
	})
}

func internalError(c *fiber.Ctx, logger logging.Logger, err error) error {
	logger.WithError(err).Error("Statement processing failed")
	return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
		Status: "error",
		Error:  "internal processing error",
	})
}
