package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"stoik.com/phishscan/internal/core/domain"
	"stoik.com/phishscan/internal/core/port"
)

type AnalysisHTTPHandler struct {
	analysisService port.AnalysisService
	parser          port.MessageParser
	notifier        port.NotifierClient
	validate        *validator.Validate
}

type AnalysisResponse struct {
	Status string                `json:"status"`
	Data   domain.RiskAssessment `json:"data"`
}

type AnalysisAcceptedResponse struct {
	Message   string    `json:"message"`
	RequestID uuid.UUID `json:"request_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// NewAnalysisHTTPHandler builds the HTTP handlers. notifier may be nil, in which case
// asynchronous analysis requests are refused.
func NewAnalysisHTTPHandler(
	analysisService port.AnalysisService,
	parser port.MessageParser,
	notifier port.NotifierClient,
	validate *validator.Validate,
) *AnalysisHTTPHandler {
	return &AnalysisHTTPHandler{
		analysisService: analysisService,
		parser:          parser,
		notifier:        notifier,
		validate:        validate,
	}
}

// AnalyzeText handles the {subject, body, sender} payload sent by the browser extension.
func (h *AnalysisHTTPHandler) AnalyzeText() echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload domain.TextPayload
		if err := c.Bind(&payload); err != nil {
			log.WithError(err).Warn("Failed to bind analysis request")
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		}

		assessment, err := h.analysisService.AnalyzeText(c.Request().Context(), payload)
		if err != nil {
			return h.fail(c, err)
		}

		return c.JSON(http.StatusOK, AnalysisResponse{Status: "success", Data: assessment})
	}
}

// AnalyzeEmail handles a multipart upload of a raw .eml file in the "file" field.
func (h *AnalysisHTTPHandler) AnalyzeEmail() echo.HandlerFunc {
	return func(c echo.Context) error {
		header, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file provided"})
		}
		if !strings.EqualFold(filepath.Ext(header.Filename), ".eml") {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Only .eml files are supported"})
		}

		file, err := header.Open()
		if err != nil {
			log.WithError(err).Error("Failed to open uploaded file")
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unreadable file"})
		}
		defer file.Close()

		raw, err := io.ReadAll(file)
		if err != nil {
			log.WithError(err).Error("Failed to read uploaded file")
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unreadable file"})
		}

		message, err := h.parser.Parse(raw)
		if err != nil {
			return h.fail(c, err)
		}

		assessment, err := h.analysisService.AnalyzeEmail(c.Request().Context(), message)
		if err != nil {
			return h.fail(c, err)
		}

		return c.JSON(http.StatusOK, AnalysisResponse{Status: "success", Data: assessment})
	}
}

// RequestAnalysis queues a text payload for the phishing detector worker.
func (h *AnalysisHTTPHandler) RequestAnalysis() echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.notifier == nil {
			return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Asynchronous analysis is not enabled"})
		}

		var payload domain.TextPayload
		if err := c.Bind(&payload); err != nil {
			log.WithError(err).Warn("Failed to bind analysis request")
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		}
		if err := h.validate.Struct(payload); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		}

		msg := &domain.AnalysisRequestedMessage{
			RequestID:   uuid.New(),
			Payload:     payload,
			RequestedAt: time.Now().UTC(),
		}
		if err := h.notifier.NotifyAnalysisRequested(c.Request().Context(), msg); err != nil {
			log.WithError(err).WithField("requestID", msg.RequestID).Error("Failed to queue analysis")
			return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Analysis queue unavailable"})
		}

		return c.JSON(http.StatusAccepted, AnalysisAcceptedResponse{
			Message:   "Analysis queued",
			RequestID: msg.RequestID,
		})
	}
}

func (h *AnalysisHTTPHandler) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrMalformedInput):
		log.WithError(err).Warn("Rejected malformed analysis request")
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
	case errors.Is(err, domain.ErrMLUnavailable):
		log.WithError(err).Error("ML collaborator unavailable")
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Text classifier unavailable"})
	default:
		log.WithError(err).Error("Analysis failed")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An internal error occurred during analysis."})
	}
}
