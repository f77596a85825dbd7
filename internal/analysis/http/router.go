package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/service"
	commonhttp "github.com/AlibekovAA/caption-studio/backend/internal/common/http"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/jwtverify"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
)

type analyzeRequest struct {
	Text     string `json:"text" validate:"max=5000"`
	Image    string `json:"image"`
	Platform string `json:"platform" validate:"max=32"`
}

type Handler struct {
	analysis     *service.AnalysisService
	jwtSecret    string
	log          *logger.Logger
	errorHandler *commonhttp.ErrorHandler
	timeout      time.Duration
}

func NewHandler(analysis *service.AnalysisService, jwtSecret string, requestTimeout time.Duration, log *logger.Logger) *Handler {
	return &Handler{
		analysis:     analysis,
		jwtSecret:    jwtSecret,
		log:          log,
		errorHandler: commonhttp.NewErrorHandler(log),
		timeout:      requestTimeout,
	}
}

// Routes mounts POST /api/analyze. A bearer token is optional; when present
// it must be valid.
func (h *Handler) Routes(r chi.Router) {
	r.With(jwtverify.OptionalMiddleware(h.jwtSecret, h.log)).
		Post("/api/analyze", commonhttp.WithTimeout(h.timeout)(h.analyze))
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.WithFields(r.Context(), logger.Fields{
			"action": "analyze_invalid_json",
		}).Warnf("analyze failed: invalid json: %v", err)
		commonhttp.WriteDecodeError(w, r, err)
		return
	}

	if err := commonhttp.ValidateStruct(req); err != nil {
		var fe commonhttp.FieldErrors
		if errors.As(err, &fe) {
			h.log.WithFields(r.Context(), logger.Fields{
				"action": "analyze_validation_failed",
			}).Warn(fe.Error())
			commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeValidation,
				"Request validation failed", fe.Details(), commonhttp.TraceIDFromContext(r.Context()))
			return
		}
		h.errorHandler.HandleError(w, r, err, "Analysis failed")
		return
	}

	in := service.Request{
		Text:     req.Text,
		Image:    req.Image,
		Platform: req.Platform,
	}
	if claims, ok := jwtverify.FromContext(r.Context()); ok {
		in.UserID = claims.UserID
	}

	result, err := h.analysis.Analyze(r.Context(), in)
	if err != nil {
		h.errorHandler.HandleError(w, r, err, "Analysis failed")
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, result)
}
