package http

import (
	"net/http"
	"strconv"

	commonerrors "github.com/AlibekovAA/caption-studio/backend/internal/common/errors"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/httpmetrics"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
	"github.com/AlibekovAA/caption-studio/backend/internal/observability/metrics"
)

type ErrorHandler struct {
	log *logger.Logger
}

func NewErrorHandler(log *logger.Logger) *ErrorHandler {
	return &ErrorHandler{log: log}
}

// HandleError writes err as an envelope. Domain errors keep their status and
// message; anything else becomes a 500 carrying fallbackMessage.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	if err == nil {
		return
	}
	if fallbackMessage == "" {
		fallbackMessage = commonerrors.ErrInternalError.Message()
	}

	ctx := r.Context()
	traceID := TraceIDFromContext(ctx)

	if domainErr, ok := commonerrors.AsDomainError(err); ok && domainErr.Category() != commonerrors.CategoryInternal {
		h.handleDomainError(w, r, domainErr)
		return
	}

	h.log.WithFields(ctx, logger.Fields{
		"error":  err.Error(),
		"path":   r.URL.Path,
		"action": "unhandled_error",
	}).Errorf("unhandled error: %v", err)

	metrics.HTTPErrorsTotal.WithLabelValues(
		strconv.Itoa(http.StatusInternalServerError),
		httpmetrics.NormalizePath(r.URL.Path),
		r.Method,
	).Inc()

	WriteErrorEnvelope(w, commonerrors.ErrInternalError.HTTPStatus(), commonerrors.ErrInternalError.Code(), fallbackMessage, nil, traceID)
}

func (h *ErrorHandler) handleDomainError(w http.ResponseWriter, r *http.Request, domainErr commonerrors.DomainError) {
	ctx := r.Context()
	status := domainErr.HTTPStatus()

	if h.log.ShouldLog(logger.DEBUG) {
		h.log.WithFields(ctx, logger.Fields{
			"error_code": domainErr.Code(),
			"category":   string(domainErr.Category()),
			"status":     status,
			"action":     "domain_error",
		}).Debugf("domain error: %s", domainErr.Error())
	}

	metrics.DomainErrorsTotal.WithLabelValues(
		string(domainErr.Category()),
		domainErr.Code(),
		strconv.Itoa(status),
	).Inc()

	metrics.HTTPErrorsTotal.WithLabelValues(
		strconv.Itoa(status),
		httpmetrics.NormalizePath(r.URL.Path),
		r.Method,
	).Inc()

	WriteErrorEnvelope(w, status, domainErr.Code(), domainErr.Message(), nil, TraceIDFromContext(ctx))
}
