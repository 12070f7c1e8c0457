package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/task-classifier/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-classifier/internal/domain/classification"
	"github.com/jsamuelsen11/task-classifier/internal/platform/logging"
	"github.com/jsamuelsen11/task-classifier/internal/ports"
)

const (
	defaultMaxBatch    = 100
	defaultRecentLimit = 50
	maxRecentLimit     = 1000
)

// ClassifyHandler serves the prediction endpoints.
type ClassifyHandler struct {
	classifier  ports.Classifier
	history     ports.PredictionLog
	logger      *slog.Logger
	maxBatch    int
	recentLimit int
}

// ClassifyOption configures a ClassifyHandler.
type ClassifyOption func(*ClassifyHandler)

// WithHistory records every successful /predict result in log and serves
// GET /predictions, returning recentLimit entries unless the caller asks for
// fewer or more.
func WithHistory(log ports.PredictionLog, recentLimit int) ClassifyOption {
	return func(h *ClassifyHandler) {
		h.history = log
		if recentLimit > 0 {
			h.recentLimit = recentLimit
		}
	}
}

// WithMaxBatch caps the number of descriptions in one batch request.
func WithMaxBatch(n int) ClassifyOption {
	return func(h *ClassifyHandler) {
		if n > 0 {
			h.maxBatch = n
		}
	}
}

// NewClassifyHandler creates a ClassifyHandler backed by classifier.
func NewClassifyHandler(classifier ports.Classifier, logger *slog.Logger, opts ...ClassifyOption) *ClassifyHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &ClassifyHandler{
		classifier:  classifier,
		logger:      logger,
		maxBatch:    defaultMaxBatch,
		recentLimit: defaultRecentLimit,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HistoryEnabled reports whether GET /predictions has a store behind it.
func (h *ClassifyHandler) HistoryEnabled() bool {
	return h.history != nil
}

// Predict handles POST /predict. Any unexpected failure is answered with the
// fixed error-fallback classification.
func (h *ClassifyHandler) Predict(w http.ResponseWriter, r *http.Request) {
	defer h.recoverWithFallback(w, r)

	if err := dto.CheckContentType(r); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	req, err := dto.DecodePredictRequest(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result := h.classifier.Classify(r.Context(), req.Description)

	h.logger.DebugContext(r.Context(), "prediction",
		logging.Preview(req.Description),
		slog.String("priority", result.Priority.String()),
		slog.String("status", result.Status.String()),
		slog.String("source", result.Source.String()),
		slog.Float64("confidence", result.Confidence),
	)
	h.record(r.Context(), req.Description, result)

	writeJSON(w, http.StatusOK, dto.ToPredictResponse(result))
}

// PredictBatch handles POST /predict/batch.
func (h *ClassifyHandler) PredictBatch(w http.ResponseWriter, r *http.Request) {
	if err := dto.CheckContentType(r); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	req, err := dto.DecodeBatchPredictRequest(r, h.maxBatch)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	results := h.classifier.ClassifyBatch(r.Context(), req.Descriptions)

	writeJSON(w, http.StatusOK, dto.ToBatchPredictResponse(results))
}

// ListPredictions handles GET /predictions.
func (h *ClassifyHandler) ListPredictions(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		dto.WriteNotFound(w, r)
		return
	}

	limit, err := parseLimit(r, h.recentLimit, maxRecentLimit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	predictions, err := h.history.Recent(r.Context(), limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "listing predictions failed", slog.Any("error", err))
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPredictionListResponse(predictions))
}

// record appends the result to the history log. Failures are logged only;
// they never change the prediction response.
func (h *ClassifyHandler) record(ctx context.Context, description string, result classification.Result) {
	if h.history == nil {
		return
	}
	if _, err := h.history.Record(ctx, description, result); err != nil {
		h.logger.WarnContext(ctx, "recording prediction failed",
			logging.Preview(description),
			slog.Any("error", err),
		)
	}
}

func (h *ClassifyHandler) recoverWithFallback(w http.ResponseWriter, r *http.Request) {
	v := recover()
	if v == nil {
		return
	}

	h.logger.ErrorContext(r.Context(), "predict failed, serving error fallback",
		slog.String("panic", fmt.Sprint(v)),
		slog.String("stack", string(debug.Stack())),
	)
	dto.WriteFallbackResponse(w, r)
}
