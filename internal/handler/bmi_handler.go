package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/yusufkecer/bmi-calculator-backend/internal/domain"
	"github.com/yusufkecer/bmi-calculator-backend/internal/metrics"
	"github.com/yusufkecer/bmi-calculator-backend/internal/service"
)

type BMIHandler struct {
	svc     *service.BMIService
	metrics *metrics.Registry
	logger  *slog.Logger
}

func NewBMIHandler(svc *service.BMIService, m *metrics.Registry, logger *slog.Logger) *BMIHandler {
	return &BMIHandler{svc: svc, metrics: m, logger: logger}
}

// Calculate godoc
//
//	@Summary	Calculate BMI
//	@Tags		bmi
//	@Accept		json
//	@Produce	json
//	@Param		body	body		domain.BMIRequest	true	"weight_kg plus height_m or height_cm"
//	@Success	200		{object}	domain.BMIResult
//	@Failure	400		{object}	map[string]string
//	@Router		/api/bmi [post]
func (h *BMIHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r.Body)
	if err != nil {
		h.reject(w, r, ErrMsgInvalidBody, err)
		return
	}

	m, err := ParseMeasurement(req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			h.reject(w, r, verr.Message, nil)
			return
		}
		h.reject(w, r, ErrMsgInvalidBody, err)
		return
	}

	result := h.svc.Calculate(m)
	h.metrics.ObserveResult(result)
	writeJSON(w, http.StatusOK, result)
}

func (h *BMIHandler) reject(w http.ResponseWriter, r *http.Request, msg string, cause error) {
	h.metrics.ObserveRejection(msg)
	attrs := []any{"path", r.URL.Path, "reason", msg}
	if cause != nil {
		attrs = append(attrs, "err", cause)
	}
	h.logger.Debug("bmi request rejected", attrs...)
	writeError(w, http.StatusBadRequest, msg)
}

// decodeRequest treats an empty or null body as an empty object. Keys are
// matched exactly; encoding/json would fold case when filling a struct.
func decodeRequest(body io.Reader) (domain.BMIRequest, error) {
	var req domain.BMIRequest

	data, err := io.ReadAll(body)
	if err != nil {
		return req, err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return req, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return domain.BMIRequest{}, err
	}
	req.WeightKg = fields["weight_kg"]
	req.HeightM = fields["height_m"]
	req.HeightCm = fields["height_cm"]
	return req, nil
}
