package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/yusufkecer/bmi-calculator-backend/internal/domain"
)

const (
	minWeightKg = 10.0
	maxWeightKg = 500.0
	minHeightM  = 0.4
	maxHeightM  = 2.8
)

// Validation messages returned to the client. Each one is also the metrics
// reason label, so keep them stable.
const (
	ErrMsgInvalidWeight    = "Invalid or missing weight_kg (should be a number)."
	ErrMsgMissingHeight    = "Missing height (provide height_cm or height_m)."
	ErrMsgInvalidHeight    = "Invalid height (must be numeric)."
	ErrMsgWeightOutOfRange = "Weight out of reasonable range (10 - 500 kg)."
	ErrMsgHeightOutOfRange = "Height out of reasonable range (0.4 - 2.8 meters)."
	ErrMsgInvalidBody      = "Invalid JSON body."
)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// ParseMeasurement validates a decoded request. Checks run in a fixed order and
// the first failure is returned as a *ValidationError.
func ParseMeasurement(req domain.BMIRequest) (domain.Measurement, error) {
	weight, ok := parseNumber(req.WeightKg)
	if !ok {
		return domain.Measurement{}, invalid(ErrMsgInvalidWeight)
	}

	var height float64
	switch {
	case present(req.HeightM):
		h, ok := parseNumber(req.HeightM)
		if !ok {
			return domain.Measurement{}, invalid(ErrMsgInvalidHeight)
		}
		height = h
	case present(req.HeightCm):
		cm, ok := parseNumber(req.HeightCm)
		if !ok {
			return domain.Measurement{}, invalid(ErrMsgInvalidHeight)
		}
		height = cm / 100.0
	default:
		return domain.Measurement{}, invalid(ErrMsgMissingHeight)
	}

	// NaN fails both comparisons, so it lands here too.
	if !(weight >= minWeightKg && weight <= maxWeightKg) {
		return domain.Measurement{}, invalid(ErrMsgWeightOutOfRange)
	}
	if !(height >= minHeightM && height <= maxHeightM) {
		return domain.Measurement{}, invalid(ErrMsgHeightOutOfRange)
	}

	return domain.Measurement{WeightKg: weight, HeightM: height}, nil
}

func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// parseNumber accepts a JSON number or a string holding a decimal one. Values
// too large for a float64 come back as ±Inf and are left to the range checks.
func parseNumber(raw json.RawMessage) (float64, bool) {
	if !present(raw) {
		return 0, false
	}

	text := string(bytes.TrimSpace(raw))
	switch c := text[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal([]byte(text), &s); err != nil {
			return 0, false
		}
		text = strings.TrimSpace(s)
		if isHexLiteral(text) {
			return 0, false
		}
	case c == '-' || (c >= '0' && c <= '9'):
	default:
		return 0, false
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
