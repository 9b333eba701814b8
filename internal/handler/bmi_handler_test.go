package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yusufkecer/bmi-calculator-backend/internal/domain"
	"github.com/yusufkecer/bmi-calculator-backend/internal/metrics"
	"github.com/yusufkecer/bmi-calculator-backend/internal/service"
)

func newTestHandler() (*BMIHandler, *metrics.Registry) {
	reg := metrics.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewBMIHandler(service.NewBMIService(), reg, logger), reg
}

func post(t *testing.T, h *BMIHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/api/bmi", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Calculate(rr, r)
	return rr
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, rr.Body.String())
	}
	return body["error"]
}

func TestCalculate_Success(t *testing.T) {
	h, reg := newTestHandler()

	rr := post(t, h, `{"weight_kg": 70, "height_cm": 175}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (%s)", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]any{
		"bmi":                   22.9,
		"category":              "Normal",
		"note":                  "Great — your weight is within the normal range.",
		"height_m":              1.75,
		"healthy_weight_min_kg": 56.7,
		"healthy_weight_max_kg": 76.3,
	}
	if len(body) != len(want) {
		t.Errorf("fields: got %v", body)
	}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("%s: got %v, want %v", k, body[k], v)
		}
	}

	if reg.Calculations(domain.Normal) != 1 {
		t.Error("calculation not counted")
	}
}

func TestCalculate_Obesity(t *testing.T) {
	h, _ := newTestHandler()

	rr := post(t, h, `{"weight_kg": 120, "height_m": 1.65}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}

	var body struct {
		BMI      float64 `json:"bmi"`
		Category string  `json:"category"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.BMI != 44.1 || body.Category != "Obesity" {
		t.Fatalf("got %+v, want bmi 44.1 Obesity", body)
	}
}

func TestCalculate_CentimetresMatchMetres(t *testing.T) {
	h, _ := newTestHandler()

	cm := post(t, h, `{"weight_kg": 65, "height_cm": 170}`)
	m := post(t, h, `{"weight_kg": 65, "height_m": 1.70}`)
	if cm.Code != http.StatusOK || m.Code != http.StatusOK {
		t.Fatalf("status: cm %d, m %d", cm.Code, m.Code)
	}
	if cm.Body.String() != m.Body.String() {
		t.Fatalf("bodies differ:\ncm: %s\nm:  %s", cm.Body.String(), m.Body.String())
	}
}

func TestCalculate_ExactKeysWin(t *testing.T) {
	h, _ := newTestHandler()

	rr := post(t, h, `{"weight_kg": 70, "height_m": 1.75, "HEIGHT_M": "abc"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (%s)", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"bmi":22.9`) {
		t.Fatalf("body: %s", rr.Body.String())
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	h, _ := newTestHandler()

	first := post(t, h, `{"weight_kg": "88.2", "height_m": "1.83"}`).Body.String()
	for i := 0; i < 3; i++ {
		if again := post(t, h, `{"weight_kg": "88.2", "height_m": "1.83"}`).Body.String(); again != first {
			t.Fatalf("call %d differs: %s vs %s", i, again, first)
		}
	}
}

func TestCalculate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing weight", `{"height_cm": 170}`, ErrMsgInvalidWeight},
		{"missing height", `{"weight_kg": 70}`, ErrMsgMissingHeight},
		{"upper-case keys", `{"WEIGHT_KG": 70, "Height_M": 1.75}`, ErrMsgInvalidWeight},
		{"hex weight", `{"weight_kg": "0x46p0", "height_m": 1.75}`, ErrMsgInvalidWeight},
		{"overflowing number", `{"weight_kg": 1e400, "height_m": 1.75}`, ErrMsgWeightOutOfRange},
		{"bad height", `{"weight_kg": 70, "height_cm": "abc"}`, ErrMsgInvalidHeight},
		{"weight range", `{"weight_kg": 500.01, "height_cm": 170}`, ErrMsgWeightOutOfRange},
		{"height range", `{"weight_kg": 70, "height_m": 2.81}`, ErrMsgHeightOutOfRange},
		{"empty body", ``, ErrMsgInvalidWeight},
		{"null body", `null`, ErrMsgInvalidWeight},
		{"malformed json", `{"weight_kg": `, ErrMsgInvalidBody},
		{"array body", `[70, 175]`, ErrMsgInvalidBody},
		{"scalar body", `"70"`, ErrMsgInvalidBody},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, reg := newTestHandler()
			rr := post(t, h, tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status: got %d, want 400", rr.Code)
			}
			if got := errorMessage(t, rr); got != tc.want {
				t.Fatalf("error: got %q, want %q", got, tc.want)
			}
			if reg.Rejections(tc.want) != 1 {
				t.Errorf("rejection %q not counted", tc.want)
			}
		})
	}
}

func TestCalculate_BodyTooLarge(t *testing.T) {
	h, _ := newTestHandler()

	r := httptest.NewRequest(http.MethodPost, "/api/bmi", strings.NewReader(`{"weight_kg": 70, "height_cm": 175}`))
	rr := httptest.NewRecorder()
	r.Body = http.MaxBytesReader(rr, r.Body, 8)
	h.Calculate(rr, r)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rr.Code)
	}
	if got := errorMessage(t, rr); got != ErrMsgInvalidBody {
		t.Fatalf("error: got %q", got)
	}
}

func TestHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	Health(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("got %d %s", rr.Code, rr.Body.String())
	}
}
