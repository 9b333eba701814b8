package router

import (
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/yusufkecer/bmi-calculator-backend/internal/docs"
	"github.com/yusufkecer/bmi-calculator-backend/internal/handler"
	"github.com/yusufkecer/bmi-calculator-backend/internal/metrics"
	"github.com/yusufkecer/bmi-calculator-backend/internal/middleware"
	"github.com/yusufkecer/bmi-calculator-backend/internal/service"
	"github.com/yusufkecer/bmi-calculator-backend/internal/web"
)

const maxBodyBytes = 1 << 20

type Options struct {
	AllowedOrigins []string
	Logger         *slog.Logger
	Metrics        *metrics.Registry
}

func New(opts Options) http.Handler {
	return newRouter(opts)
}

func newRouter(opts Options) *mux.Router {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	reg := opts.Metrics
	if reg == nil {
		reg = metrics.New()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	bmiHandler := handler.NewBMIHandler(service.NewBMIService(), reg, logger)

	r := mux.NewRouter()

	// RealIP → RequestID → AccessLog → Recoverer → CORS → Security headers → body limit
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(logger, reg))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORSMiddleware(origins))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	r.HandleFunc("/", web.Index).Methods(http.MethodGet)
	r.HandleFunc("/api/health", handler.Health).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/bmi", bmiHandler.Calculate).Methods(http.MethodPost, http.MethodOptions)
	r.Handle("/metrics", reg).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler).Methods(http.MethodGet)

	return r
}
