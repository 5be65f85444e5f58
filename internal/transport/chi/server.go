package chi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/carequery/internal/domain/care"
	"github.com/kailas-cloud/carequery/internal/dsl"
	"github.com/kailas-cloud/carequery/internal/version"
)

// defaultMaxLocations caps location ids per request when unset.
const defaultMaxLocations = 100

// QueryBuilder builds reporting query documents by kind.
type QueryBuilder interface {
	Build(ctx context.Context, kind care.Kind, p *care.QueryParams) (*dsl.Document, error)
	Kinds() []care.Kind
}

// Server serves the reporting query API.
type Server struct {
	queries       QueryBuilder
	logger        *zap.Logger
	maxLocations  int
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(queries QueryBuilder, logger *zap.Logger) *Server {
	return &Server{
		queries:       queries,
		logger:        logger,
		maxLocations:  defaultMaxLocations,
		errorHandlers: defaultErrorHandlers(),
	}
}

// WithMaxLocations sets the maximum number of location ids per request.
func (s *Server) WithMaxLocations(n int) *Server {
	if n > 0 {
		s.maxLocations = n
	}
	return s
}

// Routes registers the API routes on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/api/v1/queries", func(r chi.Router) {
		r.Get("/", s.ListQueryKinds)
		r.Get("/{kind}", s.BuildQuery)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed")
	})
}

// KindsResponse lists the supported query kinds.
type KindsResponse struct {
	Kinds []care.Kind `json:"kinds"`
}

// ListQueryKinds handles GET /api/v1/queries.
func (s *Server) ListQueryKinds(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, KindsResponse{Kinds: s.queries.Kinds()})
}

// BuildQuery handles GET /api/v1/queries/{kind}.
func (s *Server) BuildQuery(w http.ResponseWriter, r *http.Request) {
	kind := care.Kind(chi.URLParam(r, "kind"))
	if !kind.IsValid() {
		s.handleDomainError(w, fmt.Errorf("%w: %q", care.ErrUnknownKind, kind))
		return
	}

	params, err := bindQueryParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}
	if len(params.Locations) > s.maxLocations {
		writeError(w, http.StatusBadRequest, CodeValidationFailed,
			fmt.Sprintf("too many locations (max %d)", s.maxLocations))
		return
	}
	if err := params.Validate(); err != nil {
		s.handleDomainError(w, err)
		return
	}

	doc, err := s.queries.Build(r.Context(), kind, params)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string       `json:"status"`
	Build  version.Info `json:"build"`
}

// HealthCheck handles GET /health. The service has no downstream
// dependencies, so it is healthy whenever it can answer.
func (s *Server) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Build: version.Get()})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
