package query

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/carequery/internal/domain/care"
	"github.com/kailas-cloud/carequery/internal/dsl"
	logpkg "github.com/kailas-cloud/carequery/internal/logger"
	"github.com/kailas-cloud/carequery/internal/metrics"
)

// BuildFunc builds one kind of reporting query.
type BuildFunc func(p *care.QueryParams) *dsl.Document

// Service builds reporting queries by kind.
type Service struct {
	builders     map[care.Kind]BuildFunc
	defaultIndex string
	defaultType  string
}

// New creates a Service serving every kind in care.Kinds.
func New() *Service {
	return &Service{
		builders: map[care.Kind]BuildFunc{
			care.Enrolled:    EnrolledInCareQuery,
			care.Active:      ActiveInCareQuery,
			care.TransferOut: TransferOutQuery,
		},
	}
}

// WithDefaults overrides the dataset used when params leave index or type empty.
// Empty arguments keep care.DefaultIndex and care.DefaultType.
func (s *Service) WithDefaults(index, typ string) *Service {
	s.defaultIndex = index
	s.defaultType = typ
	return s
}

// Kinds returns the supported query kinds.
func (s *Service) Kinds() []care.Kind {
	return care.Kinds()
}

// Build returns the query document for kind. The caller's params are not modified.
func (s *Service) Build(ctx context.Context, kind care.Kind, p *care.QueryParams) (*dsl.Document, error) {
	build, ok := s.builders[kind]
	if !ok {
		metrics.QueriesBuiltTotal.WithLabelValues("unknown", "error").Inc()
		return nil, fmt.Errorf("%w: %q", care.ErrUnknownKind, kind)
	}

	start := time.Now()
	doc := build(s.withDefaults(p))
	duration := time.Since(start)

	clauses := len(doc.Filter(aggregationName(kind)))
	metrics.QueriesBuiltTotal.WithLabelValues(string(kind), "ok").Inc()
	metrics.QueryClauses.WithLabelValues(string(kind)).Observe(float64(clauses))

	logpkg.FromContext(ctx).Debug("Query built",
		zap.String("kind", string(kind)),
		zap.String("index", doc.Index),
		zap.String("type", doc.Type),
		zap.Int("clauses", clauses),
		zap.Duration("duration", duration),
		zap.Stringer("query", doc),
	)
	return doc, nil
}

func (s *Service) withDefaults(p *care.QueryParams) *care.QueryParams {
	if s.defaultIndex == "" && s.defaultType == "" {
		return p
	}
	var cp care.QueryParams
	if p != nil {
		cp = *p
	}
	if cp.Index == "" {
		cp.Index = s.defaultIndex
	}
	if cp.Type == "" {
		cp.Type = s.defaultType
	}
	return &cp
}

func aggregationName(kind care.Kind) string {
	switch kind {
	case care.Active:
		return aggActive
	case care.TransferOut:
		return aggTransferOut
	default:
		return aggEnrolled
	}
}
