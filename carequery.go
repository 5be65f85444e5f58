package carequery

import (
	"context"

	"github.com/kailas-cloud/carequery/internal/domain/care"
	"github.com/kailas-cloud/carequery/internal/dsl"
	queryuc "github.com/kailas-cloud/carequery/internal/usecase/query"
)

// QueryParams are the optional filters of a reporting query.
type QueryParams = care.QueryParams

// Document is a search request: target dataset plus aggregation body.
type Document = dsl.Document

// Kind names a reporting query.
type Kind = care.Kind

// Query kinds.
const (
	Enrolled    = care.Enrolled
	Active      = care.Active
	TransferOut = care.TransferOut
)

// Dataset defaults.
const (
	DefaultIndex = care.DefaultIndex
	DefaultType  = care.DefaultType
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrUnknownKind   = care.ErrUnknownKind
	ErrInvalidParams = care.ErrInvalidParams
)

// Years returns a pointer to n, for use as QueryParams.LowerAgeLimit or UpperAgeLimit.
func Years(n int) *int { return care.Years(n) }

// EnrolledInCareQuery builds the enrolled-in-care query. p may be nil.
func EnrolledInCareQuery(p *QueryParams) *Document { return queryuc.EnrolledInCareQuery(p) }

// ActiveInCareQuery builds the active-in-care query. p may be nil.
func ActiveInCareQuery(p *QueryParams) *Document { return queryuc.ActiveInCareQuery(p) }

// TransferOutQuery builds the transfer-out query. p may be nil.
func TransferOutQuery(p *QueryParams) *Document { return queryuc.TransferOutQuery(p) }

// Build validates p and builds the query of the given kind.
func Build(ctx context.Context, kind Kind, p *QueryParams) (*Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return queryuc.New().Build(ctx, kind, p)
}
