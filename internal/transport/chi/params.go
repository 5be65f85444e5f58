package chi

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/carequery/internal/domain/care"
)

// rawQueryParams mirrors the query string of GET /api/v1/queries/{kind}.
// Every field is optional.
type rawQueryParams struct {
	Location      *[]string
	StartDate     *string
	EndDate       *string
	LowerAgeLimit *int
	UpperAgeLimit *int
	Gender        *string
	Index         *string
	Type          *string
}

// bindQueryParams decodes form-style query parameters. location may be
// repeated or comma-separated.
func bindQueryParams(q url.Values) (*care.QueryParams, error) {
	var raw rawQueryParams
	bindings := []struct {
		name string
		dest any
	}{
		{"location", &raw.Location},
		{"startDate", &raw.StartDate},
		{"endDate", &raw.EndDate},
		{"lowerAgeLimit", &raw.LowerAgeLimit},
		{"upperAgeLimit", &raw.UpperAgeLimit},
		{"gender", &raw.Gender},
		{"index", &raw.Index},
		{"type", &raw.Type},
	}
	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, q, b.dest); err != nil {
			return nil, fmt.Errorf("invalid format for parameter %s: %w", b.name, err)
		}
	}

	p := &care.QueryParams{
		LowerAgeLimit: raw.LowerAgeLimit,
		UpperAgeLimit: raw.UpperAgeLimit,
		StartDate:     deref(raw.StartDate),
		EndDate:       deref(raw.EndDate),
		Gender:        deref(raw.Gender),
		Index:         deref(raw.Index),
		Type:          deref(raw.Type),
	}
	if raw.Location != nil {
		for _, v := range *raw.Location {
			for _, id := range strings.Split(v, ",") {
				p.Locations = append(p.Locations, strings.TrimSpace(id))
			}
		}
	}
	return p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
