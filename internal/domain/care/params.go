package care

import "time"

// Dataset defaults used when QueryParams leaves Index or Type empty.
const (
	DefaultIndex = "amrs"
	DefaultType  = "obs"
)

// Gender codes accepted by Validate.
const (
	Male   = "M"
	Female = "F"
)

// QueryParams are the optional filters of a reporting query.
//
// The zero value imposes no constraint. Strings are absent when empty and
// age limits when nil or zero. Dates are passed to the engine verbatim.
type QueryParams struct {
	// Locations restricts to one or more location ids.
	Locations []string
	// StartDate and EndDate bound the reporting period.
	StartDate string
	EndDate   string
	// LowerAgeLimit and UpperAgeLimit bound the age group in years, inclusive.
	LowerAgeLimit *int
	UpperAgeLimit *int
	Gender        string
	// Index and Type select the dataset; DefaultIndex and DefaultType apply when empty.
	Index string
	Type  string
}

// Years returns a pointer to n, for use as an age limit.
func Years(n int) *int { return &n }

// IndexOrDefault returns Index, or DefaultIndex when unset.
func (p *QueryParams) IndexOrDefault() string {
	if p == nil || p.Index == "" {
		return DefaultIndex
	}
	return p.Index
}

// TypeOrDefault returns Type, or DefaultType when unset.
func (p *QueryParams) TypeOrDefault() string {
	if p == nil || p.Type == "" {
		return DefaultType
	}
	return p.Type
}

// HasLowerAge reports whether a non-zero lower age limit is set.
func (p *QueryParams) HasLowerAge() bool {
	return p != nil && p.LowerAgeLimit != nil && *p.LowerAgeLimit != 0
}

// HasUpperAge reports whether a non-zero upper age limit is set.
func (p *QueryParams) HasUpperAge() bool {
	return p != nil && p.UpperAgeLimit != nil && *p.UpperAgeLimit != 0
}

// Validate checks values that the query builders pass through unchecked.
// Builders never call it; callers at the edge do.
func (p *QueryParams) Validate() error {
	if p == nil {
		return nil
	}
	if err := validateDate("startDate", p.StartDate); err != nil {
		return err
	}
	if err := validateDate("endDate", p.EndDate); err != nil {
		return err
	}
	if p.LowerAgeLimit != nil && *p.LowerAgeLimit < 0 {
		return invalid("lowerAgeLimit", "must be non-negative, got %d", *p.LowerAgeLimit)
	}
	if p.UpperAgeLimit != nil && *p.UpperAgeLimit < 0 {
		return invalid("upperAgeLimit", "must be non-negative, got %d", *p.UpperAgeLimit)
	}
	if p.HasLowerAge() && p.HasUpperAge() && *p.LowerAgeLimit > *p.UpperAgeLimit {
		return invalid("lowerAgeLimit", "must not exceed upperAgeLimit (%d > %d)",
			*p.LowerAgeLimit, *p.UpperAgeLimit)
	}
	for i, loc := range p.Locations {
		if loc == "" {
			return invalid("location", "entry %d is empty", i)
		}
	}
	switch p.Gender {
	case "", Male, Female:
	default:
		return invalid("gender", "must be %q or %q, got %q", Male, Female, p.Gender)
	}
	return nil
}

// validateDate accepts a calendar date or an RFC 3339 timestamp.
func validateDate(field, v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, v); err == nil {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, v); err == nil {
		return nil
	}
	return invalid(field, "expected YYYY-MM-DD or RFC 3339, got %q", v)
}
