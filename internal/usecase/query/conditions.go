package query

import (
	"github.com/kailas-cloud/carequery/internal/domain/care"
	"github.com/kailas-cloud/carequery/internal/dsl"
)

// conditions is the growing must-list of one query.
// Every handler tolerates nil params and appends at most one clause.
type conditions struct {
	must []dsl.Clause
}

func newConditions(base ...dsl.Clause) *conditions {
	return &conditions{must: base}
}

func (c *conditions) add(clause dsl.Clause) {
	c.must = append(c.must, clause)
}

// period bounds obs_datetime by StartDate and EndDate, each independently.
func (c *conditions) period(p *care.QueryParams) {
	if p == nil {
		return
	}
	r := dsl.Range{GTE: p.StartDate, LTE: p.EndDate}
	if r.IsEmpty() {
		return
	}
	c.add(dsl.InRange(fieldObsDatetime, r))
}

// activePeriod always bounds obs_datetime: a window ending at EndDate, or
// ending now when EndDate is absent. StartDate is ignored.
// The relative default is "now-3m" (engine minutes), the anchored one "||-3M" (months).
func (c *conditions) activePeriod(p *care.QueryParams) {
	r := dsl.Range{GTE: dsl.NowMinus(activeWindow, dsl.Minutes), LTE: dsl.Now}
	if p != nil && p.EndDate != "" {
		r = dsl.Range{GTE: dsl.DateMinus(p.EndDate, activeWindow, dsl.Months), LTE: p.EndDate}
	}
	c.add(dsl.InRange(fieldObsDatetime, r))
}

// age turns age limits into a birthdate range relative to EndDate or now.
// The lower age limit yields the upper birthdate bound and vice versa.
func (c *conditions) age(p *care.QueryParams) {
	var r dsl.Range
	if p.HasLowerAge() {
		r.LTE = yearsBefore(p.EndDate, *p.LowerAgeLimit)
	}
	if p.HasUpperAge() {
		r.GTE = yearsBefore(p.EndDate, *p.UpperAgeLimit)
	}
	if r.IsEmpty() {
		return
	}
	c.add(dsl.InRange(fieldBirthdate, r))
}

func (c *conditions) location(p *care.QueryParams) {
	if p == nil || len(p.Locations) == 0 {
		return
	}
	c.add(dsl.Terms(fieldLocationID, p.Locations...))
}

func (c *conditions) gender(p *care.QueryParams) {
	if p == nil || p.Gender == "" {
		return
	}
	c.add(dsl.Term(fieldGender, p.Gender))
}

// build wraps the must-list into a filter aggregation bucketed by field.
func (c *conditions) build(p *care.QueryParams, name, bucket string) *dsl.Document {
	return dsl.NewQuery(p.IndexOrDefault(), p.TypeOrDefault()).
		Aggregation(name).
		Must(c.must...).
		BucketBy(bucket).
		MustBuild()
}

func yearsBefore(anchor string, n int) string {
	if anchor == "" {
		return dsl.NowMinus(n, dsl.Years)
	}
	return dsl.DateMinus(anchor, n, dsl.Years)
}
