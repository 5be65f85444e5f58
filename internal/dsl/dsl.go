package dsl

import "encoding/json"

// Clause is a single filter expression in the engine's bool-filter vocabulary.
// Exactly one of Term, Terms, Range or Bool is set.
type Clause struct {
	Term  map[string]any   `json:"term,omitempty"`
	Terms map[string][]any `json:"terms,omitempty"`
	Range map[string]Range `json:"range,omitempty"`
	Bool  *Bool            `json:"bool,omitempty"`
}

// Bool is a compound clause. Must is a conjunction, Should a disjunction.
type Bool struct {
	Must   []Clause `json:"must,omitempty"`
	Should []Clause `json:"should,omitempty"`
}

// Range holds inclusive bounds. Values are emitted verbatim so they may be
// plain dates or date math expressions.
type Range struct {
	GTE string `json:"gte,omitempty"`
	LTE string `json:"lte,omitempty"`
}

// IsEmpty reports whether neither bound is set.
func (r Range) IsEmpty() bool { return r.GTE == "" && r.LTE == "" }

// Term matches a field against a single exact value.
func Term(field string, value any) Clause {
	return Clause{Term: map[string]any{field: value}}
}

// Terms matches a field against any of the given values.
// The values slice is copied.
func Terms[T any](field string, values ...T) Clause {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return Clause{Terms: map[string][]any{field: vs}}
}

// InRange matches a field against inclusive bounds.
func InRange(field string, r Range) Clause {
	return Clause{Range: map[string]Range{field: r}}
}

// Must wraps clauses in a bool conjunction.
func Must(clauses ...Clause) Clause {
	return Clause{Bool: &Bool{Must: clauses}}
}

// Should wraps clauses in a bool disjunction.
func Should(clauses ...Clause) Clause {
	return Clause{Bool: &Bool{Should: clauses}}
}

// Aggregation is a node of the aggregation tree: either a filter or a terms
// bucketing, with optional sub-aggregations.
type Aggregation struct {
	Filter *Clause                `json:"filter,omitempty"`
	Terms  *TermsAggregation      `json:"terms,omitempty"`
	Aggs   map[string]Aggregation `json:"aggs,omitempty"`
}

// TermsAggregation buckets documents by the values of Field.
// Size 0 asks for every bucket.
type TermsAggregation struct {
	Field string `json:"field"`
	Size  int    `json:"size"`
}

// Body is the request body of a search call.
type Body struct {
	Size int                    `json:"size"`
	Aggs map[string]Aggregation `json:"aggs"`
}

// Document is a complete search request: target dataset and body.
type Document struct {
	Index string `json:"index"`
	Type  string `json:"type"`
	Body  Body   `json:"body"`
}

// Filter returns the must-list of the named top-level filter aggregation,
// or nil if there is none.
func (d *Document) Filter(name string) []Clause {
	agg, ok := d.Body.Aggs[name]
	if !ok || agg.Filter == nil || agg.Filter.Bool == nil {
		return nil
	}
	return agg.Filter.Bool.Must
}

// String returns the compact JSON encoding of the document.
func (d *Document) String() string {
	b, err := json.Marshal(d)
	if err != nil {
		return "<invalid document: " + err.Error() + ">"
	}
	return string(b)
}
