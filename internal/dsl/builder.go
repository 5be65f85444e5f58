package dsl

import "fmt"

// bucketsName is the sub-aggregation that groups filtered records.
const bucketsName = "patients"

// QueryBuilder is a fluent builder for a filtered terms-bucket aggregation:
// filter records by a must-list, then bucket survivors by one field.
type QueryBuilder struct {
	index  string
	typ    string
	name   string
	bucket string
	must   []Clause
}

// NewQuery starts building a query against the given index and type.
func NewQuery(index, typ string) *QueryBuilder {
	return &QueryBuilder{index: index, typ: typ}
}

// Aggregation sets the name of the top-level filter aggregation.
func (b *QueryBuilder) Aggregation(name string) *QueryBuilder {
	b.name = name
	return b
}

// Must appends clauses to the filter's must-list.
func (b *QueryBuilder) Must(clauses ...Clause) *QueryBuilder {
	b.must = append(b.must, clauses...)
	return b
}

// BucketBy sets the field the filtered records are grouped by.
func (b *QueryBuilder) BucketBy(field string) *QueryBuilder {
	b.bucket = field
	return b
}

// Build validates and returns the query document.
func (b *QueryBuilder) Build() (*Document, error) {
	switch {
	case b.index == "":
		return nil, fmt.Errorf("%w: index is required", ErrInvalidQuery)
	case b.typ == "":
		return nil, fmt.Errorf("%w: type is required", ErrInvalidQuery)
	case b.name == "":
		return nil, fmt.Errorf("%w: aggregation name is required", ErrInvalidQuery)
	case b.bucket == "":
		return nil, fmt.Errorf("%w: bucket field is required", ErrInvalidQuery)
	}

	must := make([]Clause, len(b.must))
	copy(must, b.must)
	filter := Must(must...)

	return &Document{
		Index: b.index,
		Type:  b.typ,
		Body: Body{
			Size: 0,
			Aggs: map[string]Aggregation{
				b.name: {
					Filter: &filter,
					Aggs: map[string]Aggregation{
						bucketsName: {Terms: &TermsAggregation{Field: b.bucket, Size: 0}},
					},
				},
			},
		},
	}, nil
}

// MustBuild calls Build and panics on error.
func (b *QueryBuilder) MustBuild() *Document {
	doc, err := b.Build()
	if err != nil {
		panic(err)
	}
	return doc
}
