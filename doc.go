// Package carequery builds search-engine aggregation queries for
// clinical-care reporting: patients enrolled in care, active in care and
// transferred out.
//
// Every builder is a pure function of its QueryParams. It returns a fresh
// Document with a zero-size hit window and a filter aggregation that
// buckets matching records by patient. Nothing is executed.
//
//	doc := carequery.EnrolledInCareQuery(&carequery.QueryParams{
//	    StartDate:     "2020-01-01",
//	    EndDate:       "2020-06-01",
//	    LowerAgeLimit: carequery.Years(15),
//	    Locations:     []string{"13"},
//	})
//	body, _ := json.Marshal(doc.Body)
//
// Builders pass values through unchecked. Build validates first:
//
//	doc, err := carequery.Build(ctx, carequery.Active, params)
//	if errors.Is(err, carequery.ErrInvalidParams) { ... }
package carequery
