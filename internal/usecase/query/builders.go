package query

import (
	"github.com/kailas-cloud/carequery/internal/domain/care"
	"github.com/kailas-cloud/carequery/internal/dsl"
)

// EnrolledInCareQuery counts patients with an initial visit, bucketed by person_uuid.
// Optional clauses follow the base filter in the order age, period, location, gender.
func EnrolledInCareQuery(p *care.QueryParams) *dsl.Document {
	c := newConditions(
		dsl.Terms(fieldEncounterType, care.InitialEncounters()...),
		dsl.Term(fieldVoided, false),
	)
	c.age(p)
	c.period(p)
	c.location(p)
	c.gender(p)
	return c.build(p, aggEnrolled, fieldPersonUUID)
}

// ActiveInCareQuery counts patients with any visit in the trailing window,
// bucketed by person_uuid. The period clause is always present and comes last.
func ActiveInCareQuery(p *care.QueryParams) *dsl.Document {
	c := newConditions(
		dsl.Terms(fieldEncounterType, care.AllEncounters()...),
		dsl.Term(fieldVoided, false),
	)
	c.age(p)
	c.location(p)
	c.gender(p)
	c.activePeriod(p)
	return c.build(p, aggActive, fieldPersonUUID)
}

// TransferOutQuery counts patients recorded as transferred out, bucketed by person_id.
func TransferOutQuery(p *care.QueryParams) *dsl.Document {
	c := newConditions(
		dsl.Should(
			dsl.Must(
				dsl.Term(fieldConceptID, conceptTransferPlan),
				dsl.Terms(fieldValueCoded, answerYes),
			),
			dsl.Terms(fieldConceptID, conceptExitReason, conceptTransferCare),
		),
	)
	c.age(p)
	c.location(p)
	c.period(p)
	c.gender(p)
	return c.build(p, aggTransferOut, fieldPersonID)
}
