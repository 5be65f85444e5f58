package query

// Dataset fields referenced by the reporting queries.
const (
	fieldEncounterType = "encounter_type"
	fieldVoided        = "voided"
	fieldObsDatetime   = "obs_datetime"
	fieldBirthdate     = "birthdate"
	fieldLocationID    = "location_id"
	fieldGender        = "gender"
	fieldConceptID     = "concept_id"
	fieldValueCoded    = "value_coded"
	fieldPersonUUID    = "person_uuid"
	fieldPersonID      = "person_id"
)

// Aggregation names, one per query kind.
const (
	aggEnrolled    = "enrolled"
	aggActive      = "active"
	aggTransferOut = "transferOut"
)

// Concepts identifying a transfer out of care.
const (
	conceptTransferPlan = 1946
	answerYes           = 1065
	conceptExitReason   = 1596
	conceptTransferCare = 1285
)

// activeWindow is the lookback of the active-in-care period.
const activeWindow = 3
