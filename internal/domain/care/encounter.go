package care

// EncounterType is a coded category of clinical visit.
type EncounterType int

// Encounter type codes of the source dataset.
const (
	AdultInitial     EncounterType = 1
	AdultReturn      EncounterType = 2
	PediatricInitial EncounterType = 3
	PediatricReturn  EncounterType = 4
)

// InitialEncounters returns the visit kinds that mark enrollment.
// A new slice is returned on every call.
func InitialEncounters() []EncounterType {
	return []EncounterType{AdultInitial, PediatricInitial}
}

// AllEncounters returns every known visit kind.
// A new slice is returned on every call.
func AllEncounters() []EncounterType {
	return []EncounterType{AdultInitial, AdultReturn, PediatricInitial, PediatricReturn}
}
