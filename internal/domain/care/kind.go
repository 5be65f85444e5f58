package care

// Kind names a reporting query.
type Kind string

// Query kinds.
const (
	Enrolled    Kind = "enrolled"
	Active      Kind = "active"
	TransferOut Kind = "transfer-out"
)

// Kinds returns all supported kinds in a stable order.
func Kinds() []Kind {
	return []Kind{Enrolled, Active, TransferOut}
}

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k == Enrolled || k == Active || k == TransferOut
}
