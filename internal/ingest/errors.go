package ingest

// constError is a string type for immutable sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

const (
	// ErrInvalidAssignment is returned for a malformed activity=quantity pair.
	ErrInvalidAssignment constError = "invalid assignment"

	// ErrInvalidObservations is returned when an observation file has the
	// wrong shape.
	ErrInvalidObservations constError = "invalid observations file"
)
