package emissions

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
var (
	// ErrUnknownActivity indicates an activity name or ID that is not in the catalog.
	ErrUnknownActivity = constError("unknown activity")

	// ErrUnknownCategory indicates an unrecognized category key.
	ErrUnknownCategory = constError("unknown category")

	// ErrDuplicateActivity indicates the same activity ID was defined or assigned twice.
	ErrDuplicateActivity = constError("duplicate activity")

	// ErrUnassignedActivity indicates a defined activity that belongs to no category.
	ErrUnassignedActivity = constError("activity not assigned to a category")

	// ErrUnregisteredMember indicates a category member with no conversion defined.
	ErrUnregisteredMember = constError("category member has no conversion")

	// ErrInvalidDefinition indicates a definition with a missing ID, name or conversion.
	ErrInvalidDefinition = constError("invalid activity definition")
)
