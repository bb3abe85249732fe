package config

// constError is a string type for immutable sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors.
const (
	ErrUnknownKey          constError = "unknown config key"
	ErrIncompatibleVersion constError = "incompatible config version"
	ErrInvalidValue        constError = "invalid config value"
)
