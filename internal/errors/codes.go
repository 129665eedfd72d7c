package errors

// Code classifies an error. Every code has a gRPC counterpart so the
// classification survives a status round trip.
type Code string

// Error codes raised by the progression packages
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Rejection reports whether the code means a progression rule refused the
// operation, as opposed to bad input or a broken store
func (c Code) Rejection() bool {
	switch c {
	case CodeAlreadyExists, CodeResourceExhausted, CodeFailedPrecondition:
		return true
	default:
		return false
	}
}
