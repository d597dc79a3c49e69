package cayennelpp

import (
	"errors"
	"fmt"
)

// Errors returned by Decode.
var (
	// ErrPayloadEmpty is returned when the given payload has zero length.
	ErrPayloadEmpty = errors.New("cayennelpp: payload is empty")

	// ErrUnexpected is returned on an internal invariant violation, e.g.
	// a custom type descriptor without a decode function. This should be
	// unreachable as long as the registry invariants hold.
	ErrUnexpected = errors.New("cayennelpp: unexpected internal state")
)

// UnknownDataTypeError is returned when the payload references a data type
// that is not present in the registry.
type UnknownDataTypeError struct {
	TypeID uint8
}

// Error implements the error interface.
func (e UnknownDataTypeError) Error() string {
	return fmt.Sprintf("cayennelpp: unknown data type 0x%02x", e.TypeID)
}

// BadPayloadFormatError is returned when the payload does not partition into
// complete (channel, type, data) frames.
type BadPayloadFormatError struct {
	Reason string
}

// Error implements the error interface.
func (e BadPayloadFormatError) Error() string {
	return fmt.Sprintf("cayennelpp: bad payload format: %s", e.Reason)
}
