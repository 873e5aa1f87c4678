package kernel

import (
	"strconv"

	"inspection/internal/pkg/errs"
)

// ErrIDIsNotAssigned indicates that an ID has not been assigned yet.
// The zero value of ID means "not persisted": new aggregates are created
// without an identifier and receive one from the storage adapter exactly
// once, when they are first saved.
var ErrIDIsNotAssigned = errs.NewValueIsRequiredError("ID must be assigned by storage or created via NewID")

// ID is a value object wrapping the integer identity used by all aggregates.
// Identifiers are generated by the persistence layer on creation and are
// never reused. ID is immutable and safe for concurrent use.
//
// Example usage:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    // handle invalid identifier
//	}
//	fmt.Println(id.String()) // "42"
type ID struct {
	value int64
}

// NewID creates an ID from a known, positive integer value.
// Used when reconstructing aggregates from persistence or when parsing
// identifiers received from external callers.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidError("id")
	}
	return ID{value: value}, nil
}

// Value returns the raw integer value of the identifier.
func (i ID) Value() int64 {
	return i.value
}

// String returns the decimal representation of the identifier.
// The zero value renders as "0".
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// IsEqual compares two identifiers by value.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// IsAssigned reports whether the identifier has been assigned.
func (i ID) IsAssigned() bool {
	return i.value > 0
}

// Validate returns ErrIDIsNotAssigned for a zero-value identifier.
func (i ID) Validate() error {
	if !i.IsAssigned() {
		return ErrIDIsNotAssigned
	}
	return nil
}
