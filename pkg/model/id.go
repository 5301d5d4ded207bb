package model

import "github.com/google/uuid"

// ElementID is the opaque identity every Element and Relationship carries.
// It is a value type: two ElementIDs with the same underlying UUID refer to
// the same graph node, and the zero value is never a valid live identity.
type ElementID uuid.UUID

// NilElementID is the zero value, used as a sentinel for "no reference".
var NilElementID = ElementID(uuid.Nil)

// NewElementID returns a freshly generated random identity.
func NewElementID() ElementID {
	return ElementID(uuid.New())
}

// IsNil reports whether id is the zero identity.
func (id ElementID) IsNil() bool {
	return id == NilElementID
}

// String renders the identity in canonical UUID form.
func (id ElementID) String() string {
	return uuid.UUID(id).String()
}

// ParseElementID parses the canonical string form produced by String.
func ParseElementID(s string) (ElementID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NilElementID, err
	}
	return ElementID(u), nil
}

// MarshalText implements encoding.TextMarshaler so ElementID round-trips
// through JSON as a plain string rather than a byte array.
func (id ElementID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ElementID) UnmarshalText(text []byte) error {
	parsed, err := ParseElementID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
