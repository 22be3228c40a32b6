package models

// Value is a sparse update descriptor for a configuration value: each field
// is either present or absent, and only present fields make it onto the wire.
// Setting a value and flipping its protect bit are therefore independent
// operations that can also be combined in a single request. The zero Value
// serializes to an empty JSON object, which the service accepts as a no-op.
type Value struct {
	// Value is the new content for the entry, or nil to leave it untouched.
	Value *string `json:"value,omitempty"`
	// Protect is the new protect bit for the entry, or nil to leave it
	// untouched. An explicit false is sent on the wire; only nil is omitted.
	Protect *bool `json:"protect,omitempty"`
}

// NewValue returns a descriptor that sets only the entry's content.
func NewValue(value string) Value {
	return Value{Value: &value}
}

// NewProtect returns a descriptor that sets only the entry's protect bit.
func NewProtect(protect bool) Value {
	return Value{Protect: &protect}
}

// NewValueProtect returns a descriptor that sets both the content and the
// protect bit in one request.
func NewValueProtect(value string, protect bool) Value {
	return Value{Value: &value, Protect: &protect}
}
