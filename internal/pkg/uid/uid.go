// Package uid provides ID generators with numeric and string forms.
package uid

// NumberID generates unique numeric IDs.
type NumberID interface {
	Generate() int64
}

// StringID generates unique string IDs.
type StringID interface {
	Generate() string
}
