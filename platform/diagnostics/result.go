package diagnostics

// Result is an ordered collection of error messages produced by a compiler.
// Valid indices for GetAtIndex are 0 <= i < Size().
type Result interface {
	// Size returns the number of messages in the collection.
	Size() int

	// GetAtIndex returns the message at position i. Out of range access panics.
	GetAtIndex(i int) string
}
