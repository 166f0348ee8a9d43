package Trees

// InvalidIteratorError is the panic value for dereferencing, advancing, or
// erasing through an iterator that is unbound, at the end position, or bound
// to a different tree. Op names the offending operation.
type InvalidIteratorError struct {
	Op string
}

func (e *InvalidIteratorError) Error() string {
	return "Trees: invalid iterator operation " + e.Op
}
