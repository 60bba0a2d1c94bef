package error

// Coded is a domain failure with a code the HTTP layer maps to a status.
// Every domain instantiates it with its own code type, so errors.As on a
// *Coded[ExpenseErrorCode] never matches a category failure.
type Coded[C ~string] struct {
	Code    C
	Message string
	Err     error
}

func (e *Coded[C]) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Coded[C]) Unwrap() error {
	return e.Err
}
