package order

// InvalidOrderError signals a rejected order submission.
type InvalidOrderError struct {
	Message string
}

func (e *InvalidOrderError) Error() string {
	return e.Message
}

func newInvalidOrderError(msg string) error {
	return &InvalidOrderError{Message: msg}
}
