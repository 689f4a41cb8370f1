package services

// ValidationError indicates a required field is missing or malformed at the
// boundary of a mutating operation. Controllers map it to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// PreconditionError indicates a lifecycle rule was violated, e.g. finalizing
// a submission with no submitted reviews. Controllers map it to HTTP 409.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string { return e.Message }

// NotFoundError indicates a referenced submission or review does not exist.
// Controllers map it to HTTP 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }
