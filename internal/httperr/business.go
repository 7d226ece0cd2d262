package httperr

import "errors"

// BusinessError is a request-rejecting condition raised below the handler
// layer (upload validation, domain rules). It carries the user-facing
// message; handlers map it to a 400.
type BusinessError struct {
	Message string
}

func (e BusinessError) Error() string {
	return e.Message
}

func ErrBusiness(message string) error {
	return BusinessError{Message: message}
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
