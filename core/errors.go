package core

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

// ErrorInvalidArgument is returned when a request fails validation.
// The message is shown to the caller as is.
type ErrorInvalidArgument struct {
	Message string
}

func (e ErrorInvalidArgument) Error() string {
	return e.Message
}

func (e ErrorInvalidArgument) Is(target error) bool {
	_, ok := target.(ErrorInvalidArgument)
	return ok
}

func NewErrorInvalidArgument(message string) ErrorInvalidArgument {
	return ErrorInvalidArgument{Message: message}
}
