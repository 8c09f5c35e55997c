package eratos

type Error struct {
	Type    ErrorType
	Message string
	Base    error
}

func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Base != nil {
		return e.Base.Error()
	}
	return "eratos - no error message"
}

func (e Error) Unwrap() error { return e.Base }

type ErrorType byte

const (
	ErrUnknown ErrorType = iota
	ErrInternal
	ErrInvalidQuery
	ErrNotFound
)

func newDerivedError(t ErrorType, base error) error {
	return Error{Type: t, Message: base.Error(), Base: base}
}

func newSimpleError(t ErrorType, msg string) error {
	return Error{Type: t, Message: msg}
}
