package update

import "errors"

var (
	ErrUpdateNotFound        = errors.New("update not found")
	ErrCommentAuthorRequired = errors.New("you must provide a comment author")
	ErrCommentEmpty          = errors.New("you must provide either some text or feedback")
	ErrMixedContentTypes     = errors.New("all builds of an update must share one content type")
	ErrNoBuilds              = errors.New("an update needs at least one build")
)

// LockedUpdateError rejects a mutation of an update that belongs to an active compose.
type LockedUpdateError struct {
	Msg string
}

func (e *LockedUpdateError) Error() string {
	if e.Msg == "" {
		return "update is locked"
	}
	return e.Msg
}

// ValidationError is a rejected transition. Msg is shown to users verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func Locked(msg string) error {
	return &LockedUpdateError{Msg: msg}
}

func Invalid(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsLocked(err error) bool {
	var le *LockedUpdateError
	return errors.As(err, &le)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
