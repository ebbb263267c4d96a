package slots

import "errors"

var (
	ErrMissingTrigger       = errors.New("invalid_trigger is required")
	ErrMissingKey           = errors.New("key is required")
	ErrMalformedValueRecord = errors.New("value record has no value")
	ErrConstraintBinding    = errors.New("cannot bind variable to constraint")
	ErrConstraintParse      = errors.New("constraint is not a valid expression")
	ErrConstraintNotBoolean = errors.New("constraint did not evaluate to a boolean")
	ErrConstraintEvaluation = errors.New("constraint evaluation failed")
)

// IsConfigError reports whether err is one of the engine's configuration
// errors, as opposed to an unexpected failure.
func IsConfigError(err error) bool {
	for _, target := range []error{
		ErrMissingTrigger,
		ErrMissingKey,
		ErrMalformedValueRecord,
		ErrConstraintBinding,
		ErrConstraintParse,
		ErrConstraintNotBoolean,
		ErrConstraintEvaluation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
