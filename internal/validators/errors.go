package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownParser     = errors.New("unknown validation parser")
	ErrParserMismatch    = errors.New("validation_parser does not match the endpoint")
	ErrPickFirstConflict = errors.New("pick_first and support_multiple must differ")
	ErrSchemaViolation   = errors.New("JSON validation failed. Check logs...")
	ErrMalformedJSON     = errors.New("malformed JSON")
)

// IsRequestError reports whether err was caused by the payload itself and
// should be answered as a bad request.
func IsRequestError(err error) bool {
	for _, target := range []error{
		ErrUnknownParser,
		ErrParserMismatch,
		ErrPickFirstConflict,
		ErrSchemaViolation,
		ErrMalformedJSON,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
