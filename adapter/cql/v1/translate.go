package v1

import (
	"errors"

	"github.com/gocql/gocql"

	"github.com/dileepthomas86/spring-data-cassandra/types"
)

// Translate maps a gocql v1 error to an error category sentinel from the
// types package, or nil when the error carries no server error code.
//
// Parameters:
//   - err: The error returned by gocql
//
// Returns:
//   - error: The matching category sentinel, or nil if uncategorized
func Translate(err error) error {
	var reqErr gocql.RequestError
	if !errors.As(err, &reqErr) {
		return nil
	}

	switch reqErr.Code() {
	case gocql.ErrCodeReadTimeout:
		return types.ErrReadTimeout
	case gocql.ErrCodeWriteTimeout:
		return types.ErrWriteTimeout
	case gocql.ErrCodeUnavailable:
		return types.ErrUnavailable
	case gocql.ErrCodeOverloaded:
		return types.ErrOverloaded
	case gocql.ErrCodeTruncate:
		return types.ErrTruncateFailed
	case gocql.ErrCodeSyntax, gocql.ErrCodeInvalid:
		return types.ErrInvalidQuery
	case gocql.ErrCodeUnauthorized:
		return types.ErrUnauthorized
	case gocql.ErrCodeAlreadyExists:
		return types.ErrAlreadyExists
	default:
		return nil
	}
}

// ErrorTranslator returns a translator for gocql v1 errors, suitable for the
// template's WithErrorTranslator option.
func ErrorTranslator() types.ErrorTranslator {
	return types.ErrorTranslatorFunc(Translate)
}
