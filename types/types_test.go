package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDataAccessError_Error(t *testing.T) {
	cause := errors.New("connection timeout")
	err := &DataAccessError{
		Task:     "Execute",
		CQL:      "INSERT INTO users (id) VALUES (?)",
		Category: ErrWriteTimeout,
		Cause:    cause,
	}

	require.Contains(t, err.Error(), "Execute")
	require.Contains(t, err.Error(), "INSERT INTO users (id) VALUES (?)")
	require.Contains(t, err.Error(), "connection timeout")
}

func TestDataAccessError_ErrorWithoutCQL(t *testing.T) {
	err := &DataAccessError{Task: "Prepare", Cause: errors.New("boom")}

	require.NotContains(t, err.Error(), "[")
	require.Contains(t, err.Error(), "Prepare failed: boom")
}

func TestDataAccessError_Unwrap(t *testing.T) {
	cause := errors.New("unavailable")
	err := &DataAccessError{
		Task:     "QueryForMap",
		CQL:      "SELECT * FROM users",
		Category: ErrUnavailable,
		Cause:    cause,
	}

	require.True(t, errors.Is(err, ErrUnavailable))
	require.True(t, errors.Is(err, cause))
	require.False(t, errors.Is(err, ErrReadTimeout))
}

func TestDataAccessError_UnwrapUncategorized(t *testing.T) {
	cause := errors.New("gone fishing")
	err := &DataAccessError{Task: "Execute", Cause: cause}

	require.True(t, errors.Is(err, cause))
	require.False(t, errors.Is(err, ErrUnavailable))
}

func TestSentinelMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrReadTimeout", ErrReadTimeout, "read timeout"},
		{"ErrWriteTimeout", ErrWriteTimeout, "write timeout"},
		{"ErrUnavailable", ErrUnavailable, "not enough replicas available"},
		{"ErrNilSession", ErrNilSession, "session cannot be nil"},
		{"ErrEmptyCQL", ErrEmptyCQL, "statement cannot be empty"},
		{"ErrMissingID", ErrMissingID, "entity id cannot be resolved"},
		{"ErrNoResults", ErrNoResults, "query returned no results"},
		{"ErrTooManyResults", ErrTooManyResults, "query returned more than one result"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Contains(t, tt.err.Error(), tt.msg)
			require.Contains(t, tt.err.Error(), "cassandra: ")
		})
	}
}

func TestErrorTranslatorFunc(t *testing.T) {
	translator := ErrorTranslatorFunc(func(err error) error {
		return ErrInvalidQuery
	})

	require.Equal(t, ErrInvalidQuery, translator.Translate(errors.New("syntax error")))
}

func TestConsistencyString(t *testing.T) {
	require.Equal(t, "QUORUM", Quorum.String())
	require.Equal(t, "LOCAL_QUORUM", LocalQuorum.String())
	require.Equal(t, "LOCAL_SERIAL", LocalSerial.String())
	require.Equal(t, "UNKNOWN", Consistency(0xFF).String())
}
