package enumerator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MessageContract(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")
	err := wrapErr("ListInstances", msgInstances, cause)

	// Error() is only the fixed message; the cause travels via Unwrap.
	assert.Equal(t, "Cannot get instances for named account", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.ErrorIs(t, err, cause)
}

func TestError_String(t *testing.T) {
	cause := errors.New("boom")
	assert.Equal(t, "ListInstances: Cannot get instances for named account: boom",
		wrapErr("ListInstances", msgInstances, cause).String())
	assert.Equal(t, "Credentials: Cannot obtain credentials for specified account",
		wrapErr("Credentials", msgCredentials, nil).String())
}
