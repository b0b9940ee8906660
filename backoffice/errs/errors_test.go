package errs

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHTTPStatusError(t *testing.T) {
	base := errors.New("boom")
	wrapped := errors.Wrap(Forbidden("access denied", base), "get order")

	httpErr, ok := IsHTTPStatusError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)
	assert.Equal(t, "access denied", httpErr.Message)
	assert.ErrorIs(t, wrapped, base)
	assert.Equal(t, "(status 403) access denied: boom", httpErr.Error())

	_, ok = IsHTTPStatusError(base)
	assert.False(t, ok)
	_, ok = IsHTTPStatusError(nil)
	assert.False(t, ok)
}
