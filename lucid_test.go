package lucid_test

import (
	"errors"
	"testing"

	"github.com/lucidread/lucid"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := lucid.Errorf(lucid.ENOTFOUND, "article %q not found", "test")

	assert.Equal(t, lucid.ENOTFOUND, lucid.ErrorCode(err))
	assert.Equal(t, "article \"test\" not found", lucid.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, lucid.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lucid.EINTERNAL, lucid.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, lucid.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", lucid.ErrorMessage(errors.New("boom")))
}
