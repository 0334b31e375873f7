package errorx

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBizErrorMessage(t *testing.T) {
	err := ErrConflict("Activity is full")
	assert.Equal(t, CodeConflict, err.GetCode())
	assert.Equal(t, "Activity is full", err.GetMessage())
	assert.Equal(t, "BizError: code=1003, message=Activity is full", err.Error())
}

func TestShortcutsUseDefaultMessages(t *testing.T) {
	assert.Equal(t, GetMessage(CodeInvalidInput), ErrInvalidInput("").Message)
	assert.Equal(t, GetMessage(CodeNotFound), ErrNotFound("").Message)
	assert.Equal(t, "custom", ErrNotFound("custom").Message)
}

func TestIs(t *testing.T) {
	err := ErrNotFound("Activity not found")
	assert.True(t, Is(err, CodeNotFound))
	assert.False(t, Is(err, CodeConflict))
	assert.False(t, Is(nil, CodeNotFound))

	wrapped := errors.Wrap(err, "lookup failed")
	assert.True(t, Is(wrapped, CodeNotFound))
}

func TestFromError(t *testing.T) {
	require.Nil(t, FromError(nil))

	biz := ErrInvalidInput("Invalid email format")
	assert.Same(t, biz, FromError(biz))

	wrapped := errors.Wrap(biz, "signup")
	assert.Same(t, biz, FromError(wrapped))

	// Unknown errors collapse into an internal error, hiding details.
	plain := fmt.Errorf("dial tcp: connection refused")
	got := FromError(plain)
	assert.Equal(t, CodeInternalError, got.Code)
	assert.Equal(t, GetMessage(CodeInternalError), got.Message)
}
