package errors_test

import (
	"errors"
	"fmt"
	"testing"

	dnderr "github.com/KirkDiggler/dying-condition/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_PreservesCodeAndMeta(t *testing.T) {
	base := dnderr.IllegalTransitionf("cannot stabilize character in state %s", "alive").
		WithMeta("character_id", "char-1")

	wrapped := dnderr.Wrap(base, "stabilize")

	require.NotNil(t, wrapped)
	assert.Equal(t, dnderr.CodeIllegalTransition, wrapped.Code)
	assert.True(t, dnderr.IsIllegalTransition(wrapped))
	assert.Equal(t, "char-1", dnderr.GetMeta(wrapped)["character_id"])
	assert.Equal(t, "stabilize: cannot stabilize character in state alive", wrapped.Error())

	// Meta is copied, not shared
	wrapped.WithMeta("extra", true)
	_, shared := base.Meta["extra"]
	assert.False(t, shared)
}

func TestWrap_ForeignError(t *testing.T) {
	cause := errors.New("connection refused")

	wrapped := dnderr.Wrapf(cause, "failed to write %s", "attributes.state")

	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.Nil(t, dnderr.Wrap(nil, "nothing"))
	assert.Nil(t, dnderr.Wrapf(nil, "nothing %d", 1))
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New(`strconv.Atoi: parsing "many": invalid syntax`)

	wrapped := dnderr.WrapWithCode(cause, dnderr.CodeInvalidArgument, "cannot write attributes.dying")

	assert.True(t, dnderr.IsInvalidArgument(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.Nil(t, dnderr.WrapWithCode(nil, dnderr.CodeInternal, "nothing"))
}

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "illegal transition", err: dnderr.IllegalTransitionf("already dead"), want: true},
		{name: "invariant violation", err: dnderr.InvariantViolationf("hp is %d", 3), want: true},
		{name: "wrapped invariant", err: fmt.Errorf("roll: %w", dnderr.InvariantViolationf("x")), want: true},
		{name: "not found", err: dnderr.NotFound("character"), want: false},
		{name: "plain", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dnderr.IsRecoverable(tt.err))
		})
	}
}

func TestCodeHelpers(t *testing.T) {
	assert.True(t, dnderr.IsNotFound(dnderr.NotFoundf("character %s", "x")))
	assert.True(t, dnderr.IsInvalidArgument(dnderr.InvalidArgument("id required")))
	assert.True(t, dnderr.IsAlreadyExists(dnderr.AlreadyExistsf("character %s", "x")))
	assert.Equal(t, dnderr.CodeInternal, dnderr.GetCode(dnderr.Internalf("bad")))
	assert.Nil(t, dnderr.GetMeta(errors.New("plain")))
}
