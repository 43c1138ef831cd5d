package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStore = New("store is read-only")

func TestExitError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{"sentinel", NewExitError(ErrNotFound, ExitUser), "not found"},
		{"fmt wrapped", NewExitError(fmt.Errorf("loading settings: %w", ErrInvalidConfig), ExitUser), "loading settings: invalid configuration"},
		{"crdb wrapped", NewSystemError(Wrapf(errStore, "saving %s", "/p/.nem.toml"), ""), "saving /p/.nem.toml: store is read-only"},
		{"child status", NewExitError(nil, 3), "exit code 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestExitError_MatchesCause(t *testing.T) {
	wrapped := NewUserError(Wrap(ErrInvalidConfig, "reading config.yaml"), "")
	assert.True(t, Is(wrapped, ErrInvalidConfig))
	assert.True(t, errors.Is(wrapped, ErrInvalidConfig), "stdlib errors.Is must see through ExitError")
	assert.False(t, Is(wrapped, ErrNotFound))
	assert.False(t, Is(NewExitError(nil, ExitUser), ErrNotFound))
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitUser},
		{"system error", NewSystemError(errStore, ""), ExitSystem},
		{"wrapped child status", Wrap(NewExitError(nil, 42), "dispatch"), 42},
		{"executable missing", NewExitError(ErrNotFound, ExitCommandNotFound), 127},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestExitError_Silent(t *testing.T) {
	assert.True(t, NewExitError(nil, 4).Silent())
	assert.False(t, NewUserError(ErrNotFound, "").Silent())
}

func TestConstructors(t *testing.T) {
	user := NewUserError(errStore, "check input")
	assert.Equal(t, ExitUser, user.Code)
	assert.Equal(t, "check input", user.Suggestion)

	sys := NewSystemError(errStore, "check permissions")
	assert.Equal(t, ExitSystem, sys.Code)

	cfg := NewConfigError(ErrInvalidConfig)
	assert.Equal(t, ExitUser, cfg.Code)
	assert.Equal(t, "Run: nem config", cfg.Suggestion)

	var target *ExitError
	require.True(t, As(Wrap(cfg, "startup"), &target))
	assert.Same(t, cfg, target)
}
