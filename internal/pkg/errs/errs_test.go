//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"parking-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	sentinel := errs.NewKind(errs.KindNotFound, "lot not found")

	t.Run("direct kinded error", func(t *testing.T) {
		kind, ok := errs.KindOf(sentinel)
		require.True(t, ok)
		assert.Equal(t, errs.KindNotFound, kind)
	})

	t.Run("wrapped kinded error keeps kind and identity", func(t *testing.T) {
		wrapped := errs.Wrap(sentinel, "resolving lot")
		kind, ok := errs.KindOf(wrapped)
		require.True(t, ok)
		assert.Equal(t, errs.KindNotFound, kind)
		assert.ErrorIs(t, wrapped, sentinel)
	})

	t.Run("marked error matches reference", func(t *testing.T) {
		marked := errs.Mark(errors.New("boom"), errs.ErrVersionConflict)
		assert.True(t, errs.Is(marked, errs.ErrVersionConflict))
	})

	t.Run("plain error has no kind", func(t *testing.T) {
		_, ok := errs.KindOf(errors.New("connection reset"))
		assert.False(t, ok)
	})

	t.Run("nil wraps to nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "unused"))
	})
}

func TestWrapf(t *testing.T) {
	err := errs.Wrapf(errs.ErrVersionConflict, "reservation %s", "abc")

	assert.EqualError(t, err, "reservation abc: "+errs.ErrVersionConflict.Error())
	assert.ErrorIs(t, err, errs.ErrVersionConflict)
	assert.NoError(t, errs.Wrapf(nil, "unused %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("outbox relay"), "publishing")

	lines := errs.ExtractStackLines(err, 3)
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.NotEmpty(t, l)
	}
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
