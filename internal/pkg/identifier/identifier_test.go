//go:build unit

package identifier_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"auction-market/internal/pkg/identifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func never(context.Context, string) (bool, error) { return false, nil }

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("prefixed uppercase id", func(t *testing.T) {
		id, err := identifier.NewOrderID(ctx, never)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(id, "ORD"))
		assert.Len(t, id, len("ORD")+10)
		assert.Equal(t, strings.ToUpper(id), id)
	})

	t.Run("re-rolls on collision", func(t *testing.T) {
		calls := 0
		exists := func(string) bool { calls++; return calls == 1 }
		id, err := identifier.New(ctx, "PROD", 8, func(_ context.Context, id string) (bool, error) {
			return exists(id), nil
		})
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, 2, calls)
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		always := func(context.Context, string) (bool, error) { return true, nil }
		_, err := identifier.New(ctx, "COUP", 8, always)
		assert.Error(t, err)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		boom := errors.New("store down")
		fail := func(context.Context, string) (bool, error) { return false, boom }
		_, err := identifier.New(ctx, "UC", 10, fail)
		assert.ErrorIs(t, err, boom)
	})
}
