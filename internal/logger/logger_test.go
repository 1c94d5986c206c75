package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("returns the logger stored in context", func(t *testing.T) {
		log := New()
		ctx := context.WithValue(context.Background(), ContextKey, log)
		require.Same(t, log, FromContext(ctx))
	})

	t.Run("falls back to a fresh logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}
