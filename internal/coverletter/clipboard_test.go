package coverletter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientClipboard(t *testing.T) {
	c := NewClientClipboard()
	assert.Empty(t, c.Last())

	require.NoError(t, c.WriteText(context.Background(), "first"))
	require.NoError(t, c.WriteText(context.Background(), "second"))
	assert.Equal(t, "second", c.Last())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.WriteText(ctx, "third"), context.Canceled)
	assert.Equal(t, "second", c.Last())
}
