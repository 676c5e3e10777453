package inspector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-inspector/common/types"
)

func TestLatest(t *testing.T) {
	var l latest
	require.Nil(t, l.get())
	require.False(t, l.matches(0))

	id := types.ElementID(3)
	l.set(&id)
	require.True(t, l.matches(3))
	require.False(t, l.matches(4))

	got := l.get()
	require.Equal(t, types.ElementID(3), *got)
	*got = 5
	require.True(t, l.matches(3), "get must return a copy")

	id = 7
	require.True(t, l.matches(3), "set must copy the id")

	l.set(nil)
	require.Nil(t, l.get())
	require.False(t, l.matches(3))
}
