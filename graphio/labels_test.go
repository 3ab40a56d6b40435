package graphio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/graphio"
)

func TestLabels(t *testing.T) {
	l := graphio.NewLabels(3)

	a, err := l.ID("alpha")
	require.NoError(t, err)
	b, err := l.ID("beta")
	require.NoError(t, err)
	again, err := l.ID("alpha")
	require.NoError(t, err)

	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, a, again, "known labels keep their id")
	assert.Equal(t, 2, l.Len())

	_, err = l.ID("gamma")
	require.NoError(t, err)
	_, err = l.ID("delta")
	require.ErrorIs(t, err, graphio.ErrTooManyVertices)
	assert.Equal(t, 3, l.Len(), "a rejected label is not assigned")

	id, ok := l.Lookup("beta")
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	_, ok = l.Lookup("delta")
	assert.False(t, ok)

	assert.Equal(t, "gamma", l.Label(2))
	assert.Equal(t, "7", l.Label(7))
	assert.Equal(t, "-1", l.Label(-1))
	assert.Equal(t, []string{"alpha", "beta", "gamma", "3"}, l.Path([]int{0, 1, 2, 3}))
}

func TestLabels_Resolve(t *testing.T) {
	l := graphio.LabelsFrom([]string{"a", "b", "c", "a"})
	assert.Equal(t, 3, l.Len(), "repeated names keep their first id")

	ids, err := l.Resolve([]string{"c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, ids)
	assert.Equal(t, []string{"c", "a"}, l.Path(ids))

	_, err = l.Resolve([]string{"a", "zz"})
	require.ErrorIs(t, err, graphio.ErrUnknownLabel)
	assert.Contains(t, err.Error(), `"zz"`)
}
