package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDenseRejectsBadShape(t *testing.T) {
	_, err := NewDense(0, 3)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewDense(3, -1)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestDenseGetSet(t *testing.T) {
	m, err := NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 2, 42.5))
	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 42.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)

	err = m.Set(0, -1, 1)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestDenseClone(t *testing.T) {
	m, err := NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, 7))

	cp := m.Clone()
	require.NoError(t, cp.Set(1, 1, 99))

	orig, _ := m.At(1, 1)
	cloned, _ := cp.At(1, 1)
	require.Equal(t, 7.0, orig)
	require.Equal(t, 99.0, cloned)
}
