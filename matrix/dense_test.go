package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-jssp/sdst-solver/matrix"
)

func TestNewDense_RejectsNonPositiveDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_SetAndAt(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	// Untouched entries remain zero.
	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestDense_OutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	require.True(t, errors.Is(err, matrix.ErrIndexOutOfBounds))

	err = m.Set(0, -1, 1)
	require.True(t, errors.Is(err, matrix.ErrIndexOutOfBounds))
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	clone := m.Clone()
	require.NoError(t, m.Set(0, 0, 99))

	v, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "clone must not observe mutations to the original")
}
