package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbound/matrix"
)

var inf = math.Inf(1)

func TestNewDense_Shape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.False(t, m.IsSquare())
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewFilled(2, 2, inf)
	require.NoError(t, err)

	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	require.NoError(t, m.Set(0, 1, 7))
	v, _ = m.At(0, 1)
	assert.Equal(t, 7.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaN)
}

func TestFromRows(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]float64{{1, math.NaN()}, {3, 4}})
	require.ErrorIs(t, err, matrix.ErrNaN)

	m, err := matrix.FromRows([][]float64{{inf, 1}, {2, inf}})
	require.NoError(t, err)
	v, _ := m.At(1, 0)
	assert.Equal(t, 2.0, v)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{inf, 1}, {2, inf}})
	require.NoError(t, err)

	cp := m.CloneDense()
	require.True(t, cp.Equal(m))
	require.NoError(t, cp.Set(0, 1, 99))

	v, _ := m.At(0, 1)
	assert.Equal(t, 1.0, v, "original must not observe writes to the clone")
	assert.False(t, cp.Equal(m))

	var asIface matrix.Matrix = m
	_, ok := asIface.Clone().(*matrix.Dense)
	assert.True(t, ok)
}

func TestDense_RowIsView(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	row[0] = 5
	v, _ := m.At(1, 0)
	assert.Equal(t, 5.0, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_String(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{inf, 1.5}, {0, inf}})
	require.NoError(t, err)
	assert.Equal(t, "[inf, 1.5]\n[0, inf]\n", m.String())
}

type rowsOnly struct{ a [][]float64 }

func (r rowsOnly) Rows() int { return len(r.a) }
func (r rowsOnly) Cols() int { return len(r.a[0]) }
func (r rowsOnly) At(i, j int) (float64, error) {
	if i < 0 || i >= len(r.a) || j < 0 || j >= len(r.a[0]) {
		return 0, matrix.ErrOutOfRange
	}
	return r.a[i][j], nil
}
func (r rowsOnly) Set(i, j int, v float64) error { r.a[i][j] = v; return nil }
func (r rowsOnly) Clone() matrix.Matrix { return r }

func TestAsDense(t *testing.T) {
	d, err := matrix.AsDense(rowsOnly{a: [][]float64{{inf, 3}, {4, inf}}})
	require.NoError(t, err)
	v, _ := d.At(0, 1)
	assert.Equal(t, 3.0, v)

	same, err := matrix.AsDense(d)
	require.NoError(t, err)
	assert.Same(t, d, same)

	_, err = matrix.AsDense(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
