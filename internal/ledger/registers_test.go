package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/fincalc/pkg/types"
)

func TestStackOperations(t *testing.T) {
	s, _ := setupStore(t)

	require.NoError(t, s.Push(1.5))
	require.NoError(t, s.Push(2.5))
	require.NoError(t, s.Push(3.5))

	values, err := s.Stack()
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, values)

	top, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 3.5, top)

	top, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2.5, top)

	require.NoError(t, s.ClearStack())
	_, err = s.Pop()
	assert.ErrorIs(t, err, types.ErrStackEmpty)
}

func TestVariables(t *testing.T) {
	s, _ := setupStore(t)

	require.NoError(t, s.SetVar("rate", 8.5))
	require.NoError(t, s.SetVar("principal", 1000000))

	got, err := s.GetVar("rate")
	require.NoError(t, err)
	assert.Equal(t, 8.5, got)

	// Overwrite keeps a single value per name.
	require.NoError(t, s.SetVar("rate", 9.0))
	got, err = s.GetVar("rate")
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)

	vars, err := s.Vars()
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"rate": 9.0, "principal": 1000000}, vars)

	_, err = s.GetVar("missing")
	assert.ErrorIs(t, err, types.ErrVarNotFound)
}

func TestLastResult(t *testing.T) {
	s, _ := setupStore(t)

	_, err := s.Last()
	assert.ErrorIs(t, err, types.ErrNoLast)

	require.NoError(t, s.SetLast(42))
	got, err := s.Last()
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)

	require.NoError(t, s.SetLast(7))
	got, err = s.Last()
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)
}

func TestRegistersSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	s := NewStore()
	require.NoError(t, s.Open(cfg))
	require.NoError(t, s.Push(10))
	require.NoError(t, s.Push(20))
	require.NoError(t, s.SetVar("x", 3.14))
	require.NoError(t, s.SetLast(99))
	require.NoError(t, s.Close())

	s2 := NewStore()
	require.NoError(t, s2.Open(cfg))
	defer s2.Close()

	values, err := s2.Stack()
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, values)

	x, err := s2.GetVar("x")
	require.NoError(t, err)
	assert.Equal(t, 3.14, x)

	last, err := s2.Last()
	require.NoError(t, err)
	assert.Equal(t, 99.0, last)
}
