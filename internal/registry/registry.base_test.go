package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[int]()

	require.NoError(t, r.Register("a", 1))

	value, ok := r.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, value)

	_, ok = r.Get("khong-ton-tai")
	assert.False(t, ok)
}

func TestRegistry_RegisterTrungTen(t *testing.T) {
	r := NewRegistry[string]()

	require.NoError(t, r.Register("a", "x"))
	err := r.Register("a", "y")
	assert.Error(t, err)

	// Giá trị cũ không bị ghi đè
	value, _ := r.Get("a")
	assert.Equal(t, "x", value)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0
	factory := func() int {
		calls++
		return 42
	}

	value := r.GetOrCreate("a", factory)
	assert.Equal(t, 42, value)

	// Lần hai trả về giá trị đã có, không gọi lại factory
	value = r.GetOrCreate("a", factory)
	assert.Equal(t, 42, value)
	assert.Equal(t, 1, calls)
}

func TestRegistry_UpdateVaNames(t *testing.T) {
	r := NewRegistry[int]()
	require.NoError(t, r.Register("a", 1))

	r.Update("a", 2)
	value, _ := r.Get("a")
	assert.Equal(t, 2, value)

	require.NoError(t, r.Register("b", 3))
	assert.ElementsMatch(t, []string{"a", "b"}, r.Names())
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry[int]()
	require.NoError(t, r.Register("a", 1))
	require.NoError(t, r.Register("b", 2))

	r.Clear("a")
	_, ok := r.Get("a")
	assert.False(t, ok)

	r.ClearAll()
	assert.Empty(t, r.Names())
}
