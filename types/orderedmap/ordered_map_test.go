package orderedmap

import (
	"testing"

	"github.com/definitelyprobably/libclutils/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("-a", 1)
		om.Set("--aflag", 2)
		om.Set("-o", 3)

		val, ok := om.Get("--aflag")
		assert.True(t, ok)
		assert.Equal(t, 2, val)

		om.Set("--aflag", 22)
		val, _ = om.Get("--aflag")
		assert.Equal(t, 22, val)
		assert.Equal(t, []string{"-a", "--aflag", "-o"}, om.Keys(), "overwrite keeps position")

		_, ok = om.Get("-x")
		assert.False(t, ok)
		assert.False(t, om.Has("-x"))
	})

	t.Run("delete and compact", func(t *testing.T) {
		om := NewOrderedMap[int, string]()
		for i := 0; i < 10; i++ {
			om.Set(i, "v")
		}
		for i := 0; i < 8; i++ {
			om.Delete(i)
		}
		om.Delete(42)

		assert.Equal(t, 2, om.Count())
		assert.Equal(t, []int{8, 9}, om.Keys())
		val, ok := om.Get(9)
		require.True(t, ok)
		assert.Equal(t, "v", val)

		om.Set(0, "again")
		assert.Equal(t, []types.KeyValue[int, string]{
			{Key: 8, Value: "v"}, {Key: 9, Value: "v"}, {Key: 0, Value: "again"},
		}, om.Pairs())
	})

	t.Run("iteration", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		assert.Nil(t, om.Front())
		assert.Nil(t, om.Back())

		om.Set("a", 1)
		om.Set("b", 2)
		om.Set("c", 3)
		om.Delete("b")

		var forward []string
		for it := om.Front(); it != nil; it = it.Next() {
			forward = append(forward, *it.Key)
		}
		assert.Equal(t, []string{"a", "c"}, forward)

		var backward []int
		for it := om.Back(); it != nil; it = it.Next() {
			backward = append(backward, it.Value)
		}
		assert.Equal(t, []int{3, 1}, backward)

		om.Clear()
		assert.Zero(t, om.Count())
		assert.Nil(t, om.Front())
	})
}
