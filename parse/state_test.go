package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultState(t *testing.T) {
	t.Run("NewState skips the start offset", func(t *testing.T) {
		state := NewState([]string{"prog", "-a", "-o", "A"}, 1)
		assert.Equal(t, 3, state.Len())
		assert.Equal(t, 0, state.Position())
		assert.Equal(t, "", state.CurrentArg())

		var got []string
		var positions []int
		for state.Advance() {
			got = append(got, state.CurrentArg())
			positions = append(positions, state.Position())
		}
		assert.Equal(t, []string{"-a", "-o", "A"}, got)
		assert.Equal(t, []int{1, 2, 3}, positions)
	})

	t.Run("Advance stops at the end", func(t *testing.T) {
		state := NewState([]string{"-a"}, 0)
		assert.True(t, state.Advance())
		assert.False(t, state.Advance())
		assert.Equal(t, 1, state.Position())
		assert.Equal(t, "-a", state.CurrentArg())
	})

	t.Run("start out of range", func(t *testing.T) {
		empty := NewState([]string{"a"}, 5)
		assert.Equal(t, 0, empty.Len())
		assert.False(t, empty.Advance())
		assert.Equal(t, 1, NewState([]string{"a"}, -2).Len())
	})
}
