package starfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(640, 480, 200, 7)
	b := Generate(640, 480, 200, 7)
	require.Len(t, a, 200)
	assert.Equal(t, a, b)

	c := Generate(640, 480, 200, 8)
	assert.NotEqual(t, a, c)
}

func TestGenerateBounds(t *testing.T) {
	for _, s := range Generate(300, 200, 500, 1) {
		assert.GreaterOrEqual(t, s.X, float32(0))
		assert.LessOrEqual(t, s.X, float32(300))
		assert.GreaterOrEqual(t, s.Y, float32(0))
		assert.LessOrEqual(t, s.Y, float32(200))
		assert.Contains(t, []float32{1, 2}, s.Size)
		assert.Equal(t, uint8(255), s.Color.A)
	}
}

func TestGenerateEmpty(t *testing.T) {
	assert.Nil(t, Generate(0, 100, 10, 1))
	assert.Nil(t, Generate(100, 100, 0, 1))
}
