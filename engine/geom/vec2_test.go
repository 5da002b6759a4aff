package geom_test

import (
	"math"
	"testing"

	"github.com/plus3/starward/engine/geom"
	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := geom.V(3, 4)
	b := geom.V(1, -2)

	assert.Equal(t, geom.V(4, 2), a.Add(b))
	assert.Equal(t, geom.V(2, 6), a.Sub(b))
	assert.Equal(t, geom.V(6, 8), a.Mul(2))
	assert.InDelta(t, -5.0, a.Dot(b), 1e-12)
}

func TestVec2Length(t *testing.T) {
	v := geom.V(3, 4)

	assert.InDelta(t, 5.0, v.Len(), 1e-12)
	assert.InDelta(t, 25.0, v.Len2(), 1e-12)
	assert.True(t, geom.Vec2{}.IsZero())
	assert.False(t, v.IsZero())
}

func TestVec2Normalize(t *testing.T) {
	n := geom.V(10, 0).Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
	assert.InDelta(t, 1.0, n.X, 1e-12)

	// The zero vector stays zero rather than dividing by zero.
	assert.Equal(t, geom.Vec2{}, geom.Vec2{}.Normalize())
}

func TestVec2ClampLen(t *testing.T) {
	v := geom.V(6, 8)

	clamped := v.ClampLen(5)
	assert.InDelta(t, 5.0, clamped.Len(), 1e-12)
	assert.InDelta(t, 3.0, clamped.X, 1e-12)
	assert.InDelta(t, 4.0, clamped.Y, 1e-12)

	// Vectors under the cap pass through unchanged.
	assert.Equal(t, v, v.ClampLen(100))
	assert.Equal(t, geom.Vec2{}, geom.Vec2{}.ClampLen(5))
}

func TestVec2Rotate(t *testing.T) {
	v := geom.V(1, 0).Rotate(math.Pi / 2)
	assert.InDelta(t, 0.0, v.X, 1e-12)
	assert.InDelta(t, 1.0, v.Y, 1e-12)

	full := geom.V(3, 4).Rotate(2 * math.Pi)
	assert.InDelta(t, 3.0, full.X, 1e-12)
	assert.InDelta(t, 4.0, full.Y, 1e-12)
}

func TestVec2Angle(t *testing.T) {
	assert.InDelta(t, 0.0, geom.V(1, 0).Angle(), 1e-12)
	assert.InDelta(t, math.Pi/2, geom.V(0, 1).Angle(), 1e-12)
	assert.InDelta(t, math.Pi, geom.V(-1, 0).Angle(), 1e-12)
}

func TestVec2Lerp(t *testing.T) {
	a := geom.V(0, 0)
	b := geom.V(10, -10)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, geom.V(5, -5), a.Lerp(b, 0.5))

	// t is clamped to [0, 1].
	assert.Equal(t, b, a.Lerp(b, 2))
	assert.Equal(t, a, a.Lerp(b, -1))
}
