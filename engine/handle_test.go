package engine_test

import (
	"fmt"
	"testing"

	"github.com/plus3/starward/engine"
	"github.com/stretchr/testify/assert"
)

func TestHandleEncoding(t *testing.T) {
	generation := uint32(12345)
	index := uint32(67890)

	h := engine.NewHandle(generation, index)

	assert.Equal(t, generation, h.Generation())
	assert.Equal(t, index, h.Index())
	assert.True(t, h.Valid())
}

func TestHandleEdgeCases(t *testing.T) {
	tests := []struct {
		generation uint32
		index      uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("generation=%d,index=%d", tt.generation, tt.index), func(t *testing.T) {
			h := engine.NewHandle(tt.generation, tt.index)
			assert.Equal(t, tt.generation, h.Generation())
			assert.Equal(t, tt.index, h.Index())
		})
	}
}

func TestHandleValidity(t *testing.T) {
	// Generations start at 1, so a zero generation can never be live.
	assert.False(t, engine.Handle(0).Valid())
	assert.False(t, engine.NewHandle(0, 42).Valid())
	assert.True(t, engine.NewHandle(1, 0).Valid())
}
