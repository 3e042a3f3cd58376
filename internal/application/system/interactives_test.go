package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sam/internal/domain/entity"
)

func TestInteractives_Compact(t *testing.T) {
	c := NewInteractives()
	a := entity.NewAmmo(0, 0, 354, 32, 1, 0)
	b := entity.NewBullet(32, 0, entity.FacingRight, 96, 7, 437)
	g := entity.NewGlasses(64, 0, 52, 32, 53, 0)
	c.Add(a)
	c.Add(b)
	c.Add(g)
	require.Equal(t, 3, c.Len())

	assert.True(t, c.MarkConsumed(1))
	assert.False(t, c.MarkConsumed(1), "second mark is refused")
	assert.True(t, c.Consumed(1))
	assert.Equal(t, 3, c.Len(), "marked objects stay until compacted")
	assert.Equal(t, []entity.Interactive{a, g}, c.Items())

	removed := c.Compact()

	assert.Equal(t, []entity.Interactive{b}, removed)
	assert.Equal(t, 2, c.Len())
	assert.Same(t, a, c.At(0))
	assert.Same(t, g, c.At(1))
	assert.False(t, c.Consumed(0))
	assert.False(t, c.Consumed(1))
}

func TestInteractives_CompactNothing(t *testing.T) {
	c := NewInteractives()
	c.Add(entity.NewAmmo(0, 0, 354, 32, 1, 0))

	assert.Empty(t, c.Compact())
	assert.Equal(t, 1, c.Len())
}

func TestInteractives_Clear(t *testing.T) {
	c := NewInteractives()
	c.Add(entity.NewAmmo(0, 0, 354, 32, 1, 0))
	c.Add(entity.NewAmmo(32, 0, 354, 32, 1, 0))
	c.MarkConsumed(0)

	c.Clear()

	assert.Zero(t, c.Len())
	assert.Empty(t, c.Items())

	c.Add(entity.NewAmmo(0, 0, 354, 32, 1, 0))
	assert.False(t, c.Consumed(0))
}
