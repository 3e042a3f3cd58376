package system

import "github.com/younwookim/sam/internal/domain/entity"

// Interactives is the ordered collection of non-player objects.
// Objects consumed during a pass are only marked; Compact removes them
// afterwards so iteration never skips or revisits an element.
type Interactives struct {
	items    []entity.Interactive
	consumed []bool
}

// NewInteractives creates an empty collection
func NewInteractives() *Interactives {
	return &Interactives{
		items:    make([]entity.Interactive, 0, 16),
		consumed: make([]bool, 0, 16),
	}
}

// Add appends an object after every existing one
func (c *Interactives) Add(obj entity.Interactive) {
	c.items = append(c.items, obj)
	c.consumed = append(c.consumed, false)
}

// Len returns the number of objects, including ones marked consumed
func (c *Interactives) Len() int {
	return len(c.items)
}

// At returns the object at index i in insertion order
func (c *Interactives) At(i int) entity.Interactive {
	return c.items[i]
}

// Consumed reports whether the object at index i is marked for removal
func (c *Interactives) Consumed(i int) bool {
	return c.consumed[i]
}

// MarkConsumed flags the object at index i for removal by the next Compact.
// Returns false if it was already marked.
func (c *Interactives) MarkConsumed(i int) bool {
	if c.consumed[i] {
		return false
	}
	c.consumed[i] = true
	return true
}

// Compact drops every marked object, keeping the order of the rest.
// Returns the removed objects in their former order.
func (c *Interactives) Compact() []entity.Interactive {
	var removed []entity.Interactive
	n := 0
	for i, obj := range c.items {
		if c.consumed[i] {
			removed = append(removed, obj)
			continue
		}
		c.items[n] = obj
		c.consumed[n] = false
		n++
	}
	for i := n; i < len(c.items); i++ {
		c.items[i] = nil
	}
	c.items = c.items[:n]
	c.consumed = c.consumed[:n]
	return removed
}

// Clear removes every object
func (c *Interactives) Clear() {
	for i := range c.items {
		c.items[i] = nil
	}
	c.items = c.items[:0]
	c.consumed = c.consumed[:0]
}

// Items returns the live objects in insertion order
func (c *Interactives) Items() []entity.Interactive {
	out := make([]entity.Interactive, 0, len(c.items))
	for i, obj := range c.items {
		if !c.consumed[i] {
			out = append(out, obj)
		}
	}
	return out
}
