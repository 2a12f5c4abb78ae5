package store

// collection is an ordered list of entities addressed by id.
// Callers hold the store lock.
type collection[P any] struct {
	items []P
	id    func(P) string
	clone func(P) P
}

func (c *collection[P]) indexOf(id string) int {
	for i, item := range c.items {
		if c.id(item) == id {
			return i
		}
	}
	return -1
}

func (c *collection[P]) get(id string) (P, bool) {
	var zero P
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	return zero, false
}

// replace swaps in a copy of item if its id is still present
func (c *collection[P]) replace(item P) bool {
	i := c.indexOf(c.id(item))
	if i < 0 {
		return false
	}
	c.items[i] = c.clone(item)
	return true
}

// insert places a copy of item at index, clamped to the list bounds
func (c *collection[P]) insert(index int, item P) {
	if index < 0 {
		index = 0
	}
	if index > len(c.items) {
		index = len(c.items)
	}
	c.items = append(c.items, item)
	copy(c.items[index+1:], c.items[index:])
	c.items[index] = c.clone(item)
}

func (c *collection[P]) removeAt(index int) {
	c.items = append(c.items[:index], c.items[index+1:]...)
}

func (c *collection[P]) set(items []P) {
	c.items = make([]P, 0, len(items))
	for _, item := range items {
		c.items = append(c.items, c.clone(item))
	}
}

func (c *collection[P]) all() []P {
	out := make([]P, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, c.clone(item))
	}
	return out
}

// snapshot is one entity and where it sat in its list
type snapshot[P any] struct {
	index  int
	entity P
	found  bool
}

func (c *collection[P]) capture(id string) snapshot[P] {
	i := c.indexOf(id)
	if i < 0 {
		return snapshot[P]{index: -1}
	}
	return snapshot[P]{index: i, entity: c.clone(c.items[i]), found: true}
}
