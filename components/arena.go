// @focus: #entities { pool }
package components

// Arena is a slot pool for one entity kind
// Released slots keep their storage and are handed out again by Alloc
// Pointers returned by At are valid until the next Alloc
type Arena[T any] struct {
	items  []T
	active []bool
	live   int
}

// NewArena creates an empty arena with room for capacity entities before growing
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		items:  make([]T, 0, capacity),
		active: make([]bool, 0, capacity),
	}
}

// Alloc stores v in the lowest released slot, or a new slot, and returns its index
func (a *Arena[T]) Alloc(v T) int {
	for i, on := range a.active {
		if !on {
			a.items[i] = v
			a.active[i] = true
			a.live++
			return i
		}
	}
	a.items = append(a.items, v)
	a.active = append(a.active, true)
	a.live++
	return len(a.items) - 1
}

// Release deactivates slot i, returns false if it was not active
func (a *Arena[T]) Release(i int) bool {
	if !a.IsActive(i) {
		return false
	}
	a.active[i] = false
	a.live--
	return true
}

// Recycle resets an active slot in place; the slot stays active
func (a *Arena[T]) Recycle(i int, reset func(*T)) {
	if a.IsActive(i) {
		reset(&a.items[i])
	}
}

func (a *Arena[T]) IsActive(i int) bool {
	return i >= 0 && i < len(a.active) && a.active[i]
}

// At returns the entity in slot i, active or not
func (a *Arena[T]) At(i int) *T {
	return &a.items[i]
}

// Len is the number of active entities
func (a *Arena[T]) Len() int { return a.live }

// Slots is the number of allocated slots, active or released
func (a *Arena[T]) Slots() int { return len(a.items) }

// Each visits active slots in index order
// Slots allocated by fn during the walk are not visited
func (a *Arena[T]) Each(fn func(i int, v *T)) {
	n := len(a.items)
	for i := 0; i < n; i++ {
		if a.active[i] {
			fn(i, &a.items[i])
		}
	}
}

// Clear drops every slot
func (a *Arena[T]) Clear() {
	clear(a.items)
	a.items = a.items[:0]
	a.active = a.active[:0]
	a.live = 0
}
