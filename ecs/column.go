package ecs

import (
	"fmt"
	"iter"
	"math/bits"
	"reflect"
	"unsafe"
)

const pageSize = 64

// column is a type-erased slot store for one component type.
type column interface {
	append(item any) int
	remove(index int)
	ptr(index int) unsafe.Pointer
	value(index int) any
	live() iter.Seq[int]
}

// ComponentRegistry manages component type registration for a Storage.
// Each Storage owns its own registry view, so independent stores never share columns.
type ComponentRegistry struct {
	factories map[reflect.Type]func() column
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() column),
	}
}

// RegisterComponent registers a component type with the given registry.
// This must be called for each component type before it can be spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() column {
		return &pagedColumn[T]{}
	}
}

func (r *ComponentRegistry) newColumn(t reflect.Type) column {
	factory, ok := r.factories[t]
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	return factory()
}

// pagedColumn stores values in fixed pages that never move once allocated, so
// pointers handed out by ptr stay valid until the slot is removed.
type pagedColumn[T any] struct {
	pages []*[pageSize]T
	used  []uint64
	free  []int
	next  int
}

func (c *pagedColumn[T]) append(item any) int {
	var v T
	if p, ok := item.(*T); ok {
		v = *p
	} else if val, ok := item.(T); ok {
		v = val
	} else {
		panic(fmt.Sprintf("ecs: cannot store %T in column of %s", item, reflect.TypeFor[T]()))
	}

	var index int
	if n := len(c.free); n > 0 {
		index = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		index = c.next
		c.next++
		if index/pageSize >= len(c.pages) {
			c.pages = append(c.pages, new([pageSize]T))
			c.used = append(c.used, 0)
		}
	}

	page, slot := index/pageSize, index%pageSize
	c.pages[page][slot] = v
	c.used[page] |= 1 << slot
	return index
}

func (c *pagedColumn[T]) has(index int) bool {
	if index < 0 || index >= c.next {
		return false
	}
	return c.used[index/pageSize]&(1<<(index%pageSize)) != 0
}

func (c *pagedColumn[T]) remove(index int) {
	if !c.has(index) {
		return
	}
	page, slot := index/pageSize, index%pageSize
	var zero T
	c.pages[page][slot] = zero
	c.used[page] &^= 1 << slot
	c.free = append(c.free, index)
}

func (c *pagedColumn[T]) ptr(index int) unsafe.Pointer {
	if !c.has(index) {
		return nil
	}
	return unsafe.Pointer(&c.pages[index/pageSize][index%pageSize])
}

func (c *pagedColumn[T]) value(index int) any {
	if !c.has(index) {
		return nil
	}
	return &c.pages[index/pageSize][index%pageSize]
}

// live yields occupied slot indices in ascending order.
func (c *pagedColumn[T]) live() iter.Seq[int] {
	return func(yield func(int) bool) {
		for page, mask := range c.used {
			for mask != 0 {
				slot := bits.TrailingZeros64(mask)
				mask &^= 1 << slot
				if !yield(page*pageSize + slot) {
					return
				}
			}
		}
	}
}
