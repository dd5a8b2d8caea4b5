package ecs

import (
	"iter"
	"reflect"
	"slices"
	"strings"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity that has exactly one particular set of component types.
// All columns share slot indices: slot i of every column belongs to the same entity.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []column
	count   int
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]column, len(types)),
	}
	for i, typ := range types {
		a.columns[i] = registry.newColumn(typ)
	}
	return a
}

// ID returns the archetype's identifier
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities in the archetype
func (a *Archetype) Len() int {
	return a.count
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

func (a *Archetype) columnIndex(compType reflect.Type) int {
	return slices.Index(a.types, compType)
}

// spawn appends one entity. components must carry exactly the archetype's types.
func (a *Archetype) spawn(components []any) uint32 {
	index := -1
	for _, comp := range components {
		col := a.columnIndex(componentType(comp))
		slot := a.columns[col].append(comp)
		if index == -1 {
			index = slot
		} else if slot != index {
			panic("ecs: archetype columns out of step")
		}
	}
	a.count++
	return uint32(index)
}

func (a *Archetype) delete(index uint32) bool {
	if a.columns[0].ptr(int(index)) == nil {
		return false
	}
	for _, col := range a.columns {
		col.remove(int(index))
	}
	a.count--
	return true
}

func (a *Archetype) component(index uint32, compType reflect.Type) any {
	col := a.columnIndex(compType)
	if col == -1 {
		return nil
	}
	return a.columns[col].value(int(index))
}

// Iter yields the ids of live entities in slot order
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for index := range a.columns[0].live() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}

func signature(types []reflect.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.PkgPath() + "." + t.String()
	}
	return strings.Join(names, "|")
}
