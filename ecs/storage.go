package ecs

import (
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage is the entity store: archetypes of components plus storage-wide singletons.
type Storage struct {
	registry   *ComponentRegistry
	archetypes *intmap.Map[uint32, *Archetype]
	ordered    []*Archetype
	signatures map[string]uint32

	singletons     map[reflect.Type]*singletonEntry
	singletonOrder []reflect.Type
}

type singletonEntry struct {
	typ     reflect.Type
	dataPtr unsafe.Pointer
}

// NewStorage creates a new entity store with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		archetypes: intmap.New[uint32, *Archetype](16),
		signatures: make(map[string]uint32),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Archetypes returns every archetype in creation order
func (s *Storage) Archetypes() []*Archetype {
	return s.ordered
}

func (s *Storage) archetype(id uint32) *Archetype {
	a, _ := s.archetypes.Get(id)
	return a
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	key := signature(types)
	if id, ok := s.signatures[key]; ok {
		return s.archetype(id)
	}

	id := uint32(len(s.ordered) + 1)
	a := newArchetype(id, types, s.registry)
	s.signatures[key] = id
	s.archetypes.Put(id, a)
	s.ordered = append(s.ordered, a)
	return a
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	a := s.archetypeFor(types)
	return NewEntityId(a.id, a.spawn(components))
}

// Delete removes all data related to the entity ID. Unknown ids are ignored.
func (s *Storage) Delete(id EntityId) {
	if a := s.archetype(id.ArchetypeId()); a != nil {
		a.delete(id.Index())
	}
}

// GetComponent returns a pointer to the component for the given entity, or nil
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	a := s.archetype(id.ArchetypeId())
	if a == nil {
		return nil
	}
	return a.component(id.Index(), compType)
}

// HasComponent checks if an entity's archetype carries a component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	a := s.archetype(id.ArchetypeId())
	return a != nil && a.HasComponent(compType)
}

// AddSingleton stores value as the singleton of its type, replacing any previous one.
func (s *Storage) AddSingleton(value any) {
	typ := componentType(value)
	ptr := reflect.New(typ)
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	ptr.Elem().Set(rv)

	if _, exists := s.singletons[typ]; !exists {
		s.singletonOrder = append(s.singletonOrder, typ)
	}
	s.singletons[typ] = &singletonEntry{typ: typ, dataPtr: ptr.UnsafePointer()}
}

func (s *Storage) getSingletonEntry(typ reflect.Type) *singletonEntry {
	return s.singletons[typ]
}

// ReadSingleton points *target at the singleton of type T when it exists.
// target must be a **T. Returns false when no such singleton was added.
func (s *Storage) ReadSingleton(target any) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	typ := rv.Elem().Type().Elem()
	entry := s.getSingletonEntry(typ)
	if entry == nil {
		return false
	}
	rv.Elem().Set(reflect.NewAt(typ, entry.dataPtr))
	return true
}

// extractComponentTypes extracts and sorts component types from a slice of components
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := componentType(comp)

		switch compType.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("components cannot be pointers, maps, channels, or functions")
		}

		types = append(types, compType)
	}
	sort.Sort(byTypeName(types))
	return types
}

func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the T component of an entity, or nil when it has none.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
