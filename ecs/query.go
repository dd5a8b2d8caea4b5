package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// Query iterates every entity carrying a set of components. T must be a struct whose
// fields are pointers to component types; an EntityId field receives the entity's id.
// Named pointer fields tagged `ecs:"optional"` are nil when the component is missing.
//
// Results are cached: Execute rebuilds them, and the Scheduler calls Execute before
// each system that owns the query runs.
type Query[T any] struct {
	storage *Storage
	layout  queryLayout

	seenArchetypes int
	matches        []queryMatch

	ids   []EntityId
	rows  []T
	ready bool
}

type queryField struct {
	typ      reflect.Type
	offset   uintptr
	optional bool
}

type queryLayout struct {
	fields   []queryField
	idOffset uintptr
	hasId    bool
}

type queryMatch struct {
	archetype *Archetype
	columns   []int
}

// NewQuery creates a Query bound to storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds or re-binds the Query to a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.storage = storage
	q.layout = buildQueryLayout(reflect.TypeFor[T]())
	q.seenArchetypes = 0
	q.matches = nil
	q.ready = false
}

func buildQueryLayout(structType reflect.Type) queryLayout {
	if structType.Kind() != reflect.Struct {
		panic("Query type parameter must be a struct")
	}

	var layout queryLayout
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			layout.idOffset = field.Offset
			layout.hasId = true
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("Query struct fields must be pointer types or EntityId")
		}

		optional := false
		if tag := field.Tag.Get("ecs"); tag != "" {
			if tag != "optional" || field.Anonymous {
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" on named fields is supported)")
			}
			optional = true
		}

		layout.fields = append(layout.fields, queryField{
			typ:      field.Type.Elem(),
			offset:   field.Offset,
			optional: optional,
		})
	}
	return layout
}

func (q *Query[T]) refreshMatches() {
	archetypes := q.storage.Archetypes()
	for _, archetype := range archetypes[q.seenArchetypes:] {
		columns := make([]int, len(q.layout.fields))
		matched := true
		for i, f := range q.layout.fields {
			columns[i] = archetype.columnIndex(f.typ)
			if columns[i] == -1 && !f.optional {
				matched = false
				break
			}
		}
		if matched {
			q.matches = append(q.matches, queryMatch{archetype: archetype, columns: columns})
		}
	}
	q.seenArchetypes = len(archetypes)
}

// Execute rebuilds the entity and component caches.
func (q *Query[T]) Execute() {
	q.refreshMatches()

	q.ids = q.ids[:0]
	q.rows = q.rows[:0]

	for _, m := range q.matches {
		for index := range m.archetype.columns[0].live() {
			var row T
			base := unsafe.Pointer(&row)
			for i, f := range q.layout.fields {
				var ptr unsafe.Pointer
				if col := m.columns[i]; col != -1 {
					ptr = m.archetype.columns[col].ptr(index)
				}
				*(*unsafe.Pointer)(unsafe.Add(base, f.offset)) = ptr
			}

			id := NewEntityId(m.archetype.id, uint32(index))
			if q.layout.hasId {
				*(*EntityId)(unsafe.Add(base, q.layout.idOffset)) = id
			}

			q.ids = append(q.ids, id)
			q.rows = append(q.rows, row)
		}
	}

	q.ready = true
}

// Len returns the number of cached results.
func (q *Query[T]) Len() int {
	return len(q.rows)
}

// Iter returns an iterator over entity IDs and component data.
// Panics if Execute has not been called.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.ready {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(EntityId, T) bool) {
		for i := range q.rows {
			if !yield(q.ids[i], q.rows[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over component data only.
// Panics if Execute has not been called.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.ready {
		panic("Query.Values() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for i := range q.rows {
			if !yield(q.rows[i]) {
				return
			}
		}
	}
}
