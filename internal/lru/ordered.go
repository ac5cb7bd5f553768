// Package lru provides an insertion-ordered map whose order is refreshed on
// access: every Touch or GetOrCreate moves the entry to the front. Nothing is
// ever evicted; the order list is the point.
package lru

import (
	"container/list"
	"iter"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Map is a hash map plus an explicit move-to-front order list.
// The zero value is not usable; call New.
type Map[K comparable, V any] struct {
	order *list.List
	index map[K]*list.Element
}

// New creates an empty map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		order: list.New(),
		index: make(map[K]*list.Element),
	}
}

// Len reports the number of entries.
func (m *Map[K, V]) Len() int { return len(m.index) }

// Peek returns the value for key without touching the order.
func (m *Map[K, V]) Peek(key K) (V, bool) {
	if el, ok := m.index[key]; ok {
		return el.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Touch moves key to the front and returns its value.
func (m *Map[K, V]) Touch(key K) (V, bool) {
	el, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	m.order.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

// GetOrCreate returns the value for key, creating it with mk when absent.
// Either way the entry ends up at the front.
func (m *Map[K, V]) GetOrCreate(key K, mk func() V) (value V, created bool) {
	if v, ok := m.Touch(key); ok {
		return v, false
	}
	v := mk()
	m.index[key] = m.order.PushFront(&entry[K, V]{key: key, value: v})
	return v, true
}

// Front returns the most recently touched entry.
func (m *Map[K, V]) Front() (K, V, bool) {
	el := m.order.Front()
	if el == nil {
		var (
			zk K
			zv V
		)
		return zk, zv, false
	}
	e := el.Value.(*entry[K, V])
	return e.key, e.value, true
}

// Next returns the entry that follows key in the order list.
// ok is false when key is absent or last.
func (m *Map[K, V]) Next(key K) (K, V, bool) {
	var (
		zk K
		zv V
	)
	el, ok := m.index[key]
	if !ok || el.Next() == nil {
		return zk, zv, false
	}
	e := el.Next().Value.(*entry[K, V])
	return e.key, e.value, true
}

// All iterates entries front to back.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for el := m.order.Front(); el != nil; el = el.Next() {
			e := el.Value.(*entry[K, V])
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Values iterates values front to back.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
