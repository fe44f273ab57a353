// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2026 Canonical Ltd
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

// Package elist2 implements an intrusive, circular, doubly linked list
// together with a cooperative iterator.
//
// Elements embed a Link and are threaded onto the ring in place, so the
// list never allocates per element and never owns element memory. Several
// iterators may walk the same list at once; when one of them extracts,
// exchanges or splices away the element another iterator is sitting on,
// the affected iterator heals itself on its next move using its cached
// neighbours.
//
// All lists are circular: the successor of the last element is the first
// element. The list header holds a single reference to the last element,
// so appending and prepending are both O(1).
package elist2

import (
	"sort"
)

// Linker is the neighbour-slot interface an element type must satisfy to
// live on a List. Embedding a Link provides the implementation.
type Linker[E any] interface {
	Next() E
	Prev() E
	SetNext(E)
	SetPrev(E)
}

// Link holds an element's two ring-neighbour slots. Embed it by value in
// the element type:
//
//	type word struct {
//		elist2.Link[*word]
//		text string
//	}
//
// The embedding type then satisfies Linker[*word] by promotion and can be
// stored on a List[word, *word]. An element can be on at most one list at
// a time.
type Link[E any] struct {
	next, prev E
}

// Next returns the element following this one on the ring.
func (l *Link[E]) Next() E { return l.next }

// Prev returns the element preceding this one on the ring.
func (l *Link[E]) Prev() E { return l.prev }

// SetNext sets the element following this one on the ring.
func (l *Link[E]) SetNext(e E) { l.next = e }

// SetPrev sets the element preceding this one on the ring.
func (l *Link[E]) SetPrev(e E) { l.prev = e }

// List is the header of an intrusive circular doubly linked list. The
// zero value is an empty list ready to use.
//
// The header holds only a reference to the last element of the ring; the
// list is empty exactly when that reference is nil. Insertion order is
// meaningful except immediately after Sort, which permanently reorders
// the ring.
type List[T any, E interface {
	*T
	Linker[E]
}] struct {
	last E
}

// Empty returns true if the list has no elements.
func (l *List[T, E]) Empty() bool {
	return l.last == nil
}

// Singleton returns true if the list has exactly one element.
func (l *List[T, E]) Singleton() bool {
	return l.last != nil && l.last.Next() == l.last
}

// Front returns the first element of the list, or nil if it is empty.
func (l *List[T, E]) Front() E {
	if l.last == nil {
		return nil
	}
	return l.last.Next()
}

// Back returns the last element of the list, or nil if it is empty.
func (l *List[T, E]) Back() E {
	return l.last
}

// Clear unthreads every element and leaves the list empty. If destroy is
// not nil it is called once per element, in list order, after the element
// has been taken off the ring, so it may release the element without any
// risk of the walk revisiting it. A single destroy callback serves any
// element type, which keeps bulk destruction free of dynamic dispatch.
func (l *List[T, E]) Clear(destroy func(E)) {
	if l.last == nil {
		return
	}
	ptr := l.last.Next()
	// break the circle before destroying anything
	l.last.SetNext(nil)
	l.last = nil
	for ptr != nil {
		next := ptr.Next()
		ptr.SetNext(nil)
		ptr.SetPrev(nil)
		if destroy != nil {
			destroy(ptr)
		}
		ptr = next
	}
}

// Length returns the number of elements on the list. It walks the whole
// ring, so it is O(n).
func (l *List[T, E]) Length() int {
	count := 0
	it := NewIterator(l)
	for it.MarkCyclePt(); !it.CycledList(); it.Forward() {
		count++
	}
	return count
}

// Sort reorders the list so that a forward traversal is non-decreasing
// under cmp, a three-way comparator returning a negative, zero or
// positive value. The sort is not stable: elements with equal keys may
// end up in any relative order.
//
// Every element is extracted into a transient slice, sorted there and
// re-appended, so Sort needs O(n) extra space for the duration of the
// call.
func (l *List[T, E]) Sort(cmp func(a, b E) int) {
	it := NewIterator(l)

	elems := make([]E, 0, l.Length())
	for it.MarkCyclePt(); !it.CycledList(); it.Forward() {
		elems = append(elems, it.Extract())
	}

	sort.Slice(elems, func(i, j int) bool {
		return cmp(elems[i], elems[j]) < 0
	})

	for _, e := range elems {
		it.AddToEnd(e)
	}
}

// AddSorted inserts e into a list already ordered under cmp, keeping the
// order. Appending to the tail is O(1), so feeding pre-sorted input is
// linear overall; otherwise the list is scanned from the head and e is
// inserted before the first element comparing strictly greater. An
// element whose key ties existing elements therefore lands after all of
// its equals.
func (l *List[T, E]) AddSorted(cmp func(a, b E) int, e E) {
	if e == nil {
		fatal("List.AddSorted", "element is nil")
	}
	if l.last == nil || cmp(l.last, e) < 0 {
		// add at the end
		if l.last == nil {
			e.SetNext(e)
			e.SetPrev(e)
		} else {
			e.SetNext(l.last.Next())
			e.SetPrev(l.last)
			l.last.SetNext(e)
			e.Next().SetPrev(e)
		}
		l.last = e
	} else {
		it := NewIterator(l)
		for it.MarkCyclePt(); !it.CycledList(); it.Forward() {
			if cmp(it.Data(), e) > 0 {
				break
			}
		}
		if it.CycledList() {
			it.AddToEnd(e)
		} else {
			it.AddBeforeThenMove(e)
		}
	}
}

// AssignToSublist moves the inclusive run of elements from start's
// position through end's position out of their list and makes it this
// list's entire content, preserving relative order. Both iterators must
// be positioned on the same source list, with end reachable forward from
// start; the source is reconnected around the hole, or becomes empty if
// the run covered it entirely.
//
// The destination must be empty; a non-empty destination is a fatal
// error.
func (l *List[T, E]) AssignToSublist(start, end *Iterator[T, E]) {
	if !l.Empty() {
		fatal("List.AssignToSublist", "destination list must be empty")
	}
	l.last = start.extractSublist(end)
}
