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

package elist2

// Iterator is a cursor over a List. It tracks the element it currently
// denotes plus that element's two neighbours, so it stays usable after
// the current element is extracted, exchanged or spliced away, possibly
// by a different iterator over the same list: the cursor then sits
// logically between its cached neighbours and heals on its next Forward
// or Backward.
//
// An iterator also records a cycle point, the ring position a traversal
// started from, so that CycledList can report when a walk has been all
// the way around. The usual visit-everything loop is
//
//	for it.MarkCyclePt(); !it.CycledList(); it.Forward() {
//		e := it.Data()
//		...
//	}
//
// Iterators are values; copying one yields an independent cursor over
// the same list. An iterator is only valid while its list is, and must
// not be used concurrently from multiple goroutines.
type Iterator[T any, E interface {
	*T
	Linker[E]
}] struct {
	list    *List[T, E]
	prev    E
	current E
	next    E

	cyclePt        E
	startedCycling bool

	// set when the extracted current element was the list's last
	// element, resp. this iterator's cycle point, so that later moves
	// and insertions can put those bookmarks back onto a live element
	exCurrentWasLast    bool
	exCurrentWasCyclePt bool
}

// NewIterator returns an iterator over l, positioned on the first
// element. On an empty list the iterator starts out unpositioned and
// picks up the first element added through it.
func NewIterator[T any, E interface {
	*T
	Linker[E]
}](l *List[T, E]) *Iterator[T, E] {
	it := &Iterator[T, E]{}
	it.SetToList(l)
	return it
}

// SetToList rebinds the iterator to l and positions it on the first
// element, forgetting any previous traversal state.
func (it *Iterator[T, E]) SetToList(l *List[T, E]) {
	if l == nil {
		fatal("Iterator.SetToList", "list is nil")
	}
	it.list = l
	it.prev = l.last
	it.current = l.Front()
	if it.current != nil {
		it.next = it.current.Next()
	} else {
		it.next = nil
	}
	it.cyclePt = nil // await MarkCyclePt
	it.startedCycling = false
	it.exCurrentWasLast = false
	it.exCurrentWasCyclePt = false
}

func (it *Iterator[T, E]) mustBeBound(op string) {
	if it.list == nil {
		fatal(op, "iterator is not bound to a list")
	}
}

// Empty returns true if the iterated list has no elements.
func (it *Iterator[T, E]) Empty() bool {
	it.mustBeBound("Iterator.Empty")
	return it.list.Empty()
}

// Length returns the number of elements on the iterated list.
func (it *Iterator[T, E]) Length() int {
	it.mustBeBound("Iterator.Length")
	return it.list.Length()
}

// CurrentExtracted returns true while the iterator is in the
// post-removal state, i.e. the element it denoted has been extracted and
// the cursor sits between its cached neighbours.
func (it *Iterator[T, E]) CurrentExtracted() bool {
	it.mustBeBound("Iterator.CurrentExtracted")
	return it.current == nil
}

// Data returns the element the iterator currently denotes. Calling it in
// the post-removal state is a fatal error.
func (it *Iterator[T, E]) Data() E {
	it.mustBeBound("Iterator.Data")
	if it.current == nil {
		fatal("Iterator.Data", "current element was extracted")
	}
	return it.current
}

// Forward moves the iterator to the next element of the ring and returns
// it, or returns nil if the list is empty. From the post-removal state
// it moves onto the cached next element, reinstating the cycle point
// there when the extracted element carried it.
func (it *Iterator[T, E]) Forward() E {
	it.mustBeBound("Iterator.Forward")
	if it.list.Empty() {
		return nil
	}

	if it.current != nil {
		it.prev = it.current
		it.startedCycling = true
		// fetch the neighbour from current itself, in case the
		// cached next was extracted by another iterator meanwhile
		it.current = it.current.Next()
	} else {
		if it.exCurrentWasCyclePt {
			it.cyclePt = it.next
		}
		it.current = it.next
	}
	it.next = it.current.Next()
	return it.current
}

// Backward is the mirror of Forward: it moves the iterator to the
// previous element of the ring.
func (it *Iterator[T, E]) Backward() E {
	it.mustBeBound("Iterator.Backward")
	if it.list.Empty() {
		return nil
	}

	if it.current != nil {
		it.next = it.current
		it.startedCycling = true
		it.current = it.current.Prev()
	} else {
		if it.exCurrentWasCyclePt {
			it.cyclePt = it.prev
		}
		it.current = it.prev
	}
	it.prev = it.current.Prev()
	return it.current
}

// DataRelative returns the element offset ring steps away from the
// iterator's effective position without moving the iterator. Positive
// offsets walk forward, negative ones backward; offsets larger than the
// ring simply wrap. In the post-removal state the cursor sits between
// its cached neighbours, so offset 1 returns the cached next element,
// -1 the cached previous one, and 0 the previous one as well. Calling it
// on an empty list is a fatal error.
func (it *Iterator[T, E]) DataRelative(offset int) E {
	it.mustBeBound("Iterator.DataRelative")
	if it.list.Empty() {
		fatal("Iterator.DataRelative", "list is empty")
	}

	var ptr E
	if offset < 0 {
		if it.current != nil {
			ptr = it.current
		} else {
			ptr = it.next
		}
		for ; offset < 0; offset++ {
			ptr = ptr.Prev()
		}
	} else {
		if it.current != nil {
			ptr = it.current
		} else {
			ptr = it.prev
		}
		for ; offset > 0; offset-- {
			ptr = ptr.Next()
		}
	}
	return ptr
}

// MarkCyclePt records the current ring position as the start of a
// traversal, so that CycledList turns true once the iterator has been
// all the way around and is back on it.
func (it *Iterator[T, E]) MarkCyclePt() {
	it.mustBeBound("Iterator.MarkCyclePt")
	if it.current != nil {
		it.cyclePt = it.current
	} else {
		it.exCurrentWasCyclePt = true
	}
	it.startedCycling = false
}

// CycledList returns true once the iterator has left its cycle point and
// come back to it, or trivially if the list is empty.
func (it *Iterator[T, E]) CycledList() bool {
	it.mustBeBound("Iterator.CycledList")
	return it.list.Empty() || (it.current == it.cyclePt && it.startedCycling)
}

// AtFirst returns true if the iterator is on the first element of the
// list, or just extracted it, or the list is empty.
func (it *Iterator[T, E]) AtFirst() bool {
	it.mustBeBound("Iterator.AtFirst")
	return it.list.Empty() || it.current == it.list.Front() ||
		(it.current == nil && it.prev == it.list.last && !it.exCurrentWasLast)
}

// AtLast returns true if the iterator is on the last element of the
// list, or just extracted it, or the list is empty.
func (it *Iterator[T, E]) AtLast() bool {
	it.mustBeBound("Iterator.AtLast")
	return it.list.Empty() || it.current == it.list.last ||
		(it.current == nil && it.prev == it.list.last && it.exCurrentWasLast)
}

// MoveToFirst positions the iterator on the first element of the list
// and returns it, or nil if the list is empty.
func (it *Iterator[T, E]) MoveToFirst() E {
	it.mustBeBound("Iterator.MoveToFirst")
	it.current = it.list.Front()
	it.prev = it.list.last
	if it.current != nil {
		it.next = it.current.Next()
	} else {
		it.next = nil
	}
	return it.current
}

// MoveToLast positions the iterator on the last element of the list and
// returns it, or nil if the list is empty.
func (it *Iterator[T, E]) MoveToLast() E {
	it.mustBeBound("Iterator.MoveToLast")
	it.current = it.list.last
	if it.current != nil {
		it.prev = it.current.Prev()
		it.next = it.current.Next()
	} else {
		it.prev = nil
		it.next = nil
	}
	return it.current
}

// AddAfterThenMove inserts e immediately after the current position and
// moves the iterator onto it. From the post-removal state the insertion
// happens between the cached neighbours, and e inherits the extracted
// element's last-element and cycle-point bookmarks.
func (it *Iterator[T, E]) AddAfterThenMove(e E) {
	it.mustBeBound("Iterator.AddAfterThenMove")
	if e == nil {
		fatal("Iterator.AddAfterThenMove", "element is nil")
	}

	if it.list.Empty() {
		e.SetNext(e)
		e.SetPrev(e)
		it.list.last = e
		it.prev = e
		it.next = e
	} else {
		e.SetNext(it.next)
		it.next.SetPrev(e)

		if it.current != nil {
			e.SetPrev(it.current)
			it.current.SetNext(e)
			it.prev = it.current
			if it.current == it.list.last {
				it.list.last = e
			}
		} else {
			// current was extracted
			e.SetPrev(it.prev)
			it.prev.SetNext(e)
			if it.exCurrentWasLast {
				it.list.last = e
			}
			if it.exCurrentWasCyclePt {
				it.cyclePt = e
			}
		}
	}
	it.current = e
}

// AddAfterStayPut inserts e immediately after the current position
// without moving the iterator.
func (it *Iterator[T, E]) AddAfterStayPut(e E) {
	it.mustBeBound("Iterator.AddAfterStayPut")
	if e == nil {
		fatal("Iterator.AddAfterStayPut", "element is nil")
	}

	if it.list.Empty() {
		e.SetNext(e)
		e.SetPrev(e)
		it.list.last = e
		it.prev = e
		it.next = e
		it.exCurrentWasLast = false
		it.current = nil
	} else {
		e.SetNext(it.next)
		it.next.SetPrev(e)

		if it.current != nil {
			e.SetPrev(it.current)
			it.current.SetNext(e)
			if it.prev == it.current {
				it.prev = e
			}
			if it.current == it.list.last {
				it.list.last = e
			}
		} else {
			// current was extracted
			e.SetPrev(it.prev)
			it.prev.SetNext(e)
			if it.exCurrentWasLast {
				it.list.last = e
				it.exCurrentWasLast = false
			}
		}
		it.next = e
	}
}

// AddBeforeThenMove inserts e immediately before the current position
// and moves the iterator onto it.
func (it *Iterator[T, E]) AddBeforeThenMove(e E) {
	it.mustBeBound("Iterator.AddBeforeThenMove")
	if e == nil {
		fatal("Iterator.AddBeforeThenMove", "element is nil")
	}

	if it.list.Empty() {
		e.SetNext(e)
		e.SetPrev(e)
		it.list.last = e
		it.prev = e
		it.next = e
	} else {
		it.prev.SetNext(e)
		e.SetPrev(it.prev)

		if it.current != nil {
			e.SetNext(it.current)
			it.current.SetPrev(e)
			it.next = it.current
		} else {
			// current was extracted
			e.SetNext(it.next)
			it.next.SetPrev(e)
			if it.exCurrentWasLast {
				it.list.last = e
			}
			if it.exCurrentWasCyclePt {
				it.cyclePt = e
			}
		}
	}
	it.current = e
}

// AddBeforeStayPut inserts e immediately before the current position
// without moving the iterator.
func (it *Iterator[T, E]) AddBeforeStayPut(e E) {
	it.mustBeBound("Iterator.AddBeforeStayPut")
	if e == nil {
		fatal("Iterator.AddBeforeStayPut", "element is nil")
	}

	if it.list.Empty() {
		e.SetNext(e)
		e.SetPrev(e)
		it.list.last = e
		it.prev = e
		it.next = e
		it.exCurrentWasLast = true
		it.current = nil
	} else {
		it.prev.SetNext(e)
		e.SetPrev(it.prev)

		if it.current != nil {
			e.SetNext(it.current)
			it.current.SetPrev(e)
			if it.next == it.current {
				it.next = e
			}
		} else {
			// current was extracted
			e.SetNext(it.next)
			it.next.SetPrev(e)
			if it.exCurrentWasLast {
				it.list.last = e
			}
		}
		it.prev = e
	}
}

// AddListAfter splices the whole of src in after the current position
// without moving the iterator, leaving src empty. Does nothing if src is
// empty.
func (it *Iterator[T, E]) AddListAfter(src *List[T, E]) {
	it.mustBeBound("Iterator.AddListAfter")
	if src == nil {
		fatal("Iterator.AddListAfter", "source list is nil")
	}
	if src.Empty() {
		return
	}

	if it.list.Empty() {
		it.list.last = src.last
		it.prev = it.list.last
		it.next = it.list.Front()
		it.exCurrentWasLast = true
		it.current = nil
	} else {
		if it.current != nil {
			it.current.SetNext(src.Front())
			it.current.Next().SetPrev(it.current)
			if it.current == it.list.last {
				it.list.last = src.last
			}
			src.last.SetNext(it.next)
			it.next.SetPrev(src.last)
			it.next = it.current.Next()
		} else {
			// current was extracted
			it.prev.SetNext(src.Front())
			it.prev.Next().SetPrev(it.prev)
			if it.exCurrentWasLast {
				it.list.last = src.last
				it.exCurrentWasLast = false
			}
			src.last.SetNext(it.next)
			it.next.SetPrev(src.last)
			it.next = it.prev.Next()
		}
	}
	src.last = nil
}

// AddListBefore splices the whole of src in before the current position
// and moves the iterator onto the first added element, leaving src
// empty. Does nothing if src is empty.
func (it *Iterator[T, E]) AddListBefore(src *List[T, E]) {
	it.mustBeBound("Iterator.AddListBefore")
	if src == nil {
		fatal("Iterator.AddListBefore", "source list is nil")
	}
	if src.Empty() {
		return
	}

	if it.list.Empty() {
		it.list.last = src.last
		it.prev = it.list.last
		it.current = it.list.Front()
		it.next = it.current.Next()
		it.exCurrentWasLast = false
	} else {
		it.prev.SetNext(src.Front())
		it.prev.Next().SetPrev(it.prev)

		if it.current != nil {
			src.last.SetNext(it.current)
			it.current.SetPrev(src.last)
		} else {
			// current was extracted
			src.last.SetNext(it.next)
			it.next.SetPrev(src.last)
			if it.exCurrentWasLast {
				it.list.last = src.last
			}
			if it.exCurrentWasCyclePt {
				it.cyclePt = it.prev.Next()
			}
		}
		it.current = it.prev.Next()
		it.next = it.current.Next()
	}
	src.last = nil
}

// AddToEnd appends e at the tail of the list without moving the
// iterator.
func (it *Iterator[T, E]) AddToEnd(e E) {
	it.mustBeBound("Iterator.AddToEnd")
	if e == nil {
		fatal("Iterator.AddToEnd", "element is nil")
	}

	if it.AtLast() {
		it.AddAfterStayPut(e)
	} else if it.AtFirst() {
		it.AddBeforeStayPut(e)
		it.list.last = e
	} else {
		// nowhere near the join: use a throwaway iterator at the tail
		endIt := NewIterator(it.list)
		endIt.MoveToLast()
		endIt.AddAfterStayPut(e)
	}
}

// Extract unlinks the current element from the list and returns it,
// leaving the iterator in the post-removal state between its cached
// neighbours. Whether the element carried the list's last-element mark
// or this iterator's cycle point is remembered, so a later move or
// insertion can hand the bookmark to a live element. Extracting twice
// without an intervening move is a fatal error.
func (it *Iterator[T, E]) Extract() E {
	it.mustBeBound("Iterator.Extract")
	if it.list.Empty() {
		fatal("Iterator.Extract", "list is empty")
	}
	if it.current == nil {
		fatal("Iterator.Extract", "current element already extracted")
	}

	if it.list.Singleton() {
		// the extracted element cannot be the cached neighbour of
		// anything anymore
		it.prev = nil
		it.next = nil
		it.list.last = nil
	} else {
		it.prev.SetNext(it.next)
		it.next.SetPrev(it.prev)

		if it.current == it.list.last {
			it.list.last = it.prev
			it.exCurrentWasLast = true
		} else {
			it.exCurrentWasLast = false
		}
	}
	// always record this so a following move can relocate the cycle
	// point
	it.exCurrentWasCyclePt = it.current == it.cyclePt

	extracted := it.current
	extracted.SetNext(nil)
	extracted.SetPrev(nil)
	it.current = nil
	return extracted
}

// Exchange swaps the ring positions of this iterator's current element
// and other's current element, which may live on the same list or on two
// different lists; no other element's relative order changes. Afterwards
// each iterator denotes the element the other one denoted on entry, and
// any last-element reference or cycle point that named one of the moved
// elements is updated to name the element now in that position.
//
// Exchanging an element with itself is a no-op, as is calling Exchange
// while either list is empty. Calling it while either iterator is in the
// post-removal state is a fatal error.
func (it *Iterator[T, E]) Exchange(other *Iterator[T, E]) {
	it.mustBeBound("Iterator.Exchange")
	if other == nil {
		fatal("Iterator.Exchange", "other iterator is nil")
	}
	other.mustBeBound("Iterator.Exchange")

	if it.list.Empty() || other.list.Empty() || it.current == other.current {
		return
	}
	if it.current == nil || other.current == nil {
		fatal("Iterator.Exchange", "can't exchange extracted elements")
	}

	// Four structurally distinct cases: doubleton ring shared by both
	// iterators; adjacent elements with other before this; adjacent
	// elements with this before other; no adjacency at all. Only the
	// neighbour slots actually touched by each case are renamed, so the
	// ring is never left open.
	if it.next == other.current || other.next == it.current {
		if it.next == other.current && other.next == it.current {
			// doubleton: the ring itself is unchanged, only the
			// labels move
			it.prev = it.current
			it.next = it.current
			other.prev = other.current
			other.next = other.current
		} else if other.next == it.current {
			// other immediately before this
			other.prev.SetNext(it.current)
			other.current.SetNext(it.next)
			other.current.SetPrev(it.current)
			it.current.SetNext(other.current)
			it.current.SetPrev(other.prev)
			it.next.SetPrev(other.current)

			other.next = other.current
			it.prev = it.current
		} else {
			// this immediately before other
			it.prev.SetNext(other.current)
			it.current.SetNext(other.next)
			it.current.SetPrev(other.current)
			other.current.SetNext(it.current)
			other.current.SetPrev(it.prev)
			other.next.SetPrev(it.current)

			it.next = it.current
			other.prev = other.current
		}
	} else {
		// no overlap, same ring or not: drop each element into the
		// other's old position. A singleton ring collapses onto the
		// incoming element alone, its old occupant being its only
		// neighbour.
		if it.next == it.current {
			other.current.SetNext(other.current)
			other.current.SetPrev(other.current)
		} else {
			it.prev.SetNext(other.current)
			it.next.SetPrev(other.current)
			other.current.SetNext(it.next)
			other.current.SetPrev(it.prev)
		}
		if other.next == other.current {
			it.current.SetNext(it.current)
			it.current.SetPrev(it.current)
		} else {
			other.prev.SetNext(it.current)
			other.next.SetPrev(it.current)
			it.current.SetNext(other.next)
			it.current.SetPrev(other.prev)
		}
	}

	// last-element references and cycle points are identity bookmarks,
	// not order bookmarks: whichever of them named a moved element must
	// now name its replacement (the two iterators may be over different
	// lists)
	itLastMoved := it.list.last == it.current
	otherLastMoved := other.list.last == other.current
	if itLastMoved {
		it.list.last = other.current
	}
	if otherLastMoved {
		other.list.last = it.current
	}
	a, b := it.current, other.current
	if it.cyclePt == a {
		it.cyclePt = b
	} else if it.cyclePt == b {
		it.cyclePt = a
	}
	if other.cyclePt == a {
		other.cyclePt = b
	} else if other.cyclePt == b {
		other.cyclePt = a
	}

	it.current, other.current = other.current, it.current
}

// Sort sorts the iterated list with cmp, as List.Sort does, then
// repositions the iterator on the new first element.
func (it *Iterator[T, E]) Sort(cmp func(a, b E) int) {
	it.mustBeBound("Iterator.Sort")
	it.list.Sort(cmp)
	it.MoveToFirst()
}

// extractSublist detaches the inclusive run of elements from this
// iterator's current position through other's current position, closes
// the run into a ring of its own and returns that ring's last element;
// List.AssignToSublist then adopts the ring wholesale. Both iterators
// must be positioned on the same list. The source list is reconnected
// around the hole, or emptied when the run covered it entirely, and its
// last-element reference is pulled back before the hole when the run
// swallowed it. Both iterators end up in the post-removal state, with
// their was-last and was-cycle-point flags recorded for every node the
// sweep visited so that later moves stay consistent.
func (it *Iterator[T, E]) extractSublist(other *Iterator[T, E]) E {
	it.mustBeBound("Iterator.extractSublist")
	if other == nil {
		fatal("Iterator.extractSublist", "other iterator is nil")
	}
	other.mustBeBound("Iterator.extractSublist")
	if it.list != other.list {
		fatal("Iterator.extractSublist", "can't extract a sublist between points on different lists")
	}
	if it.list.Empty() {
		fatal("Iterator.extractSublist", "list is empty")
	}
	if it.current == nil || other.current == nil {
		fatal("Iterator.extractSublist", "can't extract a sublist marked by extracted elements")
	}

	it.exCurrentWasLast = false
	other.exCurrentWasLast = false
	it.exCurrentWasCyclePt = false
	other.exCurrentWasCyclePt = false

	// The last-element reassignment is deferred until the end point has
	// actually been met, so that the unreachable-end fatal below leaves
	// the source list untouched.
	lastInRun := false

	tempIt := *it
	tempIt.MarkCyclePt()
	for {
		if tempIt.CycledList() {
			// came all the way around without meeting other
			fatal("Iterator.extractSublist", "can't find the sublist end point in the source list")
		}

		if tempIt.AtLast() {
			lastInRun = true
			it.exCurrentWasLast = true
			other.exCurrentWasLast = true
		}
		if tempIt.current == it.cyclePt {
			it.exCurrentWasCyclePt = true
		}
		if tempIt.current == other.cyclePt {
			other.exCurrentWasCyclePt = true
		}

		tempIt.Forward()
		// the run is inclusive of other's element
		if tempIt.prev == other.current {
			break
		}
	}

	if lastInRun {
		it.list.last = it.prev
	}

	// close the detached run into its own ring
	other.current.SetNext(it.current)
	it.current.SetPrev(other.current)
	endOfNewList := other.current

	if it.prev == other.current {
		// the run was the whole list
		it.list.last = nil
		it.prev = nil
		it.current = nil
		it.next = nil
		other.prev = nil
		other.current = nil
		other.next = nil
	} else {
		it.prev.SetNext(other.next)
		other.next.SetPrev(it.prev)

		it.current = nil
		other.current = nil
		it.next = other.next
		other.prev = it.prev
	}
	return endOfNewList
}
