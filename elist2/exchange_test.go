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

package elist2_test

import (
	. "gopkg.in/check.v1"

	"github.com/epie-godfred/tesseract/elist2"
	"github.com/epie-godfred/tesseract/testutil"
)

type exchangeSuite struct{}

var _ = Suite(&exchangeSuite{})

func (s *exchangeSuite) TestAdjacentThisBeforeOther(c *C) {
	l := makeList(1, 2, 3, 4)
	itA := iterAt(c, l, 2)
	itB := iterAt(c, l, 3)

	itA.Exchange(itB)
	c.Check(listVals(l), DeepEquals, []int{1, 3, 2, 4})
	// each iterator now denotes what the other denoted on entry
	c.Check(itA.Data().val, Equals, 3)
	c.Check(itB.Data().val, Equals, 2)
}

func (s *exchangeSuite) TestAdjacentOtherBeforeThis(c *C) {
	l := makeList(1, 2, 3, 4)
	itA := iterAt(c, l, 3)
	itB := iterAt(c, l, 2)

	itA.Exchange(itB)
	c.Check(listVals(l), DeepEquals, []int{1, 3, 2, 4})
	c.Check(itA.Data().val, Equals, 2)
	c.Check(itB.Data().val, Equals, 3)
}

func (s *exchangeSuite) TestDoubleton(c *C) {
	l := makeList(1, 2)
	itA := iterAt(c, l, 1)
	itB := iterAt(c, l, 2)

	itA.Exchange(itB)
	c.Check(listVals(l), DeepEquals, []int{2, 1})
	c.Check(itA.Data().val, Equals, 2)
	c.Check(itB.Data().val, Equals, 1)
}

func (s *exchangeSuite) TestNonAdjacentSameList(c *C) {
	l := makeList(1, 2, 3, 4, 5)
	itA := iterAt(c, l, 2)
	itB := iterAt(c, l, 5)

	itA.Exchange(itB)
	c.Check(listVals(l), DeepEquals, []int{1, 5, 3, 4, 2})
	// element 2 took over the old tail position
	c.Check(l.Back().val, Equals, 2)
	c.Check(itA.Data().val, Equals, 5)
	c.Check(itB.Data().val, Equals, 2)
}

func (s *exchangeSuite) TestFirstAndLastAreRingAdjacent(c *C) {
	// the first and last elements are neighbours on the ring, so this
	// exercises the adjacent case across the join
	l := makeList(1, 2, 3, 4)
	itA := iterAt(c, l, 4)
	itB := iterAt(c, l, 1)

	itA.Exchange(itB)
	c.Check(listVals(l), DeepEquals, []int{4, 2, 3, 1})
	c.Check(l.Back().val, Equals, 1)
}

func (s *exchangeSuite) TestCrossList(c *C) {
	lA := makeList(1, 2, 3)
	lB := makeList(7, 8, 9)
	itA := iterAt(c, lA, 2)
	itB := iterAt(c, lB, 8)

	itA.Exchange(itB)
	c.Check(listVals(lA), DeepEquals, []int{1, 8, 3})
	c.Check(listVals(lB), DeepEquals, []int{7, 2, 9})
	c.Check(itA.Data().val, Equals, 8)
	c.Check(itB.Data().val, Equals, 2)
}

func (s *exchangeSuite) TestCrossListSingletons(c *C) {
	lA := makeList(1)
	lB := makeList(2)
	itA := elist2.NewIterator(lA)
	itB := elist2.NewIterator(lB)

	itA.Exchange(itB)
	c.Check(listVals(lA), DeepEquals, []int{2})
	c.Check(listVals(lB), DeepEquals, []int{1})
	c.Check(lA.Singleton(), Equals, true)
	c.Check(lB.Singleton(), Equals, true)
	c.Check(lA.Length(), Equals, 1)
	c.Check(lB.Length(), Equals, 1)
}

func (s *exchangeSuite) TestSingletonIntoLargerList(c *C) {
	lA := makeList(1)
	lB := makeList(7, 8, 9)
	itA := elist2.NewIterator(lA)
	itB := iterAt(c, lB, 8)

	itA.Exchange(itB)
	c.Check(listVals(lA), DeepEquals, []int{8})
	c.Check(listVals(lB), DeepEquals, []int{7, 1, 9})
}

func (s *exchangeSuite) TestLastPointerHealsOnBothLists(c *C) {
	lA := makeList(1, 2)
	lB := makeList(7, 8)
	itA := iterAt(c, lA, 2) // lA's last
	itB := iterAt(c, lB, 8) // lB's last

	itA.Exchange(itB)
	c.Check(listVals(lA), DeepEquals, []int{1, 8})
	c.Check(listVals(lB), DeepEquals, []int{7, 2})
	c.Check(lA.Back().val, Equals, 8)
	c.Check(lB.Back().val, Equals, 2)
}

func (s *exchangeSuite) TestCyclePointFollowsMovedElement(c *C) {
	l := makeList(1, 2, 3, 4)
	itA := iterAt(c, l, 2)
	itA.MarkCyclePt()
	itB := iterAt(c, l, 4)

	itA.Exchange(itB)
	c.Check(listVals(l), DeepEquals, []int{1, 4, 3, 2})

	// the cycle point moved with the exchange, so one lap from here
	// still terminates after visiting the other three elements
	visited := []int{}
	for itA.Forward(); !itA.CycledList(); itA.Forward() {
		visited = append(visited, itA.Data().val)
		if len(visited) > 5 {
			c.Fatal("traversal did not terminate")
		}
	}
	c.Check(visited, DeepEquals, []int{3, 2, 1})
}

func (s *exchangeSuite) TestSameElementIsNoop(c *C) {
	l := makeList(1, 2, 3)
	itA := iterAt(c, l, 2)
	itB := iterAt(c, l, 2)

	itA.Exchange(itB)
	c.Check(listVals(l), DeepEquals, []int{1, 2, 3})
	c.Check(itA.Data().val, Equals, 2)
}

func (s *exchangeSuite) TestEmptyListIsNoop(c *C) {
	lA := &spanList{}
	lB := makeList(1)
	itA := elist2.NewIterator(lA)
	itB := elist2.NewIterator(lB)

	itA.Exchange(itB)
	c.Check(lA.Empty(), Equals, true)
	c.Check(listVals(lB), DeepEquals, []int{1})
}

func (s *exchangeSuite) TestExtractedCurrentIsFatal(c *C) {
	l := makeList(1, 2, 3)
	itA := iterAt(c, l, 2)
	itB := iterAt(c, l, 3)
	itA.Extract()

	c.Check(func() { itA.Exchange(itB) }, testutil.FatalPanicMatches,
		`elist2: Iterator\.Exchange: can't exchange extracted elements`)
}
