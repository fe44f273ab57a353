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

import (
	"fmt"
)

// FatalError is the panic value raised when a caller violates one of the
// package preconditions: using an unbound iterator, dereferencing an
// extracted element, extracting a malformed sublist range and so on.
// These are defects in the embedding code, never environmental failures,
// so they are not returned as ordinary errors and no caller is expected
// to recover from them.
type FatalError struct {
	// Op names the operation whose precondition was violated, e.g.
	// "Iterator.Exchange".
	Op string
	// Reason describes the violated precondition.
	Reason string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("elist2: %s: %s", e.Op, e.Reason)
}

func fatal(op, reason string) {
	panic(&FatalError{Op: op, Reason: reason})
}
