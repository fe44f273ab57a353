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

// Package testutil provides gocheck checkers shared by the package test
// suites.
package testutil

import (
	"fmt"
	"reflect"
	"regexp"

	"gopkg.in/check.v1"
)

type fatalPanicChecker struct {
	*check.CheckerInfo
}

// FatalPanicMatches is a Checker that runs the given function and checks
// that it panics with an error value whose message matches the provided
// regexp (anchored at both ends). It is used to cover the fatal
// precondition category: panics carrying a typed error rather than a
// plain string.
var FatalPanicMatches check.Checker = &fatalPanicChecker{
	&check.CheckerInfo{Name: "FatalPanicMatches", Params: []string{"function", "regex"}},
}

func (c *fatalPanicChecker) Check(params []interface{}, names []string) (result bool, errStr string) {
	f, ok := params[0].(func())
	if !ok {
		return false, "function must be a func()"
	}
	regex, ok := params[1].(string)
	if !ok {
		return false, "regex must be a string"
	}

	var recovered interface{}
	panicked := true
	func() {
		defer func() {
			recovered = recover()
		}()
		f()
		panicked = false
	}()
	if !panicked {
		return false, "function did not panic"
	}
	err, ok := recovered.(error)
	if !ok {
		return false, fmt.Sprintf("panic value %v (%T) is not an error", recovered, recovered)
	}
	matches, matchErr := regexp.MatchString("^("+regex+")$", err.Error())
	if matchErr != nil {
		return false, "cannot compile regex: " + matchErr.Error()
	}
	if !matches {
		params[0] = err.Error()
		names[0] = "panic message"
	}
	return matches, ""
}

type unsortedMatchesChecker struct {
	*check.CheckerInfo
}

// DeepUnsortedMatches is a Checker that compares two slices and checks
// that they hold the same multiset of elements, ignoring order. It is
// used where an operation is allowed to reorder elements but must not
// gain or lose any.
var DeepUnsortedMatches check.Checker = &unsortedMatchesChecker{
	&check.CheckerInfo{Name: "DeepUnsortedMatches", Params: []string{"obtained", "expected"}},
}

func (c *unsortedMatchesChecker) Check(params []interface{}, names []string) (result bool, error string) {
	obtained := reflect.ValueOf(params[0])
	expected := reflect.ValueOf(params[1])

	for i, v := range []reflect.Value{obtained, expected} {
		switch v.Kind() {
		case reflect.Slice, reflect.Array:
		default:
			return false, fmt.Sprintf("%s value is not a slice or array", names[i])
		}
	}
	if obtained.Type().Elem() != expected.Type().Elem() {
		return false, fmt.Sprintf("element types differ: %s vs %s",
			obtained.Type().Elem(), expected.Type().Elem())
	}
	if obtained.Len() != expected.Len() {
		return false, fmt.Sprintf("lengths differ: %d vs %d", obtained.Len(), expected.Len())
	}

	used := make([]bool, expected.Len())
	for i := 0; i < obtained.Len(); i++ {
		found := false
		for j := 0; j < expected.Len(); j++ {
			if used[j] {
				continue
			}
			if reflect.DeepEqual(obtained.Index(i).Interface(), expected.Index(j).Interface()) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false, fmt.Sprintf("extra element %v at index %d", obtained.Index(i).Interface(), i)
		}
	}
	return true, ""
}
