// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package status defines the outcome codes shared by the tree and the map
// and the errors that carry them.
//
// Errors are built on top of github.com/ansel1/merry so that every error
// returned by a container carries a stack trace and its Code as a value.
// A nil error always means OK.
package status

import (
	"fmt"

	"github.com/ansel1/merry"
)

// Code classifies the outcome of a container operation.
type Code int

// The tree codes. Their values are stable so that they can be logged and
// compared across components.
const (
	// OK is the code of a nil error.
	OK Code = 0
	// ContainerNull is reported for a nil or destroyed container.
	ContainerNull Code = -1
	// ContainerEmpty is reported when an operation needs at least one
	// element.
	ContainerEmpty Code = -2
	// ElementNull is reported for a nil element or probe.
	ElementNull Code = -3
	// DuplicateElement is reported when inserting an element equal to a
	// stored one into a container which disallows duplicates.
	DuplicateElement Code = -4
	// MissingCallback is reported when a required comparator, visitor or
	// destructor was not supplied.
	MissingCallback Code = -5
	// NodeAllocation is reported when a node could not be produced for an
	// insertion; the container is left as it was.
	NodeAllocation Code = -6
	// Unknown is returned by Of for errors that carry no Code.
	Unknown Code = -100
)

// Map codes are a relabeling of the tree codes.
const (
	KeyNull          = ElementNull
	DuplicateKey     = DuplicateElement
	PairCallbackNull = MissingCallback
)

const codeKey = "status"

var codeNames = map[Code]string{
	OK:               "ok",
	ContainerNull:    "container is null",
	ContainerEmpty:   "container is empty",
	ElementNull:      "element is null",
	DuplicateElement: "element is duplicated",
	MissingCallback:  "callback is null",
	NodeAllocation:   "node allocation failed",
	Unknown:          "unknown",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Value returns the int value of the code.
func (c Code) Value() int {
	return int(c)
}

// NewError creates a new error annotated with the given code using the
// format string and arguments.
func NewError(code Code, format string, a ...interface{}) error {
	return merry.WrapSkipping(fmt.Errorf(format, a...), 1).WithValue(codeKey, code)
}

// AddCode annotates an existing error with code. A nil error is turned into
// a new error whose message is the code's description, since the caller
// clearly intends a failure.
func AddCode(e error, code Code) error {
	if e == nil {
		return merry.New(code.String()).WithValue(codeKey, code)
	}
	return merry.WrapSkipping(e, 1).WithValue(codeKey, code)
}

// Of extracts the code from err. A nil error is OK and an error which was
// not produced by this package is Unknown.
func Of(e error) Code {
	if e == nil {
		return OK
	}
	if c, ok := merry.Value(e, codeKey).(Code); ok {
		return c
	}
	return Unknown
}

// Is reports whether err carries code.
func Is(e error, code Code) bool {
	return Of(e) == code
}

// Location returns the file and line at which err was created, or zero
// values if it carries no stack.
func Location(e error) (file string, line int) {
	return merry.Location(e)
}
