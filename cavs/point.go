//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package cavs

import (
	"fmt"
)

// Point specifies a position in a test vector file.
type Point struct {
	Source string
	Line   int // 1-based
}

func (p Point) String() string {
	if p.Undefined() {
		return p.Source
	}
	return fmt.Sprintf("%s:%d", p.Source, p.Line)
}

// Undefined tests if the input position is undefined.
func (p Point) Undefined() bool {
	return p.Line == 0
}

// Errorf creates an error with the input position p.
func (p Point) Errorf(format string, a ...interface{}) error {
	return &Error{
		Point: p,
		Err:   fmt.Errorf(format, a...),
	}
}

// Error is a test vector file error with its input position.
type Error struct {
	Point Point
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Point, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
