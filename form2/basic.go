// Package form2 exposes the must2 boundary primitives with error returns
// instead of panics, for callers that validate user input.
package form2

import (
	"fmt"
	"runtime/debug"

	"github.com/gasketforge/gasket/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Circle returns the boundary circle of the given radius.
func Circle(radius float64) (s *must2.Circle, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{panicObj: a, stack: string(debug.Stack())}
		}
	}()
	return must2.NewCircle(radius), err
}

// Box returns a 2d box with rounded corners when round > 0.
func Box(size r2.Vec, round float64) (s *must2.Box, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{panicObj: a, stack: string(debug.Stack())}
		}
	}()
	return must2.NewBox(size, round), err
}

// Obround returns a stadium with the given overall dimensions.
func Obround(long, short float64) (s *must2.Obround, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{panicObj: a, stack: string(debug.Stack())}
		}
	}()
	return must2.NewObround(long, short), err
}

// Ellipse returns an ellipse with the given overall diameters.
func Ellipse(long, short float64) (s *must2.Ellipse, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{panicObj: a, stack: string(debug.Stack())}
		}
	}()
	return must2.NewEllipse(long, short), err
}
