package object

import (
	"reflect"

	"github.com/anthonyraymond/randomizer/pkg/randutils"
)

// Context carries the state of a single populate call. It must not be shared between calls.
type Context struct {
	populator *Populator
	source    randutils.Source
	depth     int
}

func (p *Populator) newContext(src randutils.Source) *Context {
	return &Context{populator: p, source: src}
}

// Source is the source every value of this call is drawn from.
func (c *Context) Source() randutils.Source {
	return c.source
}

// Depth is the current nesting level. A generator called for the value being populated sees 1.
func (c *Context) Depth() int {
	return c.depth
}

// Generate returns a random value of typ, dispatched like any field of that type.
// Custom generators use it to fill nested values.
func (c *Context) Generate(typ reflect.Type) (reflect.Value, error) {
	return c.generate(typ, noTag)
}
