package object

import (
	"fmt"
	"reflect"
)

// InstantiationError is returned when no value of Type can be created.
type InstantiationError struct {
	Type   reflect.Type
	Reason string
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("can not instantiate type '%v': %s", e.Type, e.Reason)
}

// FieldAccessError is returned when a field can not be written.
type FieldAccessError struct {
	Type   reflect.Type
	Field  string
	Reason string
}

func (e *FieldAccessError) Error() string {
	return fmt.Sprintf("can not write field '%s' of type '%v': %s", e.Field, e.Type, e.Reason)
}

// DepthExceededError is returned when populating Type nests deeper than the populator allows,
// usually because the type refers to itself.
type DepthExceededError struct {
	Type     reflect.Type
	MaxDepth int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("max depth of %d exceeded while generating type '%v'", e.MaxDepth, e.Type)
}
