package object

import (
	"reflect"
	"sync"

	"github.com/anthonyraymond/randomizer/pkg/algorithm"
	"github.com/anthonyraymond/randomizer/pkg/logs"
	"github.com/anthonyraymond/randomizer/pkg/number"
	"github.com/anthonyraymond/randomizer/pkg/randutils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// GeneratorFunc produces a random value of the type it is registered for.
type GeneratorFunc func(c *Context) (reflect.Value, error)

// Registry maps types to their generator and holds the declared constants of enum types.
// It is safe for concurrent use.
type Registry struct {
	lock       sync.RWMutex
	generators map[reflect.Type]GeneratorFunc
	enums      map[reflect.Type][]reflect.Value
	enumNames  map[string]reflect.Type
}

// NewRegistry returns a registry holding the built-in generators.
func NewRegistry() *Registry {
	r := &Registry{
		generators: map[reflect.Type]GeneratorFunc{},
		enums:      map[reflect.Type][]reflect.Value{},
		enumNames:  map[string]reflect.Type{},
	}
	registerBuiltins(r)
	return r
}

// Register sets the generator of typ, replacing any previous one.
func (r *Registry) Register(typ reflect.Type, fn GeneratorFunc) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.generators[typ] = fn
}

// RegisterFunc registers a typed generator for T.
func RegisterFunc[T any](r *Registry, fn func(c *Context) (T, error)) {
	r.Register(reflect.TypeFor[T](), func(c *Context) (reflect.Value, error) {
		v, err := fn(c)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(&v).Elem(), nil
	})
}

// RegisterEnum declares the constants of T. Generated values of T are always one of them.
func RegisterEnum[T comparable](r *Registry, values ...T) error {
	typ := reflect.TypeFor[T]()
	if len(values) == 0 {
		return errors.Errorf("enum '%v' must declare at least one value", typ)
	}
	constants := make([]reflect.Value, 0, len(values))
	for _, v := range values {
		constants = append(constants, reflect.ValueOf(v))
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	r.enums[typ] = constants
	r.enumNames[typ.String()] = typ
	if typ.PkgPath() != "" {
		r.enumNames[typ.PkgPath()+"."+typ.Name()] = typ
	}
	return nil
}

// EnumByName resolves a registered enum type by its short name ("pkg.Type") or its full import path.
func (r *Registry) EnumByName(name string) (reflect.Type, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	typ, ok := r.enumNames[name]
	return typ, ok
}

// RandomEnumByName returns one constant of the enum registered as name, or nil when the
// name does not resolve.
func (r *Registry) RandomEnumByName(name string, src randutils.Source) interface{} {
	typ, ok := r.EnumByName(name)
	if !ok {
		logs.GetLogger().Warn("unresolved enum type name, no value generated", zap.String("enum", name))
		return nil
	}
	values, _ := r.enumValues(typ)
	return pickValue(values, algorithm.SecureRandom, src).Interface()
}

// RandomEnumOf returns one of the registered constants of T.
func RandomEnumOf[T comparable](r *Registry, src randutils.Source) (T, bool) {
	var zero T
	values, ok := r.enumValues(reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	return pickValue(values, algorithm.SecureRandom, src).Interface().(T), true
}

func (r *Registry) lookup(typ reflect.Type) (GeneratorFunc, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	fn, ok := r.generators[typ]
	return fn, ok
}

func (r *Registry) enumValues(typ reflect.Type) ([]reflect.Value, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	values, ok := r.enums[typ]
	return values, ok
}

func pickValue(values []reflect.Value, alg algorithm.RandomAlgorithm, src randutils.Source) reflect.Value {
	idx, _ := number.IntN(len(values), alg, src)
	return values[idx]
}
