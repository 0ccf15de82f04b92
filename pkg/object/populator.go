// Package object fills values of arbitrary Go types with random data.
//
// A Populator walks every field of a struct, including unexported ones and the ones
// promoted from embedded structs, and assigns each a value produced by the generator
// registered for its type. Fields tagged `random:"-"` and fields named in the
// exclusions keep their current value.
package object

import (
	"context"
	"reflect"
	"unsafe"

	"github.com/anthonyraymond/randomizer/pkg/algorithm"
	"github.com/anthonyraymond/randomizer/pkg/logs"
	"github.com/anthonyraymond/randomizer/pkg/randutils"
	"github.com/anthonyraymond/randomizer/pkg/text"
	"github.com/mohae/deepcopy"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultMaxDepth    = 32
	DefaultMinElements = 1
	DefaultMaxElements = 5
)

type Populator struct {
	source          randutils.Source
	registry        *Registry
	algorithm       algorithm.RandomAlgorithm
	maxDepth        int
	minElements     int
	maxElements     int
	minStringLength int
	maxStringLength int
	forceUnexported bool
}

type Option func(p *Populator)

// WithSource sets the source draws are taken from when the call does not carry one.
func WithSource(src randutils.Source) Option {
	return func(p *Populator) { p.source = src }
}

func WithRegistry(r *Registry) Option {
	return func(p *Populator) { p.registry = r }
}

// WithAlgorithm sets the algorithm used to pick booleans and enum constants.
func WithAlgorithm(alg algorithm.RandomAlgorithm) Option {
	return func(p *Populator) { p.algorithm = alg.OrDefault() }
}

func WithMaxDepth(depth int) Option {
	return func(p *Populator) { p.maxDepth = depth }
}

// WithElements bounds the length of generated slices and maps.
func WithElements(atLeast int, atMost int) Option {
	return func(p *Populator) {
		p.minElements = atLeast
		p.maxElements = atMost
	}
}

func WithStringLength(atLeast int, atMost int) Option {
	return func(p *Populator) {
		p.minStringLength = atLeast
		p.maxStringLength = atMost
	}
}

// WithForceUnexported decides whether unexported fields are written. When disabled, populating
// a type with an unexported field that is neither excluded nor tagged `random:"-"` fails.
func WithForceUnexported(force bool) Option {
	return func(p *Populator) { p.forceUnexported = force }
}

func NewPopulator(opts ...Option) (*Populator, error) {
	p := &Populator{
		algorithm:       algorithm.Default,
		maxDepth:        DefaultMaxDepth,
		minElements:     DefaultMinElements,
		maxElements:     DefaultMaxElements,
		minStringLength: text.MinRandomStringLength,
		maxStringLength: text.MaxRandomStringLength,
		forceUnexported: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.source == nil {
		p.source = randutils.Default()
	}
	if p.registry == nil {
		p.registry = NewRegistry()
	}

	if p.maxDepth < 1 {
		return nil, errors.Errorf("max depth must be at least 1, got %d", p.maxDepth)
	}
	if p.minElements < 0 || p.maxElements < p.minElements {
		return nil, errors.Errorf("element bounds [%d, %d] are not valid", p.minElements, p.maxElements)
	}
	if p.minStringLength < 0 || p.maxStringLength < p.minStringLength {
		return nil, errors.Errorf("string length bounds [%d, %d] are not valid", p.minStringLength, p.maxStringLength)
	}
	return p, nil
}

// MustNewPopulator is like NewPopulator but panics on invalid options.
func MustNewPopulator(opts ...Option) *Populator {
	p, err := NewPopulator(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Populator) Registry() *Registry {
	return p.registry
}

// NewRandomObject creates a value of typ and fills it. Excluded fields are left zero.
func (p *Populator) NewRandomObject(typ reflect.Type, exclusions ...string) (reflect.Value, error) {
	return p.NewRandomObjectContext(context.Background(), typ, exclusions...)
}

// NewRandomObjectContext is NewRandomObject drawing from the source carried by ctx, if any.
func (p *Populator) NewRandomObjectContext(ctx context.Context, typ reflect.Type, exclusions ...string) (reflect.Value, error) {
	if err := instantiable(typ); err != nil {
		return reflect.Value{}, err
	}
	ptr := reflect.New(typ)
	if err := p.fill(ctx, ptr.Elem(), exclusions); err != nil {
		return reflect.Value{}, err
	}
	return ptr.Elem(), nil
}

// SetRandomValues fills the value ptr points to. Fields named in exclusions are not modified.
func (p *Populator) SetRandomValues(ptr interface{}, exclusions ...string) error {
	return p.SetRandomValuesContext(context.Background(), ptr, exclusions...)
}

func (p *Populator) SetRandomValuesContext(ctx context.Context, ptr interface{}, exclusions ...string) error {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return errors.Errorf("a non nil pointer is required, got '%T'", ptr)
	}
	return p.fill(ctx, v.Elem(), exclusions)
}

// NewRandomCopy returns a deep copy of obj with every field re-randomized except the excluded
// and immutable ones, which keep the value they have in obj. obj itself is never modified.
func (p *Populator) NewRandomCopy(obj interface{}, exclusions ...string) (interface{}, error) {
	if obj == nil {
		return nil, &InstantiationError{Reason: "can not copy nil"}
	}
	original := reflect.ValueOf(obj)
	if original.Kind() == reflect.Ptr && original.IsNil() {
		return nil, &InstantiationError{Type: original.Type(), Reason: "can not copy a nil pointer"}
	}

	addressable := reflect.New(original.Type())
	addressable.Elem().Set(original)
	holder := reflect.New(original.Type())
	holder.Elem().Set(reflect.ValueOf(deepcopy.Copy(obj)))

	if dst, src, ok := p.structTargets(holder.Elem(), addressable.Elem()); ok {
		p.keepFields(dst, src, toSet(exclusions))
	}
	if err := p.SetRandomValues(holder.Interface(), exclusions...); err != nil {
		return nil, err
	}
	return holder.Elem().Interface(), nil
}

// New returns a random T.
func New[T any](p *Populator, exclusions ...string) (T, error) {
	var zero T
	v, err := p.NewRandomObject(reflect.TypeFor[T](), exclusions...)
	if err != nil {
		return zero, err
	}
	return v.Interface().(T), nil
}

// CopyOf is the typed form of NewRandomCopy.
func CopyOf[T any](p *Populator, obj T, exclusions ...string) (T, error) {
	var zero T
	cpy, err := p.NewRandomCopy(obj, exclusions...)
	if err != nil {
		return zero, err
	}
	return cpy.(T), nil
}

// fill populates v. Pointers are followed, and allocated when nil, down to the value they
// point to, so exclusions reach a struct behind any number of pointers.
func (p *Populator) fill(ctx context.Context, v reflect.Value, exclusions []string) error {
	c := p.newContext(randutils.FromContextOr(ctx, p.source))
	target := v
	for target.Kind() == reflect.Ptr && !p.generates(target.Type()) {
		if c.depth >= p.maxDepth {
			return &DepthExceededError{Type: v.Type(), MaxDepth: p.maxDepth}
		}
		c.depth++
		if target.IsNil() {
			target.Set(reflect.New(target.Type().Elem()))
		}
		target = target.Elem()
	}
	if target.Kind() == reflect.Struct && !p.generates(target.Type()) {
		c.depth++
		return c.populateStruct(target, toSet(exclusions))
	}
	if len(exclusions) > 0 {
		return errors.Errorf("exclusions %v need a struct, '%v' is not one", exclusions, v.Type())
	}
	return c.generateInto(target, noTag)
}

// generates reports whether typ has a registered generator or enum constants.
func (p *Populator) generates(typ reflect.Type) bool {
	if _, ok := p.registry.lookup(typ); ok {
		return true
	}
	_, ok := p.registry.enumValues(typ)
	return ok
}

func instantiable(typ reflect.Type) error {
	if typ == nil {
		return &InstantiationError{Reason: "type is nil"}
	}
	switch typ.Kind() {
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Invalid:
		return &InstantiationError{Type: typ, Reason: "kind " + typ.Kind().String() + " has no concrete value"}
	}
	return nil
}

// populateStruct fills every field of v. Exclusions apply to v's own fields and to the ones
// promoted from its embedded structs.
func (c *Context) populateStruct(v reflect.Value, exclusions map[string]struct{}) error {
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if _, excluded := exclusions[sf.Name]; excluded {
			continue
		}
		tag, err := parseTag(sf)
		if err != nil {
			return errors.Wrapf(err, "bad tag on '%v'", typ)
		}
		if tag.skip {
			continue
		}

		fv := v.Field(i)
		if !fv.CanSet() {
			if !c.populator.forceUnexported {
				return &FieldAccessError{Type: typ, Field: sf.Name, Reason: "field is unexported"}
			}
			fv = reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
		}

		if sf.Anonymous && exclusions != nil {
			if handled, err := c.populateEmbedded(fv, exclusions); handled || err != nil {
				if err != nil {
					return err
				}
				continue
			}
		}

		if err := c.generateInto(fv, tag); err != nil {
			return errors.WithMessagef(err, "field '%s' of '%v'", sf.Name, typ)
		}
		if ce := logs.GetLogger().Check(zap.DebugLevel, "field assigned"); ce != nil {
			ce.Write(zap.Stringer("type", typ), zap.String("field", sf.Name), zap.Int("depth", c.depth))
		}
	}
	return nil
}

// populateEmbedded walks an embedded struct with the exclusions of its parent so promoted
// fields can be excluded by name. It reports false for embedded types it does not walk.
func (c *Context) populateEmbedded(fv reflect.Value, exclusions map[string]struct{}) (bool, error) {
	target := fv
	if fv.Kind() == reflect.Ptr {
		if fv.Type().Elem().Kind() != reflect.Struct {
			return false, nil
		}
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		target = fv.Elem()
	}
	if target.Kind() != reflect.Struct {
		return false, nil
	}
	if _, isRegistered := c.populator.registry.lookup(target.Type()); isRegistered {
		return false, nil
	}
	if c.depth >= c.populator.maxDepth {
		return true, &DepthExceededError{Type: target.Type(), MaxDepth: c.populator.maxDepth}
	}
	c.depth++
	defer func() { c.depth-- }()
	return true, c.populateStruct(target, exclusions)
}

// structTargets follows the pointers of dst and src together down to the struct they hold.
func (p *Populator) structTargets(dst reflect.Value, src reflect.Value) (reflect.Value, reflect.Value, bool) {
	for dst.Kind() == reflect.Ptr && !p.generates(dst.Type()) {
		if dst.IsNil() || src.IsNil() {
			return reflect.Value{}, reflect.Value{}, false
		}
		dst, src = dst.Elem(), src.Elem()
	}
	if dst.Kind() != reflect.Struct || p.generates(dst.Type()) {
		return reflect.Value{}, reflect.Value{}, false
	}
	return dst, src, true
}

// keepFields sets the excluded and immutable fields of dst, including the ones promoted from
// embedded structs, to their value in src. Both must be addressable.
func (p *Populator) keepFields(dst reflect.Value, src reflect.Value, exclusions map[string]struct{}) {
	typ := dst.Type()
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		df, of := writable(dst.Field(i)), writable(src.Field(i))
		_, excluded := exclusions[sf.Name]
		tag, _ := parseTag(sf)
		if excluded || tag.skip {
			df.Set(copyValue(of))
			continue
		}
		if sf.Anonymous {
			if d, o, ok := p.structTargets(df, of); ok {
				p.keepFields(d, o, exclusions)
			}
		}
	}
}

func writable(v reflect.Value) reflect.Value {
	if v.CanSet() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

// copyValue deep copies v when deepcopy reproduces it, and shares it otherwise. deepcopy drops
// unexported state, which decimals and big numbers keep all of their value in.
func copyValue(v reflect.Value) reflect.Value {
	cpy := reflect.ValueOf(deepcopy.Copy(v.Interface()))
	if cpy.IsValid() && cpy.Type() == v.Type() && reflect.DeepEqual(cpy.Interface(), v.Interface()) {
		return cpy
	}
	return v
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
