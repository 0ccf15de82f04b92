package object

import (
	"math"
	"reflect"

	"github.com/anthonyraymond/randomizer/pkg/algorithm"
	"github.com/anthonyraymond/randomizer/pkg/number"
	"github.com/anthonyraymond/randomizer/pkg/randutils"
	"github.com/anthonyraymond/randomizer/pkg/text"
	"github.com/pkg/errors"
)

// generate dispatches on typ in this order: registered enum, void kinds, registered
// generator, primitive kinds, strings, pointers, collections and finally structs.
func (c *Context) generate(typ reflect.Type, tag fieldTag) (reflect.Value, error) {
	p := c.populator
	if c.depth >= p.maxDepth {
		return reflect.Value{}, &DepthExceededError{Type: typ, MaxDepth: p.maxDepth}
	}
	c.depth++
	defer func() { c.depth-- }()

	if values, ok := p.registry.enumValues(typ); ok {
		return pickValue(values, p.algorithm, c.source), nil
	}

	switch typ.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Interface:
		return reflect.Zero(typ), nil
	case reflect.Invalid:
		return reflect.Value{}, &InstantiationError{Type: typ, Reason: "invalid type"}
	}

	if fn, ok := p.registry.lookup(typ); ok {
		v, err := fn(c)
		if err != nil {
			return reflect.Value{}, errors.Wrapf(err, "generator of type '%v' failed", typ)
		}
		return assignable(v, typ)
	}

	v := reflect.New(typ).Elem()
	if filled, err := c.fillPrimitive(v, tag); filled || err != nil {
		return v, err
	}

	switch typ.Kind() {
	case reflect.String:
		s, err := c.randomString(tag)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetString(s)
	case reflect.Ptr:
		elem, err := c.generate(typ.Elem(), tag)
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(typ.Elem())
		ptr.Elem().Set(elem)
		v.Set(ptr)
	case reflect.Slice:
		n, err := c.elementCount(tag)
		if err != nil {
			return reflect.Value{}, err
		}
		v.Set(reflect.MakeSlice(typ, n, n))
		for i := 0; i < n; i++ {
			if err := c.generateInto(v.Index(i), noTag); err != nil {
				return reflect.Value{}, err
			}
		}
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := c.generateInto(v.Index(i), noTag); err != nil {
				return reflect.Value{}, err
			}
		}
	case reflect.Map:
		n, err := c.elementCount(tag)
		if err != nil {
			return reflect.Value{}, err
		}
		v.Set(reflect.MakeMapWithSize(typ, n))
		for i := 0; i < n; i++ {
			key, err := c.generate(typ.Key(), noTag)
			if err != nil {
				return reflect.Value{}, err
			}
			val, err := c.generate(typ.Elem(), noTag)
			if err != nil {
				return reflect.Value{}, err
			}
			v.SetMapIndex(key, val)
		}
	case reflect.Struct:
		if err := c.populateStruct(v, nil); err != nil {
			return reflect.Value{}, err
		}
	default:
		return reflect.Value{}, &InstantiationError{Type: typ, Reason: "unsupported kind " + typ.Kind().String()}
	}
	return v, nil
}

func (c *Context) generateInto(dst reflect.Value, tag fieldTag) error {
	v, err := c.generate(dst.Type(), tag)
	if err != nil {
		return err
	}
	dst.Set(v)
	return nil
}

func assignable(v reflect.Value, typ reflect.Type) (reflect.Value, error) {
	switch {
	case !v.IsValid():
		return reflect.Zero(typ), nil
	case v.Type().AssignableTo(typ):
		return v, nil
	case v.Type().ConvertibleTo(typ):
		return v.Convert(typ), nil
	}
	return reflect.Value{}, errors.Errorf("generator returned a '%v', can not assign it to '%v'", v.Type(), typ)
}

// fillPrimitive sets v when its kind is a boolean or a number and reports whether it did.
func (c *Context) fillPrimitive(v reflect.Value, tag fieldTag) (bool, error) {
	src := c.source
	switch v.Kind() {
	case reflect.Bool:
		v.SetBool(number.BoolWith(c.populator.algorithm, src))
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		if tag.char && v.Kind() == reflect.Int32 {
			v.SetInt(int64(number.Char(src)))
			return true, nil
		}
		if tag.bounded() {
			return true, boundedInt(v, tag, src)
		}
		v.SetInt(randomInt(v.Kind(), src))
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr:
		if tag.bounded() {
			return true, boundedUint(v, tag, src)
		}
		v.SetUint(randomUint(v.Kind(), src))
	case reflect.Float32, reflect.Float64:
		if tag.bounded() {
			return true, boundedFloat(v, tag, src)
		}
		if v.Kind() == reflect.Float32 {
			f, _ := number.Float32N(math.MaxFloat32, algorithm.SecureRandom, src)
			v.SetFloat(float64(f))
		} else {
			v.SetFloat(number.Float64(src))
		}
	case reflect.Complex64, reflect.Complex128:
		re, _ := number.Float32N(math.MaxFloat32, algorithm.SecureRandom, src)
		im, _ := number.Float32N(math.MaxFloat32, algorithm.SecureRandom, src)
		v.SetComplex(complex(float64(re), float64(im)))
	default:
		return false, nil
	}
	return true, nil
}

func randomInt(kind reflect.Kind, src randutils.Source) int64 {
	switch kind {
	case reflect.Int8:
		return int64(number.Int8(src))
	case reflect.Int16:
		return int64(number.Int16(src))
	case reflect.Int32:
		return int64(number.Int32(src))
	case reflect.Int:
		return int64(number.Int(src))
	}
	return number.Int64(src)
}

func randomUint(kind reflect.Kind, src randutils.Source) uint64 {
	switch kind {
	case reflect.Uint8:
		return uint64(number.Uint8(src))
	case reflect.Uint16:
		return uint64(number.Uint16(src))
	case reflect.Uint32:
		return uint64(number.Uint32(src))
	}
	return number.Uint64(src)
}

func boundedInt(v reflect.Value, tag fieldTag, src randutils.Source) error {
	lo, hi, err := tag.intBounds(minOfInt(v.Type()), maxOfInt(v.Type()))
	if err != nil {
		return err
	}
	if v.OverflowInt(lo) || v.OverflowInt(hi) {
		return errors.Errorf("bounds [%d, %d] do not fit in '%v'", lo, hi, v.Type())
	}
	r, err := number.Int64Between(lo, hi, number.Closed, src)
	if err != nil {
		return err
	}
	v.SetInt(r)
	return nil
}

func boundedUint(v reflect.Value, tag fieldTag, src randutils.Source) error {
	hiDefault := int64(math.MaxInt64)
	if v.Type().Bits() < 64 {
		hiDefault = int64(1)<<v.Type().Bits() - 1
	}
	lo, hi, err := tag.intBounds(0, hiDefault)
	if err != nil {
		return err
	}
	if lo < 0 || v.OverflowUint(uint64(hi)) {
		return errors.Errorf("bounds [%d, %d] do not fit in '%v'", lo, hi, v.Type())
	}
	r, err := number.Int64Between(lo, hi, number.Closed, src)
	if err != nil {
		return err
	}
	v.SetUint(uint64(r))
	return nil
}

// boundedFloat draws over the closed [min, max] of the tag.
func boundedFloat(v reflect.Value, tag fieldTag, src randutils.Source) error {
	if v.Kind() == reflect.Float32 {
		return boundedFloat32(v, tag, src)
	}
	lo, hi, err := tag.floatBounds(0, math.MaxFloat64)
	if err != nil {
		return err
	}
	if lo == hi {
		v.SetFloat(lo)
		return nil
	}
	end := hi
	if end < math.MaxFloat64 {
		end = math.Nextafter(hi, math.Inf(1))
	}
	r, err := number.Float64Between(lo, end, src)
	if err != nil {
		return err
	}
	v.SetFloat(r)
	return nil
}

// boundedFloat32 narrows the tag bounds to the float32 values inside them before drawing, so
// the stored value never rounds outside [min, max].
func boundedFloat32(v reflect.Value, tag fieldTag, src randutils.Source) error {
	lo, hi, err := tag.floatBounds(0, math.MaxFloat32)
	if err != nil {
		return err
	}
	if v.OverflowFloat(lo) || v.OverflowFloat(hi) {
		return errors.Errorf("bounds [%v, %v] do not fit in '%v'", lo, hi, v.Type())
	}
	lo32, hi32 := float32(lo), float32(hi)
	if float64(lo32) < lo {
		lo32 = math.Nextafter32(lo32, float32(math.Inf(1)))
	}
	if float64(hi32) > hi {
		hi32 = math.Nextafter32(hi32, float32(math.Inf(-1)))
	}
	if lo32 == hi32 {
		v.SetFloat(float64(lo32))
		return nil
	}
	end := hi32
	if end < math.MaxFloat32 {
		end = math.Nextafter32(hi32, float32(math.Inf(1)))
	}
	r, err := number.Float32Between(lo32, end, src)
	if err != nil {
		return err
	}
	v.SetFloat(float64(r))
	return nil
}

func minOfInt(typ reflect.Type) int64 {
	return -1 << (typ.Bits() - 1)
}

func maxOfInt(typ reflect.Type) int64 {
	return 1<<(typ.Bits()-1) - 1
}

func (c *Context) randomString(tag fieldTag) (string, error) {
	switch {
	case tag.pattern != "":
		return text.FromPattern(tag.pattern, text.DefaultPatternLimit, c.source)
	case tag.char:
		return string(number.Char(c.source)), nil
	case tag.bounded():
		lo, hi, err := tag.intBounds(int64(c.populator.minStringLength), int64(c.populator.maxStringLength))
		if err != nil {
			return "", err
		}
		return text.StringBetween(int(lo), int(hi), c.source)
	}
	return text.StringBetween(c.populator.minStringLength, c.populator.maxStringLength, c.source)
}

func (c *Context) elementCount(tag fieldTag) (int, error) {
	lo, hi := int64(c.populator.minElements), int64(c.populator.maxElements)
	if tag.bounded() {
		var err error
		lo, hi, err = tag.intBounds(lo, hi)
		if err != nil {
			return 0, err
		}
		if lo < 0 || hi < lo {
			return 0, errors.Errorf("element count bounds [%d, %d] are not valid", lo, hi)
		}
	}
	return int(randutils.RangeFrom(c.source, lo, hi)), nil
}
