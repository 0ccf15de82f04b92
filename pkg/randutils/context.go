package randutils

import (
	"context"
	"reflect"
)

type sourceKey struct{}

// NewContext returns a copy of ctx carrying src.
func NewContext(ctx context.Context, src Source) context.Context {
	return context.WithValue(ctx, sourceKey{}, src)
}

// FromContext returns the Source carried by ctx, or the default source.
func FromContext(ctx context.Context) Source {
	return FromContextOr(ctx, nil)
}

// FromContextOr returns the Source carried by ctx, or fallback. A nil fallback means the default source.
// Nil sources, including typed nil pointers, count as absent.
func FromContextOr(ctx context.Context, fallback Source) Source {
	if ctx != nil {
		if src, ok := ctx.Value(sourceKey{}).(Source); ok && !isNil(src) {
			return src
		}
	}
	if !isNil(fallback) {
		return fallback
	}
	return Default()
}

func isNil(src Source) bool {
	if src == nil {
		return true
	}
	v := reflect.ValueOf(src)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
