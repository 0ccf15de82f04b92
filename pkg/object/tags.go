package object

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

const tagName = "random"

// fieldTag is the parsed form of a `random:"..."` struct tag.
//
//	random:"-"                  never generated
//	random:"min=1,max=10"       closed bounds for numbers, lengths for strings, counts for collections
//	random:"char"               a letter or digit for rune and string fields
//	random:"pattern=[a-z]{5}"   a string matching the regex, must come last
type fieldTag struct {
	skip    bool
	char    bool
	min     *string
	max     *string
	pattern string
}

var noTag = fieldTag{}

func parseTag(sf reflect.StructField) (fieldTag, error) {
	raw, ok := sf.Tag.Lookup(tagName)
	if !ok {
		return noTag, nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "-" {
		return fieldTag{skip: true}, nil
	}

	t := fieldTag{}
	if idx := strings.Index(raw, "pattern="); idx >= 0 {
		t.pattern = raw[idx+len("pattern="):]
		if t.pattern == "" {
			return noTag, errors.Errorf("field '%s' has an empty pattern", sf.Name)
		}
		raw = strings.TrimSuffix(strings.TrimSpace(raw[:idx]), ",")
	}

	for _, opt := range strings.Split(raw, ",") {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		key, value, hasValue := strings.Cut(opt, "=")
		switch key {
		case "char":
			t.char = true
		case "min", "max":
			if !hasValue || value == "" {
				return noTag, errors.Errorf("field '%s' has no value for option '%s'", sf.Name, key)
			}
			if _, err := cast.ToFloat64E(value); err != nil {
				return noTag, errors.Wrapf(err, "field '%s' has a non numeric '%s'", sf.Name, key)
			}
			v := value
			if key == "min" {
				t.min = &v
			} else {
				t.max = &v
			}
		default:
			return noTag, errors.Errorf("field '%s' has an unknown random option '%s'", sf.Name, key)
		}
	}
	return t, nil
}

func (t fieldTag) bounded() bool {
	return t.min != nil || t.max != nil
}

func (t fieldTag) intBounds(lo int64, hi int64) (int64, int64, error) {
	if t.min != nil {
		v, err := cast.ToInt64E(*t.min)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "bad min '%s'", *t.min)
		}
		lo = v
	}
	if t.max != nil {
		v, err := cast.ToInt64E(*t.max)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "bad max '%s'", *t.max)
		}
		hi = v
	}
	return lo, hi, nil
}

func (t fieldTag) floatBounds(lo float64, hi float64) (float64, float64, error) {
	if t.min != nil {
		v, err := cast.ToFloat64E(*t.min)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "bad min '%s'", *t.min)
		}
		lo = v
	}
	if t.max != nil {
		v, err := cast.ToFloat64E(*t.max)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "bad max '%s'", *t.max)
		}
		hi = v
	}
	return lo, hi, nil
}
