package object

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
	"unicode"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_ShouldFillEveryKind(t *testing.T) {
	p := newTestPopulator(t)

	k, err := New[Kinds](p)
	require.NoError(t, err)

	assert.NotZero(t, k.I64)
	assert.NotZero(t, k.U64)
	assert.True(t, k.F64 >= 0 && k.F64 < 1)
	assert.True(t, k.F32 >= 0)
	assert.NotZero(t, k.C128)
	for _, s := range k.Arr {
		assert.NotEmpty(t, s)
	}
	require.NotNil(t, k.P)
	require.NotNil(t, k.PP)
	require.NotNil(t, *k.PP)
	assert.NotEmpty(t, **k.PP)

	assert.Nil(t, k.Fn)
	assert.Nil(t, k.Ch)
	assert.Nil(t, k.Any)

	assert.True(t, k.Dur >= 0 && k.Dur.Hours() < 24)
	assert.NotNil(t, k.Loc)
	require.NotNil(t, k.BI)
	assert.True(t, k.BI.Sign() >= 0)
	require.NotNil(t, k.BF)
	assert.False(t, k.Dec.IsNegative())
	assert.NotEqual(t, uuid.Nil, k.UUID)
	assert.Equal(t, uuid.Version(4), k.UUID.Version())
}

func TestGenerate_ShouldOnlyPickRegisteredEnumConstants(t *testing.T) {
	p := newTestPopulator(t)

	seen := map[Color]int{}
	for i := 0; i < 1000; i++ {
		c, err := New[Color](p)
		require.NoError(t, err)
		seen[c]++
	}

	assert.Len(t, seen, 3)
	for _, c := range []Color{Red, Green, Blue} {
		assert.Greater(t, seen[c], 200, "color %d", c)
	}
}

func TestGenerate_ShouldHonorFieldTags(t *testing.T) {
	p := newTestPopulator(t)
	code := regexp.MustCompile(`^[A-Z]{3}-[0-9]{4}$`)

	for i := 0; i < 200; i++ {
		v, err := New[Tagged](p)
		require.NoError(t, err)

		assert.True(t, v.Age >= 18 && v.Age <= 65, "age %d", v.Age)
		assert.True(t, v.Score >= 0.5 && v.Score <= 1.5, "score %f", v.Score)
		assert.Regexp(t, code, v.Code)
		assert.True(t, unicode.IsLetter(v.Initial) || unicode.IsDigit(v.Initial), "initial %q", v.Initial)
		assert.Len(t, []rune(v.Letter), 1)
		assert.Len(t, v.Items, 2)
		assert.Len(t, v.Nick, 5)
		assert.True(t, v.Level >= 1 && v.Level <= 3, "level %d", v.Level)
		require.NotNil(t, v.Ratio)
		assert.True(t, *v.Ratio >= -3 && *v.Ratio <= 3, "ratio %d", *v.Ratio)
	}
}

func TestGenerate_ShouldReportBadTags(t *testing.T) {
	p := newTestPopulator(t)
	tests := []struct {
		name   string
		typ    reflect.Type
		errMsg string
	}{
		{name: "non numeric min", typ: reflect.TypeOf(struct {
			X int `random:"min=abc"`
		}{}), errMsg: "non numeric 'min'"},
		{name: "missing max value", typ: reflect.TypeOf(struct {
			X int `random:"max="`
		}{}), errMsg: "no value for option 'max'"},
		{name: "unknown option", typ: reflect.TypeOf(struct {
			X int `random:"often"`
		}{}), errMsg: "unknown random option 'often'"},
		{name: "empty pattern", typ: reflect.TypeOf(struct {
			X string `random:"pattern="`
		}{}), errMsg: "empty pattern"},
		{name: "bounds overflowing the type", typ: reflect.TypeOf(struct {
			X int8 `random:"min=0,max=300"`
		}{}), errMsg: "do not fit"},
		{name: "reversed bounds", typ: reflect.TypeOf(struct {
			X int `random:"min=10,max=1"`
		}{}), errMsg: ""},
		{name: "reversed element bounds", typ: reflect.TypeOf(struct {
			X []int `random:"min=3,max=1"`
		}{}), errMsg: "element count bounds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.NewRandomObject(tt.typ)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.errMsg), err.Error())
		})
	}
}

func TestGenerate_ShouldBoundCollectionSizes(t *testing.T) {
	p := newTestPopulator(t, WithElements(2, 4))

	for i := 0; i < 100; i++ {
		v, err := New[Person](p)
		require.NoError(t, err)
		assert.True(t, len(v.Tags) >= 2 && len(v.Tags) <= 4, "tags %d", len(v.Tags))
		assert.True(t, len(v.Scores) >= 1 && len(v.Scores) <= 4, "scores %d", len(v.Scores))
	}
}

func TestGenerate_ShouldBoundStringLength(t *testing.T) {
	p := newTestPopulator(t, WithStringLength(7, 7))

	v, err := New[Address](p)
	require.NoError(t, err)
	assert.Len(t, v.Street, 7)
}

func TestRegistry_ShouldUseCustomGenerators(t *testing.T) {
	p := newTestPopulator(t)
	RegisterFunc(p.Registry(), func(c *Context) (Address, error) {
		return Address{Street: "fixed", Number: c.Depth()}, nil
	})

	v, err := New[Person](p)
	require.NoError(t, err)
	assert.Equal(t, "fixed", v.Home.Street)
	assert.Equal(t, 2, v.Home.Number)

	a, err := New[Address](p)
	require.NoError(t, err)
	assert.Equal(t, "fixed", a.Street)
	assert.Equal(t, 1, a.Number)
}

func TestRegistry_CustomGeneratorCanGenerateNestedValues(t *testing.T) {
	p := newTestPopulator(t)
	p.Registry().Register(reflect.TypeOf(Address{}), func(c *Context) (reflect.Value, error) {
		number, err := c.Generate(reflect.TypeOf(int(0)))
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(Address{Street: "nested", Number: int(number.Int())}), nil
	})

	a, err := New[Address](p)
	require.NoError(t, err)
	assert.Equal(t, "nested", a.Street)
	assert.NotZero(t, a.Number)
}

func TestRegistry_ShouldPropagateGeneratorErrors(t *testing.T) {
	p := newTestPopulator(t)
	failure := errors.New("no street for you")
	RegisterFunc(p.Registry(), func(c *Context) (Address, error) {
		return Address{}, failure
	})

	_, err := New[Person](p)
	require.Error(t, err)
	assert.ErrorIs(t, err, failure)
	assert.Contains(t, err.Error(), "Home")
}

func TestRegistry_ShouldRejectUnassignableGeneratorResult(t *testing.T) {
	p := newTestPopulator(t)
	p.Registry().Register(reflect.TypeOf(Address{}), func(c *Context) (reflect.Value, error) {
		return reflect.ValueOf("not an address"), nil
	})

	_, err := New[Address](p)
	assert.Error(t, err)
}

func TestRegistry_NilGeneratorResultShouldYieldZero(t *testing.T) {
	p := newTestPopulator(t)
	p.Registry().Register(reflect.TypeOf(Address{}), func(c *Context) (reflect.Value, error) {
		return reflect.Value{}, nil
	})

	a, err := New[Address](p)
	require.NoError(t, err)
	assert.Equal(t, Address{}, a)
}

func TestGenerate_FloatTagBoundsShouldBeClosed(t *testing.T) {
	p := newTestPopulator(t)

	for i := 0; i < 500; i++ {
		m, err := New[Measure](p)
		require.NoError(t, err)
		assert.Equal(t, 1.5, m.Exact)
		assert.True(t, m.Ratio >= 0.25 && m.Ratio <= 0.75, "ratio %v", m.Ratio)
		assert.True(t, float64(m.Narrow) >= 0.1 && float64(m.Narrow) <= 0.2, "narrow %v", m.Narrow)
		assert.True(t, m.Eighth >= 0.125 && m.Eighth <= 0.25, "eighth %v", m.Eighth)
		assert.Equal(t, float32(0.5), m.Point)
	}
}

func TestGenerate_FloatTagMaxShouldBeReachable(t *testing.T) {
	p := newTestPopulator(t, WithSource(topSource{Rand: seeded(13)}))

	m, err := New[Measure](p)
	require.NoError(t, err)
	assert.LessOrEqual(t, m.Ratio, 0.75)
	assert.InDelta(t, 0.75, m.Ratio, 1e-12)
	assert.LessOrEqual(t, m.Eighth, float32(0.25))
	assert.InDelta(t, 0.25, m.Eighth, 1e-6)
	assert.LessOrEqual(t, float64(m.Narrow), 0.2)
	assert.GreaterOrEqual(t, float64(m.Narrow), 0.1)
}

func TestGenerate_FloatTagBoundsShouldFitTheField(t *testing.T) {
	p := newTestPopulator(t)

	_, err := p.NewRandomObject(reflect.TypeOf(struct {
		X float32 `random:"min=0,max=1e39"`
	}{}))
	assert.Error(t, err)

	_, err = p.NewRandomObject(reflect.TypeOf(struct {
		X float64 `random:"min=2,max=1"`
	}{}))
	assert.Error(t, err)

	_, err = p.NewRandomObject(reflect.TypeOf(struct {
		X float32 `random:"min=0.3,max=0.3"`
	}{}))
	assert.Error(t, err, "no float32 equals 0.3")
}
