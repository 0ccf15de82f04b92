package object

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/anthonyraymond/randomizer/pkg/randutils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type Color int

const (
	Red Color = iota
	Green
	Blue
)

type Address struct {
	Street string
	Number int
}

type Person struct {
	ID       int
	Name     string
	Favorite Color
	Home     Address
	Tags     []string
	Scores   map[string]int
	Born     time.Time
	secret   string
	Frozen   string `random:"-"`
}

type Base struct {
	ID      int64
	Created time.Time
}

type Employee struct {
	Base
	Title   string
	manager *Person
}

type Node struct {
	Value int
	Next  *Node
}

type Tagged struct {
	Age     int     `random:"min=18,max=65"`
	Score   float64 `random:"min=0.5,max=1.5"`
	Code    string  `random:"pattern=[A-Z]{3}-[0-9]{4}"`
	Initial rune    `random:"char"`
	Letter  string  `random:"char"`
	Items   []int   `random:"min=2,max=2"`
	Nick    string  `random:"min=5,max=5"`
	Level   uint8   `random:"min=1,max=3"`
	Ratio   *int8   `random:"min=-3,max=3"`
}

type Kinds struct {
	B    bool
	I8   int8
	I16  int16
	I32  int32
	I64  int64
	I    int
	U8   uint8
	U16  uint16
	U32  uint32
	U64  uint64
	U    uint
	UP   uintptr
	F32  float32
	F64  float64
	C64  complex64
	C128 complex128
	Arr  [3]string
	P    *int
	PP   **string
	Fn   func()
	Ch   chan int
	Any  interface{}
	Dur  time.Duration
	Loc  *time.Location
	BI   *big.Int
	BIv  big.Int
	BF   *big.Float
	Dec  decimal.Decimal
	UUID uuid.UUID
}

type Reproducible struct {
	Name    string
	Numbers []int
	Lookup  map[int16]bool
	Color   Color
	ID      uuid.UUID
}

func seeded(seed uint64) *randutils.Rand {
	return randutils.MustBuild(randutils.WithSeed(seed))
}

func newTestPopulator(t *testing.T, opts ...Option) *Populator {
	t.Helper()
	registry := NewRegistry()
	require.NoError(t, RegisterEnum(registry, Red, Green, Blue))
	p, err := NewPopulator(append([]Option{WithRegistry(registry), WithSource(seeded(20200904))}, opts...)...)
	require.NoError(t, err)
	return p
}

type Invoice struct {
	Number string
	Price  decimal.Decimal
	Total  *big.Int
	Serial big.Int
	Lines  []string
	Issued decimal.Decimal `random:"-"`
	Payer  Address
	note   *big.Float
}

type Billed struct {
	Invoice
	Account string
}

type Measure struct {
	Exact  float64 `random:"min=1.5,max=1.5"`
	Ratio  float64 `random:"min=0.25,max=0.75"`
	Narrow float32 `random:"min=0.1,max=0.2"`
	Eighth float32 `random:"min=0.125,max=0.25"`
	Point  float32 `random:"min=0.5,max=0.5"`
}

// topSource returns the largest value below 1 for every float draw.
type topSource struct {
	*randutils.Rand
}

func (topSource) Float64() float64 {
	return math.Nextafter(1, 0)
}

func (topSource) Float32() float32 {
	return math.Nextafter32(1, 0)
}
