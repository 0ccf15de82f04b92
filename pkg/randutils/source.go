// Package randutils holds the random sources every generator draws from: a
// lazily created process-wide default and independently owned sources built
// from an algorithm, a provider and an optional seed.
package randutils

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"

	"go.uber.org/atomic"
)

// Source produces raw random values. Implementations used concurrently must
// do their own locking.
type Source interface {
	// Int32 returns a value spanning the full signed 32-bit range.
	Int32() int32
	// Int64 returns a value spanning the full signed 64-bit range.
	Int64() int64
	Uint64() uint64
	// Float32 returns a value in [0.0, 1.0).
	Float32() float32
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	Bool() bool
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
	Read(p []byte) (int, error)
}

// Rand is the Source implementation returned by Default and Build.
type Rand struct {
	lock      sync.Mutex
	rnd       *rand.Rand
	algorithm string
	provider  string
	seeded    bool
	draws     *atomic.Uint64
}

func newRand(src rand.Source, algorithm string, provider string, seeded bool) *Rand {
	return &Rand{
		rnd:       rand.New(src),
		algorithm: algorithm,
		provider:  provider,
		seeded:    seeded,
		draws:     atomic.NewUint64(0),
	}
}

func (r *Rand) Int32() int32 {
	return int32(r.Uint64() >> 32)
}

func (r *Rand) Int64() int64 {
	return int64(r.Uint64())
}

func (r *Rand) Uint64() uint64 {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.draws.Inc()
	return r.rnd.Uint64()
}

func (r *Rand) Float32() float32 {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.draws.Inc()
	return r.rnd.Float32()
}

func (r *Rand) Float64() float64 {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.draws.Inc()
	return r.rnd.Float64()
}

func (r *Rand) Bool() bool {
	return r.Uint64()&1 == 1
}

func (r *Rand) IntN(n int) int {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.draws.Inc()
	return r.rnd.IntN(n)
}

// Read fills p with random bytes. It never returns an error.
func (r *Rand) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], r.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}

// Draws is the number of raw draws taken from r since its creation.
func (r *Rand) Draws() uint64 {
	return r.draws.Load()
}

func (r *Rand) Algorithm() string {
	return r.algorithm
}

func (r *Rand) Provider() string {
	return r.provider
}

// Seeded reports whether r was built from a caller supplied seed.
func (r *Rand) Seeded() bool {
	return r.seeded
}

// cryptoSource adapts crypto/rand to a math/rand/v2 source. It cannot be seeded.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	_, _ = cryptorand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

func cryptoSeed() uint64 {
	return cryptoSource{}.Uint64()
}
