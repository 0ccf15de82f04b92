package randutils

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/anthonyraymond/randomizer/pkg/logs"
	"go.uber.org/zap"
)

const (
	DefaultAlgorithm = "CHACHA8"
	DefaultProvider  = "STD"
)

// pcgStream is the fixed PCG increment, seeds only vary the state.
const pcgStream = 0xda3e39cb94b95bdb

var algorithmImplementations = map[string]func(seed uint64) rand.Source{
	"CHACHA8": func(seed uint64) rand.Source {
		var s [32]byte
		binary.LittleEndian.PutUint64(s[:8], seed)
		return rand.NewChaCha8(s)
	},
	"PCG": func(seed uint64) rand.Source {
		return rand.NewPCG(seed, pcgStream)
	},
	"CRYPTO": func(uint64) rand.Source {
		return cryptoSource{}
	},
}

var providerAlgorithms = map[string][]string{
	"STD": {"CHACHA8", "PCG", "CRYPTO"},
}

// SourceUnavailableError is returned when an algorithm/provider combination cannot be resolved.
type SourceUnavailableError struct {
	Algorithm string
	Provider  string
	Reason    string
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("random source unavailable (algorithm='%s', provider='%s'): %s", e.Algorithm, e.Provider, e.Reason)
}

type buildOptions struct {
	algorithm string
	provider  string
	seed      uint64
	hasSeed   bool
}

type BuildOption func(o *buildOptions)

func WithAlgorithm(algorithm string) BuildOption {
	return func(o *buildOptions) { o.algorithm = algorithm }
}

func WithProvider(provider string) BuildOption {
	return func(o *buildOptions) { o.provider = provider }
}

// WithSeed makes the built source reproducible. CRYPTO ignores it.
func WithSeed(seed uint64) BuildOption {
	return func(o *buildOptions) {
		o.seed = seed
		o.hasSeed = true
	}
}

// Build creates a new Source owned by the caller.
func Build(opts ...BuildOption) (*Rand, error) {
	o := &buildOptions{}
	for _, opt := range opts {
		opt(o)
	}

	algorithm := o.algorithm
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	provider, err := resolveProvider(algorithm, o.provider)
	if err != nil {
		return nil, err
	}
	factory, exists := algorithmImplementations[algorithm]
	if !exists {
		return nil, &SourceUnavailableError{Algorithm: algorithm, Provider: provider, Reason: "unknown algorithm"}
	}

	seed := o.seed
	if !o.hasSeed {
		seed = cryptoSeed()
	}

	logs.GetLogger().Debug("random source built",
		zap.String("algorithm", algorithm),
		zap.String("provider", provider),
		zap.Bool("seeded", o.hasSeed),
	)
	return newRand(factory(seed), algorithm, provider, o.hasSeed), nil
}

// MustBuild is like Build but panics when the source cannot be resolved.
func MustBuild(opts ...BuildOption) *Rand {
	r, err := Build(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func resolveProvider(algorithm string, provider string) (string, error) {
	if provider == "" {
		for name, algorithms := range providerAlgorithms {
			if contains(algorithms, algorithm) {
				return name, nil
			}
		}
		return "", &SourceUnavailableError{
			Algorithm: algorithm,
			Reason:    fmt.Sprintf("no provider offers it. Possible values are: %v", Algorithms()),
		}
	}

	algorithms, exists := providerAlgorithms[provider]
	if !exists {
		return "", &SourceUnavailableError{
			Algorithm: algorithm,
			Provider:  provider,
			Reason:    fmt.Sprintf("unknown provider. Possible values are: %v", Providers()),
		}
	}
	if !contains(algorithms, algorithm) {
		return "", &SourceUnavailableError{
			Algorithm: algorithm,
			Provider:  provider,
			Reason:    fmt.Sprintf("provider does not offer it. Possible values are: %v", algorithms),
		}
	}
	return provider, nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// Algorithms lists every algorithm any provider can resolve.
func Algorithms() []string {
	all := make([]string, 0, len(algorithmImplementations))
	for name := range algorithmImplementations {
		all = append(all, name)
	}
	sort.Strings(all)
	return all
}

func Providers() []string {
	all := make([]string, 0, len(providerAlgorithms))
	for name := range providerAlgorithms {
		all = append(all, name)
	}
	sort.Strings(all)
	return all
}

var (
	defaultOnce   sync.Once
	defaultSource *Rand
)

// Default returns the process-wide source. It is created on first use and never re-seeded.
func Default() *Rand {
	defaultOnce.Do(func() {
		defaultSource = MustBuild(WithAlgorithm(DefaultAlgorithm), WithProvider(DefaultProvider))
	})
	return defaultSource
}
