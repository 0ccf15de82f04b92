package object

import (
	"github.com/anthonyraymond/randomizer/pkg/config"
	"github.com/anthonyraymond/randomizer/pkg/randutils"
	"github.com/pkg/errors"
)

// NewPopulatorFromConfig validates conf, builds the source it describes and returns a populator
// using it with a fresh registry.
func NewPopulatorFromConfig(conf *config.Config) (*Populator, error) {
	if conf == nil {
		return nil, errors.New("config must not be nil")
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	src, err := randutils.Build(conf.Source.BuildOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build random source")
	}

	gen := conf.Generation
	return NewPopulator(
		WithSource(src),
		WithAlgorithm(gen.Algorithm),
		WithMaxDepth(gen.MaxDepth),
		WithElements(gen.MinElements, gen.MaxElements),
		WithStringLength(gen.MinStringLength, gen.MaxStringLength),
		WithForceUnexported(gen.ForceUnexported),
	)
}
