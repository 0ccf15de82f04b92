package config

import (
	"reflect"

	"github.com/anthonyraymond/randomizer/internal/validationutils"
	"github.com/anthonyraymond/randomizer/pkg/algorithm"
	"github.com/anthonyraymond/randomizer/pkg/logs"
	"github.com/anthonyraymond/randomizer/pkg/randutils"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Log        *logs.LogConfig   `yaml:"log" validate:"required"`
	Source     *SourceConfig     `yaml:"source" validate:"required"`
	Generation *GenerationConfig `yaml:"generation" validate:"required"`
}

// Return a new Config with the default values filled in
func (c Config) Default() *Config {
	return &Config{
		Log:        logs.LogConfig{}.Default(),
		Source:     SourceConfig{}.Default(),
		Generation: GenerationConfig{}.Default(),
	}
}

func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(validationutils.TagNameFunction)
	if err := validate.RegisterValidation("algorithm", isRandomAlgorithm); err != nil {
		return err
	}
	return validate.Struct(c)
}

func isRandomAlgorithm(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.Int {
		return false
	}
	return algorithm.RandomAlgorithm(fl.Field().Int()).IsValid()
}

// SourceConfig describes the source built for generation. Without a seed the source is seeded from crypto/rand.
type SourceConfig struct {
	Algorithm string  `yaml:"algorithm" validate:"omitempty,oneof=CHACHA8 PCG CRYPTO"`
	Provider  string  `yaml:"provider" validate:"omitempty,oneof=STD"`
	Seed      *uint64 `yaml:"seed,omitempty"`
}

func (c SourceConfig) Default() *SourceConfig {
	return &SourceConfig{
		Algorithm: randutils.DefaultAlgorithm,
		Provider:  randutils.DefaultProvider,
	}
}

func (c *SourceConfig) BuildOptions() []randutils.BuildOption {
	opts := []randutils.BuildOption{
		randutils.WithAlgorithm(c.Algorithm),
		randutils.WithProvider(c.Provider),
	}
	if c.Seed != nil {
		opts = append(opts, randutils.WithSeed(*c.Seed))
	}
	return opts
}

type GenerationConfig struct {
	Algorithm       algorithm.RandomAlgorithm `yaml:"algorithm" validate:"algorithm"`
	MinStringLength int                       `yaml:"minStringLength" validate:"min=0"`
	MaxStringLength int                       `yaml:"maxStringLength" validate:"gtefield=MinStringLength"`
	MaxDepth        int                       `yaml:"maxDepth" validate:"min=1,max=1024"`
	MinElements     int                       `yaml:"minElements" validate:"min=0"`
	MaxElements     int                       `yaml:"maxElements" validate:"gtefield=MinElements"`
	ForceUnexported bool                      `yaml:"forceUnexported"`
}

func (c GenerationConfig) Default() *GenerationConfig {
	return &GenerationConfig{
		Algorithm:       algorithm.Default,
		MinStringLength: 3,
		MaxStringLength: 25,
		MaxDepth:        32,
		MinElements:     1,
		MaxElements:     5,
		ForceUnexported: true,
	}
}
