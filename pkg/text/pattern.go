package text

import (
	"github.com/anthonyraymond/randomizer/pkg/randutils"
	"github.com/lucasjones/reggen"
	"github.com/pkg/errors"
)

// DefaultPatternLimit caps unbounded repetitions such as '*' and '+'.
const DefaultPatternLimit = 10

// Pattern generates strings matching a regular expression. A reggen generator is not safe for
// concurrent use, so every draw builds its own one, seeded from the source.
type Pattern struct {
	Expr  string `yaml:"pattern"`
	Limit int    `yaml:"limit"`
}

// Generate draws from the default source.
func (p *Pattern) Generate() string {
	return p.GenerateFrom(randutils.Default())
}

func (p *Pattern) GenerateFrom(src randutils.Source) string {
	generator, err := newGenerator(p.Expr, src)
	if err != nil {
		return ""
	}
	return generator.Generate(limitOrDefault(p.Limit))
}

func (p *Pattern) AfterPropertiesSet() error {
	if len(p.Expr) == 0 {
		return errors.New("pattern can not be empty")
	}
	_, err := reggen.NewGenerator(p.Expr)
	return errors.Wrapf(err, "bad regex pattern '%s'", p.Expr)
}

func NewPattern(expr string, limit int) (*Pattern, error) {
	p := &Pattern{Expr: expr, Limit: limit}
	if err := p.AfterPropertiesSet(); err != nil {
		return nil, err
	}
	return p, nil
}

// FromPattern generates one string matching expr, drawing from src.
func FromPattern(expr string, limit int, src randutils.Source) (string, error) {
	generator, err := newGenerator(expr, src)
	if err != nil {
		return "", err
	}
	return generator.Generate(limitOrDefault(limit)), nil
}

func newGenerator(expr string, src randutils.Source) (*reggen.Generator, error) {
	generator, err := reggen.NewGenerator(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "bad regex pattern '%s'", expr)
	}
	generator.SetSeed(src.Int64())
	return generator, nil
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return DefaultPatternLimit
	}
	return limit
}
