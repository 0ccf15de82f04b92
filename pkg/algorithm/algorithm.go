// Package algorithm enumerates the strategies used to turn raw random draws into bounded values.
package algorithm

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type RandomAlgorithm int

const (
	// MathAbs takes the absolute value of a raw draw modulo the range.
	MathAbs RandomAlgorithm = iota + 1
	// MathRandom scales the process-global generator and ignores the supplied source.
	MathRandom
	// Random draws from a fresh, time seeded generator. Calls within the same millisecond are correlated.
	Random
	// SecureRandom scales a uniform double from the supplied source.
	SecureRandom
)

// Default is used whenever no algorithm is given.
const Default = SecureRandom

var algorithmNames = map[RandomAlgorithm]string{
	MathAbs:      "MATH_ABS",
	MathRandom:   "MATH_RANDOM",
	Random:       "RANDOM",
	SecureRandom: "SECURE_RANDOM",
}

// Values returns every algorithm in declaration order.
func Values() []RandomAlgorithm {
	return []RandomAlgorithm{MathAbs, MathRandom, Random, SecureRandom}
}

func (a RandomAlgorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("RandomAlgorithm(%d)", int(a))
}

func (a RandomAlgorithm) IsValid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// OrDefault returns Default for the zero value.
func (a RandomAlgorithm) OrDefault() RandomAlgorithm {
	if a == 0 {
		return Default
	}
	return a
}

func Parse(name string) (RandomAlgorithm, error) {
	for alg, algName := range algorithmNames {
		if algName == name {
			return alg, nil
		}
	}
	allTypes := make([]string, 0, len(algorithmNames))
	for _, algName := range algorithmNames {
		allTypes = append(allTypes, algName)
	}
	sort.Strings(allTypes)
	return 0, errors.New(fmt.Sprintf("algorithm type '%s' does not exists. Possible values are: %v", name, allTypes))
}

func (a RandomAlgorithm) MarshalYAML() (interface{}, error) {
	if !a.IsValid() {
		return nil, errors.Errorf("cannot marshal unknown %s", a)
	}
	return a.String(), nil
}

func (a *RandomAlgorithm) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	alg, err := Parse(name)
	if err != nil {
		return err
	}
	*a = alg
	return nil
}
