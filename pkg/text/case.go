package text

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Case int

const (
	Lower Case = iota
	Upper
	None
)

func (c Case) String() string {
	return toString[c]
}

func (c Case) ApplyCase(str string) string {
	if c == None {
		return str
	}
	if c == Lower {
		return strings.ToLower(str)
	}
	return strings.ToUpper(str)
}

var toString = map[Case]string{
	Lower: "lower",
	Upper: "upper",
	None:  "none",
}

var toID = map[string]Case{
	"lower": Lower,
	"upper": Upper,
	"none":  None,
}

func (c Case) MarshalYAML() (interface{}, error) {
	return toString[c], nil
}

func (c *Case) UnmarshalYAML(value *yaml.Node) error {
	var j string
	if err := value.Decode(&j); err != nil {
		return err
	}
	cc, ok := toID[j]
	if !ok {
		return errors.Errorf("failed to unmarshal unknown case '%s'", j)
	}
	*c = cc
	return nil
}
