package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads configFilePath over the defaults and validates the result.
func Load(configFilePath string) (*Config, error) {
	conf := Config{}.Default()
	if err := ParseIntoDefault(configFilePath, conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file '%s'", configFilePath)
	}
	return conf, nil
}

func ParseIntoDefault(configFilePath string, defaultValue interface{}) error {
	f, err := os.Open(configFilePath)
	if err != nil {
		return errors.Wrapf(err, "failed to open config file '%s'", configFilePath)
	}
	defer func() { _ = f.Close() }()

	if err := Decode(f, defaultValue); err != nil {
		return errors.Wrapf(err, "failed to parse config file '%s'", configFilePath)
	}
	return nil
}

// Decode reads YAML from r into defaultValue. Unknown keys are rejected, an empty document keeps the defaults.
func Decode(r io.Reader, defaultValue interface{}) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	err := decoder.Decode(defaultValue)
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}

func SaveToFile(configFilePath string, newConf interface{}) error {
	f, err := os.OpenFile(configFilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed to create config file '%s'", configFilePath)
	}
	defer func() { _ = f.Close() }()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err = encoder.Encode(newConf); err != nil {
		return errors.Wrapf(err, "failed to write to config file '%s'", configFilePath)
	}
	return errors.Wrapf(encoder.Close(), "failed to flush config file '%s'", configFilePath)
}
