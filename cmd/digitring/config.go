package main

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/calebcase/digits/integer"
	"github.com/calebcase/digits/ring"
)

const envVarPrefix = "DIGITRING"

// Config is read from the optional YAML file named by DIGITRING_CONFIG_FILE
// and then overridden by DIGITRING_* environment variables.
type Config struct {
	Base      int    `split_words:"true" yaml:"base"`
	ScaleBase int    `split_words:"true" yaml:"scaleBase"`
	LogLevel  string `split_words:"true" yaml:"logLevel"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Base:      ring.DefaultBase,
		ScaleBase: ring.ScaleBase,
		LogLevel:  "info",
	}
}

// LoadConfig reads the configuration.
func LoadConfig() (_ *Config, err error) {
	defer Error.WrapP(&err)

	c := DefaultConfig()

	if path := os.Getenv(envVarPrefix + "_CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, Error.New("reading config file: %v", err)
		}

		err = yaml.UnmarshalStrict(data, &c)
		if err != nil {
			return nil, Error.New("unmarshaling config file: %v", err)
		}
	}

	err = envconfig.Process(envVarPrefix, &c)
	if err != nil {
		return nil, Error.New("parsing environment variables: %v", err)
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks the bases and the log level.
func (c *Config) Validate() error {
	if err := integer.CheckBase(c.Base); err != nil {
		return Error.New("base: %v", err)
	}

	if err := integer.CheckBase(c.ScaleBase); err != nil {
		return Error.New("scaleBase: %v", err)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return Error.New("logLevel: %v", err)
	}

	return nil
}

// Level returns the parsed log level. Validate must have passed.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}
