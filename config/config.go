package config

import (
	"log/slog"
	"os"

	"github.com/cottand/fxtype/internal/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Schemas are schema catalog files, loaded together
	Schemas     []string `yaml:"schemas"`
	LogLevel    string   `yaml:"logLevel"`
	LogSections []string `yaml:"logSections"`
}

func Default() *Config {
	return &Config{
		LogLevel:    "warn",
		LogSections: []string{"types", "parser", "schema", "cmd"},
	}
}

// ReadConfig reads the yaml file at path. Settings it leaves out keep their Default value.
func ReadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't open file")
	}
	defer f.Close()

	config := Default()
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "couldn't decode yaml configuration")
	}
	if _, err := config.Level(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, errors.Wrapf(err, "invalid log level '%s'", c.LogLevel)
	}
	return level, nil
}

// Apply configures logging from c
func (c *Config) Apply() error {
	level, err := c.Level()
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.EnableSections(c.LogSections...)
	return nil
}
