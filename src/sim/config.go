package sim

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//default options
const (
	DefRows        = 20
	DefCols        = 20
	DefGenerations = 10
	DefLogDir      = "logs"
	DefInterval    = time.Millisecond * 100
)

//Config holds the simulation run options. Values come from DefaultConfig,
//optionally overridden by a YAML config file and then by CLI flags.
type Config struct {
	Pattern     string        `yaml:"pattern"`
	Template    string        `yaml:"template"`
	Rows        int           `yaml:"rows"`
	Cols        int           `yaml:"cols"`
	Generations int           `yaml:"generations"`
	Rule        string        `yaml:"rule"`
	LogDir      string        `yaml:"log_dir"`
	Interval    time.Duration `yaml:"interval"`
	Interactive bool          `yaml:"interactive"`
}

//DefaultConfig returns the default run options
func DefaultConfig() Config {
	return Config{
		Template:    "blinker",
		Rows:        DefRows,
		Cols:        DefCols,
		Generations: DefGenerations,
		Rule:        "conway",
		LogDir:      DefLogDir,
		Interval:    DefInterval,
	}
}

//UnmarshalYAML decodes a config document, accepting human-readable interval
//values like "150ms". Keys absent from the document keep their prior values.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	raw := struct {
		Pattern     *string `yaml:"pattern"`
		Template    *string `yaml:"template"`
		Rows        *int    `yaml:"rows"`
		Cols        *int    `yaml:"cols"`
		Generations *int    `yaml:"generations"`
		Rule        *string `yaml:"rule"`
		LogDir      *string `yaml:"log_dir"`
		Interval    *string `yaml:"interval"`
		Interactive *bool   `yaml:"interactive"`
	}{}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Pattern != nil {
		c.Pattern = *raw.Pattern
	}
	if raw.Template != nil {
		c.Template = *raw.Template
	}
	if raw.Rows != nil {
		c.Rows = *raw.Rows
	}
	if raw.Cols != nil {
		c.Cols = *raw.Cols
	}
	if raw.Generations != nil {
		c.Generations = *raw.Generations
	}
	if raw.Rule != nil {
		c.Rule = *raw.Rule
	}
	if raw.LogDir != nil {
		c.LogDir = *raw.LogDir
	}
	if raw.Interactive != nil {
		c.Interactive = *raw.Interactive
	}
	if raw.Interval != nil {
		d, err := time.ParseDuration(*raw.Interval)
		if err != nil {
			return errors.Wrapf(err, "invalid interval %q", *raw.Interval)
		}
		c.Interval = d
	}
	return nil
}

//LoadConfig reads a YAML config file over the defaults
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "failed to read config file %s", path)
	}
	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "failed to decode config file %s", path)
	}
	return config, nil
}
