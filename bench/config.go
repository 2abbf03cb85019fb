package bench

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the file.
const (
	EnvRuns     = "BIDIPATH_RUNS"
	EnvSeed     = "BIDIPATH_SEED"
	EnvLogLevel = "BIDIPATH_LOG_LEVEL"
)

// ErrUnknownScenario is returned by Config.Select for a name that is neither
// a default scenario nor a configured random one.
var ErrUnknownScenario = errors.New("bench: unknown scenario")

// Config is the benchmark configuration file.
type Config struct {
	Runs       int              `yaml:"runs"`
	Seed       int64            `yaml:"seed"`
	LogLevel   string           `yaml:"log_level"`
	EarlyExit  bool             `yaml:"early_exit"`
	Algorithms []string         `yaml:"algorithms"`
	Scenarios  []string         `yaml:"scenarios"`
	Random     []RandomScenario `yaml:"random"`
}

// DefaultConfig runs every default scenario and algorithm once.
func DefaultConfig() *Config {
	return &Config{
		Runs:     1,
		Seed:     42,
		LogLevel: "info",
	}
}

// LoadConfig reads path (if non-empty) over the defaults, applies the
// environment overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvRuns); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", EnvRuns, err)
		}
		c.Runs = n
	}
	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", EnvSeed, err)
		}
		c.Seed = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	return nil
}

func (c *Config) validate() error {
	if c.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", c.Runs)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := c.ParsedAlgorithms(); err != nil {
		return err
	}
	for _, r := range c.Random {
		if r.Name == "" {
			return errors.New("random scenario without a name")
		}
		if r.Nodes < 1 || r.EdgesPerNode < 0 || r.MaxWeight < 1 {
			return fmt.Errorf("random scenario %q: need nodes ≥ 1, edges_per_node ≥ 0, max_weight ≥ 1", r.Name)
		}
		if r.Source < 0 || r.Source >= r.Nodes || r.Target < 0 || r.Target >= r.Nodes {
			return fmt.Errorf("random scenario %q: endpoints must be in [0,%d)", r.Name, r.Nodes)
		}
	}

	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// ParsedAlgorithms returns the configured algorithms, or all of them when
// none are listed.
func (c *Config) ParsedAlgorithms() ([]Algorithm, error) {
	if len(c.Algorithms) == 0 {
		return AllAlgorithms(), nil
	}
	out := make([]Algorithm, 0, len(c.Algorithms))
	for _, s := range c.Algorithms {
		a, err := ParseAlgorithm(s)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

// Select returns the scenarios to run. With no names listed that is the
// default suite followed by the configured random scenarios; otherwise the
// listed names in order, resolved against both.
func (c *Config) Select() ([]Scenario, error) {
	random := make(map[string]Scenario, len(c.Random))
	for _, r := range c.Random {
		random[r.Name] = r.Scenario(c.Seed)
	}

	if len(c.Scenarios) == 0 {
		out := DefaultScenarios(c.Seed)
		for _, r := range c.Random {
			out = append(out, random[r.Name])
		}
		return out, nil
	}

	byName := make(map[string]Scenario)
	for _, sc := range DefaultScenarios(c.Seed) {
		byName[sc.Name] = sc
	}
	for name, sc := range random {
		byName[name] = sc
	}

	out := make([]Scenario, 0, len(c.Scenarios))
	for _, name := range c.Scenarios {
		sc, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
		}
		out = append(out, sc)
	}

	return out, nil
}

// RunnerOptions translates the configuration into Runner options.
func (c *Config) RunnerOptions() ([]RunnerOption, error) {
	algs, err := c.ParsedAlgorithms()
	if err != nil {
		return nil, err
	}

	return []RunnerOption{
		WithRuns(c.Runs),
		WithAlgorithms(algs...),
		WithEarlyExit(c.EarlyExit),
		WithSeed(c.Seed),
	}, nil
}
