// Package config loads the YAML run configuration:
//
//	interaction_type: retweet        # mention | retweet | reply | quote
//	time_window:                     # optional; start and end together
//	  start: 1577836800
//	  end:   1580515199
//	reduction:
//	  giant_component: true
//	  aggregation: hard              # none | soft | hard
//	  hard_threshold: 2
//	log_level: info
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socnet/logging"
	"github.com/katalvlaran/socnet/reduce"
	"github.com/katalvlaran/socnet/tweet"
)

// Config is one pipeline run request.
type Config struct {
	InteractionType tweet.Kind    `yaml:"interaction_type"`
	TimeWindow      *Window       `yaml:"time_window,omitempty"`
	Reduction       reduce.Policy `yaml:"reduction"`
	LogLevel        string        `yaml:"log_level"`
}

// Window holds optional bounds as written in the file.
type Window struct {
	Start *int64 `yaml:"start"`
	End   *int64 `yaml:"end"`
}

// Default returns a retweet run with no window and no reduction.
func Default() Config {
	return Config{
		InteractionType: tweet.Retweet,
		Reduction:       reduce.Policy{Aggregation: reduce.None},
		LogLevel:        logging.DefaultLevel,
	}
}

// Load reads and validates the file at path. Keys missing from the file keep
// their Default values.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes b over Default and validates the result. Unknown keys are
// rejected.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", tweet.ErrInvalidArgument, err)
	}
	if k, err := tweet.ParseKind(string(cfg.InteractionType)); err == nil {
		cfg.InteractionType = k
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the interaction type, the window and the reduction policy.
// An unrecognized aggregation is left for the reducer to warn about.
func (c Config) Validate() error {
	if !c.InteractionType.Valid() {
		return fmt.Errorf("%w: unknown interaction type %q", tweet.ErrInvalidArgument, c.InteractionType)
	}
	if _, err := c.Window(); err != nil {
		return err
	}
	return c.Reduction.Validate()
}

// Window converts the configured bounds; nil when no window is set.
func (c Config) Window() (*tweet.Window, error) {
	if c.TimeWindow == nil {
		return nil, nil
	}
	return tweet.WindowFrom(c.TimeWindow.Start, c.TimeWindow.End)
}
