package utils

import (
	"encoding/json"
	"flag"
	"io"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Renderer modes
const (
	ModeScreen = "screen"
	ModeScroll = "scroll"
	ModeInline = "inline"
)

// maxDelayMillis is the longest delay a time.Duration can hold
const maxDelayMillis = math.MaxInt64 / int64(time.Millisecond)

// ErrUsage marks configuration errors the user can fix on the command line
var ErrUsage = errors.New("invalid usage")

// Config holds the configuration for the game
type Config struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Probability float64 `json:"probability"`
	DelayMillis int     `json:"delay_ms"`
	Mode        string  `json:"mode"`
	Workers     int     `json:"workers"`
	Seed        uint64  `json:"seed"`
	LogFile     string  `json:"log_file"`

	// ConfigFile is only ever set from the command line
	ConfigFile string `json:"-"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:       120,
		Height:      30,
		Probability: 0.10,
		DelayMillis: 500,
		Mode:        ModeScreen,
		Workers:     1,
	}
}

// Delay returns the pause between generations
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMillis) * time.Millisecond
}

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Probability < 0 || c.Probability > 1 || math.IsNaN(c.Probability):
		return errors.Wrapf(ErrUsage, "live probability %v must be within [0,1]", c.Probability)
	case c.DelayMillis < 0:
		return errors.Wrapf(ErrUsage, "delay %dms must not be negative", c.DelayMillis)
	case int64(c.DelayMillis) > maxDelayMillis:
		return errors.Wrapf(ErrUsage, "delay %dms is too long", c.DelayMillis)
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrUsage, "grid size %dx%d must be positive", c.Width, c.Height)
	case c.Workers < 1:
		return errors.Wrapf(ErrUsage, "workers %d must be at least 1", c.Workers)
	}
	switch c.Mode {
	case ModeScreen, ModeScroll, ModeInline:
		return nil
	}
	return errors.Wrapf(ErrUsage, "unknown mode %q", c.Mode)
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()
	return config, loadInto(filename, &config)
}

func loadInto(filename string, config *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, config); err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.Probability, "p", c.Probability, "initial live-cell probability in [0,1]")
	fs.IntVar(&c.DelayMillis, "f", c.DelayMillis, "delay between generations in milliseconds")
	fs.StringVar(&c.Mode, "mode", c.Mode, "renderer: screen, scroll or inline")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines computing each generation")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 picks one from the clock")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write logs to this file")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON configuration file")
}

// ParseArgs builds the run configuration from defaults, an optional JSON
// file named by -config, and command-line flags, in increasing precedence
func ParseArgs(name string, args []string, output io.Writer) (Config, error) {
	config := DefaultConfig()
	if err := parseFlags(name, args, output, &config); err != nil {
		return config, err
	}

	if config.ConfigFile != "" {
		fromFile := DefaultConfig()
		if err := loadInto(config.ConfigFile, &fromFile); err != nil {
			return config, err
		}
		// flags win over the file, so apply them again on top of it
		if err := parseFlags(name, args, io.Discard, &fromFile); err != nil {
			return config, err
		}
		config = fromFile
	}

	return config, config.Validate()
}

func parseFlags(name string, args []string, output io.Writer, config *Config) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	config.Bind(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errors.Wrap(ErrUsage, err.Error())
	}
	if fs.NArg() > 0 {
		return errors.Wrapf(ErrUsage, "unexpected arguments %q", fs.Args())
	}
	return nil
}
