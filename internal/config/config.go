// Package config loads the command line configuration from TOML.
package config

import (
	"bytes"
	"io"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/askiada/go-textcleaner/internal/logger"
	"github.com/askiada/go-textcleaner/pkg/textcleaner"
)

var (
	ErrUnknownProfile     = errors.New("unknown profile")
	ErrInvalidConcurrency = errors.New("concurrency must be at least 1")
	ErrInvalidLogFormat   = errors.New("invalid log format")
	ErrInvalidLogLevel    = errors.New("invalid log level")
)

// Profile is a named list of steps.
type Profile struct {
	Description string   `toml:"description,omitempty"`
	Steps       []string `toml:"steps"`
}

type Config struct {
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
	Concurrency int    `toml:"concurrency"`
	// DefaultProfile is used when no steps or profile are requested.
	DefaultProfile string             `toml:"profile"`
	Profiles       map[string]Profile `toml:"profiles"`
}

// fileConfig tells unset keys apart from zero values.
type fileConfig struct {
	LogLevel       *string            `toml:"log_level"`
	LogFormat      *string            `toml:"log_format"`
	Concurrency    *int               `toml:"concurrency"`
	DefaultProfile *string            `toml:"profile"`
	Profiles       map[string]Profile `toml:"profiles"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:       "info",
		LogFormat:      logger.FormatConsole,
		Concurrency:    1,
		DefaultProfile: "basic",
		Profiles: map[string]Profile{
			"basic": {
				Description: "whitespace only",
				Steps: []string{
					string(textcleaner.ReplaceUnicodeNBSP),
					string(textcleaner.ReplaceNewlinesTabs),
					string(textcleaner.RemoveExtraWhitespaces),
				},
			},
			"web": {
				Description: "text extracted from HTML pages",
				Steps: []string{
					string(textcleaner.RemoveHTMLTags),
					string(textcleaner.DecodeHTMLEntities),
					string(textcleaner.ReplaceUnicodeNBSP),
					string(textcleaner.ReplaceNewlinesTabs),
					string(textcleaner.RemoveExtraQuotation),
					string(textcleaner.RemoveExtraWhitespaces),
				},
			},
			"search": {
				Description: "aggressive normalisation for indexing",
				Steps: []string{
					string(textcleaner.RemoveHTMLTags),
					string(textcleaner.DecodeHTMLEntities),
					string(textcleaner.RemoveURLs),
					string(textcleaner.ReplaceAccented),
					string(textcleaner.ReplaceUnicodeNBSP),
					string(textcleaner.ReplaceNewlinesTabs),
					string(textcleaner.RemovePunctuation),
					string(textcleaner.RemoveDigits),
					string(textcleaner.Lowercase),
					string(textcleaner.RemoveExtraWhitespaces),
				},
			},
		},
	}
}

// Load reads the TOML file at path over the defaults. Profiles in the file replace built-in profiles with the same
// name. The result is validated.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "unable to open config")
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "unable to load %s", path)
	}

	return cfg, nil
}

// Decode reads a TOML document over the defaults and validates the result. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, errors.Wrap(err, "unable to read config")
	}

	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err = dec.Decode(&fc)
	if err != nil {
		return Config{}, errors.Wrap(err, "unable to decode config")
	}

	cfg := Default()
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
	if fc.Concurrency != nil {
		cfg.Concurrency = *fc.Concurrency
	}
	if fc.DefaultProfile != nil {
		cfg.DefaultProfile = *fc.DefaultProfile
	}
	for name, p := range fc.Profiles {
		cfg.Profiles[name] = p
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every profile compiles and the scalar settings are usable.
func (c Config) Validate() error {
	if c.Concurrency < 1 {
		return errors.Wrapf(ErrInvalidConcurrency, "got %d", c.Concurrency)
	}
	if !logger.ValidLevel(c.LogLevel) {
		return errors.Wrap(ErrInvalidLogLevel, c.LogLevel)
	}
	if !logger.ValidFormat(c.LogFormat) {
		return errors.Wrap(ErrInvalidLogFormat, c.LogFormat)
	}
	if c.DefaultProfile != "" {
		if _, ok := c.Profiles[c.DefaultProfile]; !ok {
			return errors.Wrap(ErrUnknownProfile, c.DefaultProfile)
		}
	}
	for _, name := range c.ProfileNames() {
		_, err := textcleaner.ParseStepKeys(c.Profiles[name].Steps)
		if err != nil {
			return errors.Wrapf(err, "profile %s", name)
		}
	}

	return nil
}

// Profile compiles the named profile. An empty name selects the default profile.
func (c Config) Profile(name string) (textcleaner.Sequence, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	p, ok := c.Profiles[name]
	if !ok {
		return textcleaner.Sequence{}, errors.Wrap(ErrUnknownProfile, name)
	}

	seq, err := textcleaner.CompileNames(p.Steps...)
	if err != nil {
		return textcleaner.Sequence{}, errors.Wrapf(err, "profile %s", name)
	}

	return seq, nil
}

// ProfileNames returns the profile names, sorted.
func (c Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)

	return errors.Wrap(enc.Encode(c), "unable to encode config")
}
