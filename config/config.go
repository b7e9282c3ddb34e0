// Package config loads sanitizer settings from a YAML file and STRIPXSS_
// environment variables and builds a [stripxss.Policy] of them.
package config

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/dsh2dsh/stripxss"
)

const envPrefix = "STRIPXSS"

// ErrUnsupportedSignatures is returned for a signatures_version this build
// doesn't know.
var ErrUnsupportedSignatures = errors.New("unsupported signatures version")

type Config struct {
	// Whitelist replaces the default whitelist, if not empty.
	Whitelist []string `mapstructure:"whitelist" yaml:"whitelist"`
	Allow     []string `mapstructure:"allow" yaml:"allow,omitempty"`
	Disallow  []string `mapstructure:"disallow" yaml:"disallow,omitempty"`

	Replacement string `mapstructure:"replacement" yaml:"replacement"`
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`

	SignaturesVersion int               `mapstructure:"signatures_version" yaml:"signatures_version"`
	StyleChecks       bool              `mapstructure:"style_checks" yaml:"style_checks"`
	Signatures        []SignatureConfig `mapstructure:"signatures" yaml:"signatures,omitempty"`
}

// SignatureConfig is a custom attack signature. Exactly one of Contains and
// Pattern must be set.
type SignatureConfig struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Contains string `mapstructure:"contains" yaml:"contains,omitempty"`
	Pattern  string `mapstructure:"pattern" yaml:"pattern,omitempty"`
}

// Load reads config from YAML file at path, with STRIPXSS_ environment
// variables on top of it. Empty path means environment and defaults only.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}
	return decode(v)
}

// Read is like Load, but reads YAML from r.
func Read(r io.Reader) (*Config, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config for errors, which would prevent building a
// Policy of it.
func (self *Config) Validate() error {
	if _, err := stripxss.ParseReplacement(self.Replacement); err != nil {
		return fmt.Errorf("config: replacement: %w", err)
	}

	if utf8.RuneCountInString(self.Placeholder) > 1 ||
		!utf8.ValidString(self.Placeholder) {
		return fmt.Errorf("config: placeholder %q must be a single character",
			self.Placeholder)
	}
	if r, size := utf8.DecodeRuneInString(self.Placeholder); size > 0 &&
		!stripxss.SafePlaceholder(r) {
		return fmt.Errorf("config: placeholder %q is a HTML special character",
			self.Placeholder)
	}

	if v := self.SignaturesVersion; v < 0 || v > stripxss.SignaturesVersion {
		return fmt.Errorf("config: signatures_version %d: %w", v,
			ErrUnsupportedSignatures)
	}

	for i := range self.Signatures {
		if err := self.Signatures[i].validate(); err != nil {
			return fmt.Errorf("config: signatures[%d]: %w", i, err)
		}
	}
	return nil
}

func (self *SignatureConfig) validate() error {
	switch {
	case strings.TrimSpace(self.Name) == "":
		return errors.New("name is required")
	case self.Contains == "" && self.Pattern == "":
		return fmt.Errorf("%q: one of contains or pattern is required", self.Name)
	case self.Contains != "" && self.Pattern != "":
		return fmt.Errorf("%q: only one of contains or pattern may be set",
			self.Name)
	case self.Pattern != "":
		if _, err := regexp.Compile(self.Pattern); err != nil {
			return fmt.Errorf("%q: invalid pattern: %w", self.Name, err)
		}
	}
	return nil
}

func (self *SignatureConfig) signature() (stripxss.Signature, error) {
	if self.Pattern != "" {
		return stripxss.Pattern(self.Name, self.Pattern)
	}
	return stripxss.Contains(self.Name, self.Contains), nil
}

// Policy validates the config and returns a new Policy built of it.
func (self *Config) Policy() (*stripxss.Policy, error) {
	if err := self.Validate(); err != nil {
		return nil, err
	}

	p := stripxss.NewPolicy()
	if len(self.Whitelist) == 0 {
		p.WithWhitelist(stripxss.DefaultWhitelist())
	} else {
		p.WithWhitelist(stripxss.NewWhitelist(self.Whitelist...))
	}
	p.AllowElements(self.Allow...).DisallowElements(self.Disallow...)

	sigs := stripxss.DefaultSignatures()
	if self.StyleChecks {
		sigs = stripxss.ExtendedSignatures()
	}
	for i := range self.Signatures {
		sig, err := self.Signatures[i].signature()
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		sigs = append(sigs, sig)
	}
	p.WithSignatures(sigs)

	// already validated
	r, _ := stripxss.ParseReplacement(self.Replacement)
	if r == stripxss.Entities {
		p.ReplaceWithEntities()
	} else if self.Placeholder != "" {
		ph, _ := utf8.DecodeRuneInString(self.Placeholder)
		p.ReplaceWithSymbol(ph)
	}
	return p, nil
}

// Marshal returns the config as YAML.
func (self *Config) Marshal() ([]byte, error) {
	b, err := yaml.Marshal(self)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return b, nil
}
