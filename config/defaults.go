package config

import (
	"github.com/spf13/viper"

	"github.com/dsh2dsh/stripxss"
)

// Default returns the config of [stripxss.DefaultPolicy].
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	// list keys need a default, or environment variables aren't seen by
	// Unmarshal
	v.SetDefault("whitelist", []string{})
	v.SetDefault("allow", []string{})
	v.SetDefault("disallow", []string{})

	v.SetDefault("replacement", stripxss.Symbol.String())
	v.SetDefault("placeholder", string(stripxss.DefaultPlaceholder))
	v.SetDefault("signatures_version", stripxss.SignaturesVersion)
	v.SetDefault("style_checks", false)
}

func applyDefaults(cfg *Config) {
	if len(cfg.Whitelist) == 0 {
		cfg.Whitelist = stripxss.DefaultWhitelist().Names()
	}
	if cfg.Replacement == "" {
		cfg.Replacement = stripxss.Symbol.String()
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = string(stripxss.DefaultPlaceholder)
	}
	if cfg.SignaturesVersion == 0 {
		cfg.SignaturesVersion = stripxss.SignaturesVersion
	}
}
