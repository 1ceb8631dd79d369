package cli

import (
	"flag"
	"fmt"

	"fortio.org/devtools/colormodel"
	"fortio.org/log"
	"github.com/BurntSushi/toml"
)

// Config holds the colorconv settings. Values come from the flag defaults,
// then the optional TOML file, then flags explicitly set on the command line.
type Config struct {
	Default   string `toml:"default"`   // starting color, any form Parse accepts
	TrueColor bool   `toml:"truecolor"` // 24 bit escapes instead of the 256 colors palette
	Width     int    `toml:"width"`     // swatch width in columns
	Prompt    string `toml:"prompt"`
}

const (
	DefaultWidth  = 24
	DefaultPrompt = "color> "
)

// LoadConfig reads path (if not empty) over base and validates the result.
func LoadConfig(path string, base Config) (Config, error) {
	cfg := base
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return base, fmt.Errorf("reading config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			log.Warnf("Ignoring unknown keys in %s: %v", path, undecoded)
		}
		log.LogVf("Loaded config from %s: %+v", path, cfg)
	}
	err := cfg.validate()
	return cfg, err
}

func (c *Config) validate() error {
	if c.Width < 0 {
		return fmt.Errorf("invalid swatch width %d", c.Width)
	}
	if c.Default == "" {
		c.Default = string(colormodel.Default)
	}
	if _, err := colormodel.Parse(c.Default); err != nil {
		return fmt.Errorf("invalid default color: %w", err)
	}
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	return nil
}

// applyFlags overrides cfg with the flags that were explicitly set.
func applyFlags(cfg *Config, fs *flag.FlagSet, def *string, trueColor *bool, width *int) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "default":
			cfg.Default = *def
		case "truecolor":
			cfg.TrueColor = *trueColor
		case "width":
			cfg.Width = *width
		}
	})
}
