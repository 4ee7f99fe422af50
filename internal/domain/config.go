package domain

// Config holds the validator settings. Zero values are filled by DefaultConfig.
type Config struct {
	Dir        string
	Extensions []string
}

// DefaultConfig checks ./config for files ending in .yaml.
func DefaultConfig() Config {
	return Config{
		Dir:        "config",
		Extensions: []string{".yaml"},
	}
}

// WithDefaults returns c with empty fields taken from DefaultConfig.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.Dir == "" {
		c.Dir = def.Dir
	}
	if len(c.Extensions) == 0 {
		c.Extensions = def.Extensions
	}
	return c
}
