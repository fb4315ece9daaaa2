// Package config handles configuration for the jrn CLI, including defaults,
// JSON overlay, environment variables, and command-line flags.
package config

// Config holds runtime settings for jrn.
//
// Fields:
//   - JournalPath: path of the encrypted journal file.
//   - Password: journal password given non-interactively. Insecure (visible
//     in shell history and process listings); prefer PasswordFile or the
//     interactive prompt.
//   - PasswordFile: file to read the journal password from.
//   - FileType: extension hint for entry content (journals are plain text).
//   - DontLoop: exit after the first executed command instead of looping.
type Config struct {
	JournalPath  string
	Password     string
	PasswordFile string
	FileType     string
	DontLoop     bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.JournalPath = "./jrn.json"
	c.FileType = ".md"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
