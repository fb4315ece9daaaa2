package config

import "os"

// parseEnv overlays Config with values from the environment.
//
// Supported variables:
//
//	JRN_JOURNAL  path of the journal file
//
// The environment is read only here, once, at startup; nothing below the
// config layer touches ambient process state.
func parseEnv(cfg *Config) {
	if path, ok := os.LookupEnv("JRN_JOURNAL"); ok && path != "" {
		cfg.JournalPath = path
	}
}
