package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/jrn/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "set to the zero value", so an entry the
// file does not mention never clobbers a default.
type JsonConfig struct {
	JournalPath  *string `json:"journal_path"`
	Password     *string `json:"password"`
	PasswordFile *string `json:"password_file"`
	FileType     *string `json:"file_type"`
	DontLoop     *bool   `json:"dont_loop"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. The JRN_CONFIG_FILE environment variable.
//  3. If both are empty, no JSON is loaded and the function returns.
//
// A config file that was explicitly pointed at but cannot be read or
// parsed is a startup failure: read and unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		jsonConfigFile = os.Getenv("JRN_CONFIG_FILE")
	}
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.JournalPath != nil {
		cfg.JournalPath = *jc.JournalPath
	}
	if jc.Password != nil {
		cfg.Password = *jc.Password
	}
	if jc.PasswordFile != nil {
		cfg.PasswordFile = *jc.PasswordFile
	}
	if jc.FileType != nil {
		cfg.FileType = *jc.FileType
	}
	if jc.DontLoop != nil {
		cfg.DontLoop = *jc.DontLoop
	}
}
