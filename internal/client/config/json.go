package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/autofinance/internal/flagx"
)

// JsonConfig is a DTO used exclusively for config file unmarshalling. Pointer
// and empty values mean "not set".
type JsonConfig struct {
	ServerURL   string `json:"server_url" yaml:"server_url"`
	StoragePath string `json:"storage_path" yaml:"storage_path"`
	LogLevel    string `json:"log_level" yaml:"log_level"`
	Ephemeral   *bool  `json:"ephemeral" yaml:"ephemeral"`
}

// unmarshalConfigFile decodes data as YAML for .yaml/.yml files and as JSON
// otherwise.
func unmarshalConfigFile(path string, data []byte, jc *JsonConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, jc)
	default:
		return json.Unmarshal(data, jc)
	}
}

// parseJson overlays Config with values loaded from the config file named by
// -c or -config (JSON, or YAML by extension). Without either flag it does
// nothing. Read and unmarshal errors panic; the caller decides whether to
// recover.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := unmarshalConfigFile(jsonConfigFile, data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.Ephemeral != nil {
		cfg.Ephemeral = *jc.Ephemeral
	}
}
