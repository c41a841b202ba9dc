// file.go implements the optional --config defaults file.
//
// The file supplies default values for the flag surface; a flag that was
// explicitly set on the command line always wins. Keys use the flag
// spellings (log-level, run-ahead, ...) so the file and the flags stay
// one contract. YAML and JSON are both accepted, and JSON files may
// contain comments (JSONC): comments are stripped with
// github.com/tidwall/jsonc before parsing with encoding/json.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/simlaunch/internal/model"
)

// fileDefaults is the parsed shape of a --config file. Pointer fields
// distinguish "key absent" from "key set to the zero value", so a file
// can legitimately set workers to 0.
type fileDefaults struct {
	LogLevel       *string `json:"log-level" yaml:"log-level"`
	Workers        *int    `json:"workers" yaml:"workers"`
	RunAhead       *int    `json:"run-ahead" yaml:"run-ahead"`
	RunPingExample *bool   `json:"run-ping-example" yaml:"run-ping-example"`
	RunEchoExample *bool   `json:"run-echo-example" yaml:"run-echo-example"`
	RunFileExample *bool   `json:"run-file-example" yaml:"run-file-example"`

	// Files lists input filenames that precede the command-line
	// positionals in the resulting Config.
	Files []string `json:"files" yaml:"files"`
}

// loadFileDefaults reads and parses the defaults file at path. The format
// is chosen by extension: .yaml/.yml parse as YAML, .json/.jsonc as JSONC.
// A missing, unreadable, or malformed file is a user input error.
func loadFileDefaults(path string) (*fileDefaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitUsageError,
			fmt.Sprintf("cannot read config file %s", path), err)
	}

	var defaults fileDefaults
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &defaults); err != nil {
			return nil, model.WrapCLIError(model.ExitUsageError,
				fmt.Sprintf("cannot parse config file %s", path), err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &defaults); err != nil {
			return nil, model.WrapCLIError(model.ExitUsageError,
				fmt.Sprintf("cannot parse config file %s", path), err)
		}
	default:
		return nil, model.NewCLIError(model.ExitUsageError,
			fmt.Sprintf("unsupported config file extension %q (expected .yaml, .yml, .json or .jsonc)", filepath.Ext(path)))
	}

	return &defaults, nil
}

// applyFileDefaults copies file-supplied values into o for every flag the
// user did not set explicitly. fs.Changed is the authority on what was
// set: file defaults never override a flag that appeared on the command
// line, regardless of its value.
func applyFileDefaults(fs *pflag.FlagSet, o *options, defaults *fileDefaults) {
	if defaults.LogLevel != nil && !fs.Changed("log-level") {
		o.logLevel = *defaults.LogLevel
	}
	if defaults.Workers != nil && !fs.Changed("workers") {
		o.workers = *defaults.Workers
	}
	if defaults.RunAhead != nil && !fs.Changed("run-ahead") {
		o.runAhead = *defaults.RunAhead
	}
	if defaults.RunPingExample != nil && !fs.Changed("run-ping-example") {
		o.runPing = *defaults.RunPingExample
	}
	if defaults.RunEchoExample != nil && !fs.Changed("run-echo-example") {
		o.runEcho = *defaults.RunEchoExample
	}
	if defaults.RunFileExample != nil && !fs.Changed("run-file-example") {
		o.runFile = *defaults.RunFileExample
	}
}
