// Package config loads the optional blogc.yaml file that configures
// the CLI collaborator. It has no effect on the compilation core: a
// missing blogc.yaml is not an error, and every field it recognizes is
// ambient tooling configuration, never a DSL semantics override.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// schemaJSON is the embedded JSON Schema every blogc.yaml document is
// validated against before its fields are trusted.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "outputDir": {"type": "string"},
    "minEngineVersion": {"type": "string"},
    "lintWords": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

const schemaURL = "blogc://config.schema.json"

// Config is the parsed, validated contents of blogc.yaml.
type Config struct {
	OutputDir        string   `yaml:"outputDir"`
	MinEngineVersion string   `yaml:"minEngineVersion"`
	LintWords        []string `yaml:"lintWords"`
}

// Load reads and validates the blogc.yaml at path against
// runningVersion (a "vMAJOR.MINOR.PATCH" string, per
// golang.org/x/mod/semver's required "v" prefix). A missing file
// returns a zero Config and a nil error: blogc.yaml is optional.
func Load(path string, runningVersion string) (Config, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, &ParseError{Path: path, Cause: err}
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, &ParseError{Path: path, Cause: err}
	}
	if doc == nil {
		return Config{}, nil
	}

	if _, ok := doc["caseSensitive"]; ok {
		return Config{}, &CaseSensitivityError{}
	}

	if err := validate(doc); err != nil {
		return Config{}, &ValidationError{Path: path, Cause: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, &ParseError{Path: path, Cause: err}
	}

	if cfg.MinEngineVersion != "" {
		required := normalizeVersion(cfg.MinEngineVersion)
		running := normalizeVersion(runningVersion)
		if semver.Compare(required, running) > 0 {
			return Config{}, &VersionError{Required: cfg.MinEngineVersion, Running: runningVersion}
		}
	}

	return cfg, nil
}

func normalizeVersion(v string) string {
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}

func validate(doc map[string]any) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("compiling embedded schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compiling embedded schema: %w", err)
	}
	return schema.Validate(doc)
}
