// Package config loads and validates screener configuration from YAML.
//
// Loading follows a three-step pipeline: Load parses the file with ${VAR}
// environment substitution, LoadWithDefaults fills unset optional fields,
// and LoadAndValidate rejects configurations that cannot run.
package config
