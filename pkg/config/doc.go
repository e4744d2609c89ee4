// Package config loads workflow definitions, the entity catalog and runtime
// settings.
//
// Sources are layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the workflow file, TOML or YAML by extension
//  3. DOCFLOW_* environment variables for settings
//  4. explicit overrides, usually command line flags
//
// Without an explicit path the workflow file is looked up as
// ./docflow.toml and then as docflow/workflows.toml in the XDG config
// directories.
package config
