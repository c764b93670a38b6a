// Package file provides a TOML-backed implementation of the
// driven.ConfigStore port. Configuration lives in a single file under
// the threadlens config directory and nested tables are flattened to
// dot-notation keys ("assistant.model") for lookup.
package file
