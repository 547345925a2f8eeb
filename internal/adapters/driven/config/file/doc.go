// Package file provides a TOML-backed implementation of the config store,
// with optional hot-reload when the file changes on disk.
package file
