// Package config loads, normalizes, and validates shotsync configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: output/log directories, the worklist database location,
// ffmpeg settings, and report rendering options.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
