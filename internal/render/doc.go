// Package render turns registry contributions into the files the host
// generates: a KEY=VALUE environment file built from environment patches and
// a YAML configuration built from configuration defaults.
package render
