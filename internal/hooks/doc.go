// Package hooks implements the host side of the plugin hook registry: named,
// append-only filters that plugins contribute configuration defaults and
// environment patches to.
package hooks
