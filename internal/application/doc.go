// Package application wires the host together: it loads plugins into a fresh
// hook registry, checks the resulting MFE configuration, renders the
// generated files and builds the inspection HTTP server. The main package
// only parses flags and picks a command.
package application
