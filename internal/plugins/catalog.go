// Package plugins discovers and loads host plugins into a hook registry.
package plugins

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ihworker/custom-authn-mfe/internal/hooks"
	"github.com/ihworker/custom-authn-mfe/internal/mfe"
)

// ErrDuplicatePlugin is returned when two plugins share a name.
var ErrDuplicatePlugin = errors.New("plugin already registered")

// Plugin contributes items to the host registry.
type Plugin interface {
	Name() string
	Register(reg hooks.Registrar, lookup mfe.LookupFunc)
}

// Catalog is an ordered set of plugins keyed by name.
type Catalog struct {
	mu      sync.RWMutex
	plugins []Plugin
	names   map[string]struct{}
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{names: make(map[string]struct{})}
}

// Builtin returns a catalog holding the plugins shipped with this host.
func Builtin() *Catalog {
	c := NewCatalog()
	_ = c.Add(mfe.Plugin{})
	return c
}

// Add appends p unless a plugin with the same name is already present.
func (c *Catalog) Add(p Plugin) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.names[p.Name()]; ok {
		return fmt.Errorf("%s: %w", p.Name(), ErrDuplicatePlugin)
	}
	c.names[p.Name()] = struct{}{}
	c.plugins = append(c.plugins, p)
	return nil
}

// Names lists plugin names in load order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.plugins))
	for _, p := range c.plugins {
		out = append(out, p.Name())
	}
	return out
}

// Load registers every plugin once, in order.
func (c *Catalog) Load(reg hooks.Registrar, lookup mfe.LookupFunc, logger *zap.Logger) {
	c.mu.RLock()
	plugins := make([]Plugin, len(c.plugins))
	copy(plugins, c.plugins)
	c.mu.RUnlock()

	for _, p := range plugins {
		p.Register(reg, lookup)
		logger.Debug("plugin loaded", zap.String("plugin", p.Name()))
	}
	logger.Info("plugins loaded", zap.Int("count", len(plugins)))
}
