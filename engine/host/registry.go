package host

import (
	"sort"

	"github.com/pkg/errors"
)

// Registry maps plugin names such as "voxel-shader" to plugin instances.
type Registry struct {
	plugins map[string]interface{}
}

func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]interface{})}
}

func (r *Registry) Register(name string, plugin interface{}) error {
	if name == "" {
		return errors.New("plugin name must not be empty")
	}
	if plugin == nil {
		return errors.Errorf("plugin %q is nil", name)
	}
	if _, exists := r.plugins[name]; exists {
		return errors.Errorf("plugin %q is already registered", name)
	}
	r.plugins[name] = plugin
	return nil
}

func (r *Registry) Get(name string) (interface{}, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
