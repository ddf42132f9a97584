// Package sources holds the registry of named pip index mirrors.
package sources

import (
	"errors"
	"fmt"
)

// ErrUnknownSource is returned when a name is not present in the registry.
// Asking for an unknown name is a caller error, not a runtime condition.
var ErrUnknownSource = errors.New("unknown source")

// Source is one named mirror: a human-readable name mapped to the base
// URL of a pip index.
type Source struct {
	Name string
	URL  string
}

// Registry is an ordered, immutable name-to-URL mapping. The first entry
// is the default selection. Construct with New; the zero value is empty.
type Registry struct {
	sources []Source
	byName  map[string]string
}

// New builds a registry from the given sources, preserving order.
// Empty names, empty URLs, and duplicate names are rejected.
func New(srcs []Source) (*Registry, error) {
	if len(srcs) == 0 {
		return nil, errors.New("registry requires at least one source")
	}

	r := &Registry{
		sources: make([]Source, 0, len(srcs)),
		byName:  make(map[string]string, len(srcs)),
	}

	for _, s := range srcs {
		if s.Name == "" {
			return nil, errors.New("source with empty name")
		}
		if s.URL == "" {
			return nil, fmt.Errorf("source %q has empty URL", s.Name)
		}
		if _, exists := r.byName[s.Name]; exists {
			return nil, fmt.Errorf("duplicate source %q", s.Name)
		}
		r.sources = append(r.sources, s)
		r.byName[s.Name] = s.URL
	}

	return r, nil
}

// Names returns all source names in construction order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.sources))
	for i, s := range r.sources {
		names[i] = s.Name
	}
	return names
}

// Resolve returns the URL configured for name.
func (r *Registry) Resolve(name string) (string, error) {
	url, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
	return url, nil
}

// Default returns the first configured source.
func (r *Registry) Default() Source {
	return r.sources[0]
}

// All returns the sources in order. The returned slice is a copy.
func (r *Registry) All() []Source {
	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// Len returns the number of configured sources.
func (r *Registry) Len() int {
	return len(r.sources)
}

// Defaults returns the built-in mirror table. PyPI itself comes first and
// is therefore the default selection.
func Defaults() []Source {
	return []Source{
		{Name: "pypi", URL: "https://pypi.org/simple"},
		{Name: "tuna", URL: "https://pypi.tuna.tsinghua.edu.cn/simple"},
		{Name: "aliyun", URL: "https://mirrors.aliyun.com/pypi/simple"},
		{Name: "ustc", URL: "https://pypi.mirrors.ustc.edu.cn/simple"},
		{Name: "douban", URL: "https://pypi.douban.com/simple"},
		{Name: "tencent", URL: "https://mirrors.cloud.tencent.com/pypi/simple"},
	}
}
