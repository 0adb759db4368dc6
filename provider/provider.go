// Package provider holds the immutable registry of platform adapters.
package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/seam-cli/seam/live"
	"github.com/seam-cli/seam/provider/afreeca"
	"github.com/seam-cli/seam/provider/bili"
	"github.com/seam-cli/seam/provider/huya"
)

// Provider describes one registered platform.
type Provider struct {
	// Key is the short, case-sensitive lookup code (e.g. "bili").
	Key string
	// Name is the human readable platform name.
	Name string
	// Live is the shared adapter instance.
	Live live.Live
}

func (p Provider) String() string {
	return p.Name
}

// Registry maps platform keys to shared adapters. It is never mutated after New returns.
type Registry struct {
	byKey map[string]Provider
	keys  []string
}

// New builds a registry from ps.
// It panics on an empty key, a nil adapter or a duplicate key.
func New(ps ...Provider) *Registry {
	r := &Registry{byKey: make(map[string]Provider, len(ps))}

	for _, p := range ps {
		if p.Key == "" {
			panic("provider: empty platform key")
		}
		if p.Live == nil {
			panic(fmt.Sprintf("provider: nil adapter for %q", p.Key))
		}
		if _, exists := r.byKey[p.Key]; exists {
			panic(fmt.Sprintf("provider: duplicate platform key %q", p.Key))
		}
		r.byKey[p.Key] = p
		r.keys = append(r.keys, p.Key)
	}

	sort.Strings(r.keys)
	return r
}

// Get returns the adapter registered under key.
// An unknown key yields (nil, false); no fallback adapter is ever constructed.
func (r *Registry) Get(key string) (live.Live, bool) {
	p, ok := r.byKey[key]
	if !ok {
		return nil, false
	}
	return p.Live, true
}

// Lookup returns the full descriptor registered under key.
func (r *Registry) Lookup(key string) (Provider, bool) {
	p, ok := r.byKey[key]
	return p, ok
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Providers returns the registered descriptors sorted by key.
func (r *Registry) Providers() []Provider {
	ps := make([]Provider, len(r.keys))
	for i, k := range r.keys {
		ps[i] = r.byKey[k]
	}
	return ps
}

// Len returns the number of registered platforms.
func (r *Registry) Len() int {
	return len(r.keys)
}

// Builtin returns the process-wide registry of bundled adapters.
// It is built on first use and shared afterwards.
var Builtin = sync.OnceValue(func() *Registry {
	return New(
		Provider{Key: afreeca.Key, Name: "AfreecaTV", Live: afreeca.New()},
		Provider{Key: bili.Key, Name: "Bilibili Live", Live: bili.New()},
		Provider{Key: huya.Key, Name: "Huya", Live: huya.New()},
	)
})

// Get looks key up in the builtin registry.
func Get(key string) (live.Live, bool) {
	return Builtin().Get(key)
}
