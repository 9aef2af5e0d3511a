package llm

import "strings"

// Registry holds providers by name, remembering registration order.
type Registry struct {
	providers map[string]Provider
	order     []string
}

func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

func (r *Registry) Register(p Provider) {
	if r == nil || p == nil {
		return
	}
	name := strings.ToLower(strings.TrimSpace(p.Name()))
	if name == "" {
		return
	}
	if r.providers == nil {
		r.providers = make(map[string]Provider)
	}
	if _, exists := r.providers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.providers[name] = p
}

func (r *Registry) Get(name string) (Provider, bool) {
	if r == nil || r.providers == nil {
		return nil, false
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, false
	}
	p, ok := r.providers[name]
	return p, ok
}

// First returns the earliest-registered provider.
func (r *Registry) First() (Provider, bool) {
	if r == nil || len(r.order) == 0 {
		return nil, false
	}
	return r.Get(r.order[0])
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.providers)
}
