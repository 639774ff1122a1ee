package providers

import (
	"fmt"
	"sync"
)

// DefaultMaxOutput is the output token budget assumed for models the
// registry has no metadata for.
const DefaultMaxOutput = 4096

// Registry routes model names to the provider that serves them and carries
// each model's output-token budget. Registration happens once at startup;
// lookups are safe across sequential calls.
type Registry struct {
	mu         sync.RWMutex
	adapters   map[string]Provider
	modelIndex map[string]string
	modelInfo  map[string]ModelInfo
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters:   make(map[string]Provider),
		modelIndex: make(map[string]string),
		modelInfo:  make(map[string]ModelInfo),
	}
}

// Register adds a provider and indexes its supported models.
func (r *Registry) Register(p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := p.Name()
	if name == "" {
		return fmt.Errorf("provider name cannot be empty")
	}
	if _, exists := r.adapters[name]; exists {
		return fmt.Errorf("provider already registered: %s", name)
	}

	r.adapters[name] = p
	for _, info := range p.SupportedModels() {
		r.modelIndex[info.ID] = name
		r.modelInfo[info.ID] = info
	}
	return nil
}

// ProviderFor returns the provider that serves the given model.
func (r *Registry) ProviderFor(model string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.modelIndex[model]
	if !ok {
		return nil, fmt.Errorf("no provider registered for model: %s", model)
	}
	return r.adapters[name], nil
}

// Provider returns a registered provider by name.
func (r *Registry) Provider(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("provider not registered: %s", name)
	}
	return p, nil
}

// MaxOutputTokens returns the output token budget for a model, falling back
// to DefaultMaxOutput for unknown models.
func (r *Registry) MaxOutputTokens(model string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if info, ok := r.modelInfo[model]; ok && info.MaxOutput > 0 {
		return info.MaxOutput
	}
	return DefaultMaxOutput
}

// Models returns metadata for every registered model.
func (r *Registry) Models() []ModelInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ModelInfo, 0, len(r.modelInfo))
	for _, info := range r.modelInfo {
		out = append(out, info)
	}
	return out
}
