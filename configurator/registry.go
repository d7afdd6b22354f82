package configurator

import (
	"sort"
	"sync"

	"github.com/a-h/templ"
)

// Step is one screen of the configuration wizard. Render is supplied by the
// UI layer and is never inspected here.
type Step struct {
	ID       string          `json:"id"`
	Label    string          `json:"label"`
	Required bool            `json:"isRequired"`
	Render   templ.Component `json:"-"`
}

// StepValidator decides whether the step identified by stepID is satisfied
// by cfg.
type StepValidator func(stepID string, cfg ProductConfig) bool

// ProductDefinition describes one product type: its ordered steps and the
// rule for leaving each step.
type ProductDefinition struct {
	Type         ProductType
	Name         string
	Steps        []Step
	ValidateStep StepValidator
}

// HasStep reports whether stepID is one of the definition's steps.
func (d ProductDefinition) HasStep(stepID string) bool {
	for _, s := range d.Steps {
		if s.ID == stepID {
			return true
		}
	}
	return false
}

// Registry maps product types to their definitions. It is filled once at
// startup and read by every session afterwards.
type Registry struct {
	mu          sync.RWMutex
	definitions map[ProductType]ProductDefinition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{definitions: make(map[ProductType]ProductDefinition)}
}

// Register stores def under def.Type, replacing any earlier definition.
func (r *Registry) Register(def ProductDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.definitions[def.Type] = def
}

// Get returns the definition for t or ErrProductNotFound.
func (r *Registry) Get(t ProductType) (ProductDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[t]
	if !ok {
		return ProductDefinition{}, ErrProductNotFound
	}
	return def, nil
}

// StepsFor returns the ordered steps for t, or nil when t is unregistered.
func (r *Registry) StepsFor(t ProductType) []Step {
	def, err := r.Get(t)
	if err != nil {
		return nil
	}
	return def.Steps
}

// CanProceed reports whether the wizard may leave stepID. Unregistered types
// and unknown steps are allowed through so a missing registration never
// blocks the wizard.
func (r *Registry) CanProceed(stepID string, t ProductType, cfg ProductConfig) bool {
	def, err := r.Get(t)
	if err != nil {
		return true
	}
	if !def.HasStep(stepID) || def.ValidateStep == nil {
		return true
	}
	return def.ValidateStep(stepID, cfg)
}

// Definitions returns every registered definition ordered by product type.
func (r *Registry) Definitions() []ProductDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]ProductDefinition, 0, len(r.definitions))
	for _, d := range r.definitions {
		defs = append(defs, d)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Type < defs[j].Type })
	return defs
}
