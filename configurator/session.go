package configurator

import (
	"context"
	"fmt"
	"sync"
)

// CompletionSink receives the finished configuration, typically to persist
// it as a quote line.
type CompletionSink interface {
	OnComplete(ctx context.Context, cfg ProductConfig) error
}

// SinkFunc adapts a function to CompletionSink.
type SinkFunc func(ctx context.Context, cfg ProductConfig) error

func (f SinkFunc) OnComplete(ctx context.Context, cfg ProductConfig) error {
	return f(ctx, cfg)
}

// SessionOption configures a new Session.
type SessionOption func(*Session)

// WithPosition sets the line position of the configuration being built.
func WithPosition(position int) SessionOption {
	return func(s *Session) {
		s.draft.Position = position
	}
}

// WithInitialConfig starts the session in edit mode. When cfg names a
// product type the session opens on the first step instead of the type
// selection.
func WithInitialConfig(cfg ProductConfig) SessionOption {
	return func(s *Session) {
		if cfg == nil {
			return
		}
		s.draft = *cfg.Base()
		if cfg.Base().ProductType == "" {
			return
		}
		s.cfg = cfg
		s.stepIndex = 1
	}
}

// Session drives one user through the steps of one product definition.
//
// stepIndex 0 is the type selection; 1..N index the definition's steps, the
// last of which is the review step. All methods are safe for concurrent use
// and each mutation is applied atomically.
type Session struct {
	mu        sync.Mutex
	registry  *Registry
	draft     Common
	cfg       ProductConfig
	stepIndex int
	completed bool
}

// NewSession creates a session backed by registry.
func NewSession(registry *Registry, opts ...SessionOption) *Session {
	s := &Session{registry: registry}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg != nil {
		if c, err := Clone(s.cfg); err == nil {
			s.cfg = c
		}
		if len(registry.StepsFor(s.cfg.Base().ProductType)) == 0 {
			s.stepIndex = 0
		}
	}
	return s
}

// SessionState is a read-only snapshot of a session.
type SessionState struct {
	StepIndex   int           `json:"stepIndex"`
	Selecting   bool          `json:"selecting"`
	ProductType ProductType   `json:"productType,omitempty"`
	Steps       []Step        `json:"steps"`
	CurrentStep *Step         `json:"currentStep,omitempty"`
	CanProceed  bool          `json:"canProceed"`
	Completed   bool          `json:"completed"`
	Config      ProductConfig `json:"config,omitempty"`
}

// State returns a snapshot of the session. The config in the snapshot is a
// copy and may be modified freely.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := SessionState{
		StepIndex: s.stepIndex,
		Selecting: s.stepIndex == 0,
		Completed: s.completed,
	}
	if s.cfg == nil {
		return st
	}
	t := s.cfg.Base().ProductType
	st.ProductType = t
	st.Steps = s.registry.StepsFor(t)
	if step, ok := s.currentStepLocked(); ok {
		st.CurrentStep = &step
		st.CanProceed = s.registry.CanProceed(step.ID, t, s.cfg)
	}
	if c, err := Clone(s.cfg); err == nil {
		st.Config = c
	}
	return st
}

// StepIndex returns the current step index (0 while selecting).
func (s *Session) StepIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepIndex
}

// Config returns a copy of the current configuration, or nil when no
// product type has been chosen.
func (s *Session) Config() ProductConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg == nil {
		return nil
	}
	c, err := Clone(s.cfg)
	if err != nil {
		return nil
	}
	return c
}

// SelectProductType starts a fresh configuration of type t. Every field of
// the previous configuration except the common line fields is discarded.
func (s *Session) SelectProductType(t ProductType, productTypeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return ErrSessionCompleted
	}
	if !t.Valid() {
		return &UnknownProductTypeError{Type: string(t)}
	}
	if _, err := s.registry.Get(t); err != nil {
		return fmt.Errorf("select %s: %w", t, err)
	}

	base := s.draft
	if s.cfg != nil {
		base = *s.cfg.Base()
	}
	cfg := NewConfig(t)
	c := cfg.Base()
	c.ProductTypeID = productTypeID
	c.Position = base.Position
	c.Area = base.Area
	c.Quantity = base.Quantity

	s.cfg = cfg
	s.stepIndex = 1
	return nil
}

// DeselectProductType clears the product type and returns to the type
// selection.
func (s *Session) DeselectProductType() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return ErrSessionCompleted
	}
	if s.cfg != nil {
		s.draft = *s.cfg.Base()
	}
	s.draft.ProductType = ""
	s.draft.ProductTypeID = ""
	s.cfg = nil
	s.stepIndex = 0
	return nil
}

// CanProceed reports whether Next would currently advance.
func (s *Session) CanProceed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg == nil {
		return false
	}
	step, ok := s.currentStepLocked()
	if !ok {
		return true
	}
	return s.registry.CanProceed(step.ID, s.cfg.Base().ProductType, s.cfg)
}

// Next advances one step when the current step validates. On the review
// step it is a no-op; completion goes through Complete. From the type
// selection it re-enters the first step if a type is still chosen.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return ErrSessionCompleted
	}
	if s.cfg == nil {
		return ErrNoProductType
	}
	t := s.cfg.Base().ProductType
	n := len(s.registry.StepsFor(t))
	if s.stepIndex == 0 {
		if n > 0 {
			s.stepIndex = 1
		}
		return nil
	}
	if s.stepIndex >= n {
		s.stepIndex = n
		return nil
	}
	step, _ := s.currentStepLocked()
	if !s.registry.CanProceed(step.ID, t, s.cfg) {
		return fmt.Errorf("step %q: %w", step.ID, ErrCannotAdvance)
	}
	s.stepIndex++
	return nil
}

// Back moves one step back. From the first step it returns to the type
// selection without clearing the chosen type.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return ErrSessionCompleted
	}
	if s.stepIndex > 0 {
		s.stepIndex--
	}
	return nil
}

// JumpTo moves to an already reached step, 1 <= index <= current.
func (s *Session) JumpTo(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return ErrSessionCompleted
	}
	if index < 1 || index > s.stepIndex {
		return fmt.Errorf("jump to %d from %d: %w", index, s.stepIndex, ErrInvalidJump)
	}
	s.stepIndex = index
	return nil
}

// Update merges fields, keyed by JSON field name, into the configuration.
// A nil value clears a field. The product type is never changed by Update.
// Before a type is chosen only the common line fields can be set.
func (s *Session) Update(fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return ErrSessionCompleted
	}
	if s.cfg == nil {
		var next Common
		if err := overlayJSON(s.draft, fields, &next, "productType", "productTypeId"); err != nil {
			return fmt.Errorf("update draft: %w", err)
		}
		next.ProductType = ""
		next.ProductTypeID = ""
		s.draft = next
		return nil
	}
	next, err := mergeFields(s.cfg, fields)
	if err != nil {
		return err
	}
	s.cfg = next
	return nil
}

// AddAccessory adds an accessory line, merging with an existing line for the
// same catalog item.
func (s *Session) AddAccessory(line AccessoryLine) error {
	return s.mutateAccessories(func(lines []AccessoryLine) []AccessoryLine {
		return AddAccessory(lines, line)
	})
}

// SetAccessoryQty changes an accessory quantity, removing it at zero.
func (s *Session) SetAccessoryQty(catalogItemID string, qty int) error {
	return s.mutateAccessories(func(lines []AccessoryLine) []AccessoryLine {
		return SetAccessoryQty(lines, catalogItemID, qty)
	})
}

func (s *Session) mutateAccessories(fn func([]AccessoryLine) []AccessoryLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return ErrSessionCompleted
	}
	if s.cfg == nil {
		return ErrNoProductType
	}
	SetAccessories(s.cfg, fn(AccessoriesOf(s.cfg)))
	return nil
}

// Complete hands a copy of the configuration to sink and closes the session.
// The session stays open if sink fails so the caller can retry; once sink
// succeeds every further call returns ErrSessionCompleted.
func (s *Session) Complete(ctx context.Context, sink CompletionSink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return ErrSessionCompleted
	}
	if s.cfg == nil {
		return ErrNoProductType
	}
	final, err := Clone(s.cfg)
	if err != nil {
		return fmt.Errorf("complete: %w", err)
	}
	if err := sink.OnComplete(ctx, final); err != nil {
		return fmt.Errorf("complete: %w", err)
	}
	s.completed = true
	return nil
}

// Completed reports whether Complete has succeeded.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

func (s *Session) currentStepLocked() (Step, bool) {
	if s.cfg == nil || s.stepIndex < 1 {
		return Step{}, false
	}
	steps := s.registry.StepsFor(s.cfg.Base().ProductType)
	if s.stepIndex > len(steps) {
		return Step{}, false
	}
	return steps[s.stepIndex-1], true
}
