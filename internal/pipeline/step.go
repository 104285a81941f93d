// Package pipeline runs the analysis as a set of dependency-ordered steps
// with per-step state tracking. Independent steps may run concurrently; a
// failed step skips its dependents without aborting the rest of the run.
package pipeline

import (
	"context"
	"sync"
	"time"
)

// Step is a single unit of pipeline work.
type Step interface {
	// ID returns the unique identifier for this step.
	ID() string

	// Name returns the human-readable name for this step.
	Name() string

	// Execute runs the step, reading and publishing artifacts on the state.
	Execute(ctx context.Context, state *State) error

	// Dependencies returns the IDs of steps that must complete first.
	Dependencies() []string
}

// StepStatus represents the current status of a step.
type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusActive    StepStatus = "active"
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
	StepStatusSkipped   StepStatus = "skipped"
)

// StepState is the runtime state of one step.
type StepState struct {
	mu        sync.RWMutex
	ID        string
	Name      string
	Status    StepStatus
	StartTime *time.Time
	EndTime   *time.Time
	Err       error
}

// NewStepState creates a pending step state.
func NewStepState(id, name string) *StepState {
	return &StepState{ID: id, Name: name, Status: StepStatusPending}
}

// Start marks the step as active and records the start time.
func (s *StepState) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.StartTime = &now
	s.Status = StepStatusActive
}

// Complete marks the step as completed and records the end time.
func (s *StepState) Complete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.EndTime = &now
	s.Status = StepStatusCompleted
}

// Fail marks the step as failed with the given error.
func (s *StepState) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.EndTime = &now
	s.Status = StepStatusFailed
	s.Err = err
}

// Skip marks the step as skipped, used when a dependency did not complete.
func (s *StepState) Skip() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Status = StepStatusSkipped
}

// GetStatus returns the current status.
func (s *StepState) GetStatus() StepStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Status
}

// GetError returns the failure error, if any.
func (s *StepState) GetError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Err
}

// Duration returns the elapsed execution time, zero until the step ends.
func (s *StepState) Duration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.StartTime == nil || s.EndTime == nil {
		return 0
	}
	return s.EndTime.Sub(*s.StartTime)
}

// State is the shared artifact store steps communicate through.
type State struct {
	mu    sync.RWMutex
	items map[string]any
}

// NewState creates an empty artifact store.
func NewState() *State {
	return &State{items: make(map[string]any)}
}

// Set publishes an artifact under a key.
func (s *State) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
}

// Get retrieves a published artifact.
func (s *State) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok
}
