package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	apperrors "mobilecli/internal/errors"
)

// Runner executes steps in dependency order.
type Runner struct {
	logger     *slog.Logger
	sequential bool
}

// NewRunner creates a runner. A sequential runner executes one step at a
// time in registration order; otherwise steps with satisfied dependencies
// run concurrently in waves.
func NewRunner(logger *slog.Logger, sequential bool) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger, sequential: sequential}
}

// Result is the outcome of a run, keyed by step ID.
type Result struct {
	States map[string]*StepState
}

// Failed reports whether any step failed.
func (r *Result) Failed() bool {
	for _, s := range r.States {
		if s.GetStatus() == StepStatusFailed {
			return true
		}
	}
	return false
}

// Run executes all steps. A step whose dependency failed or was skipped is
// skipped itself; remaining independent steps still run. The returned error
// summarizes failures, with the per-step detail in the Result.
func (r *Runner) Run(ctx context.Context, state *State, steps []Step) (*Result, error) {
	result := &Result{States: make(map[string]*StepState, len(steps))}
	byID := make(map[string]Step, len(steps))
	for _, step := range steps {
		if _, dup := byID[step.ID()]; dup {
			return nil, apperrors.NewValidationError(fmt.Sprintf("duplicate step id %q", step.ID()))
		}
		byID[step.ID()] = step
		result.States[step.ID()] = NewStepState(step.ID(), step.Name())
	}
	for _, step := range steps {
		for _, dep := range step.Dependencies() {
			if _, ok := byID[dep]; !ok {
				return nil, apperrors.NewValidationError(
					fmt.Sprintf("step %q depends on unknown step %q", step.ID(), dep))
			}
		}
	}

	remaining := make([]Step, len(steps))
	copy(remaining, steps)

	for len(remaining) > 0 {
		var wave, blocked []Step
		for _, step := range remaining {
			switch r.dependencyStatus(result, step) {
			case StepStatusCompleted:
				wave = append(wave, step)
			case StepStatusFailed, StepStatusSkipped:
				st := result.States[step.ID()]
				st.Skip()
				r.logger.WarnContext(ctx, "step skipped",
					slog.String("step", step.ID()),
					slog.String("reason", "dependency did not complete"))
			default:
				blocked = append(blocked, step)
			}
		}
		if len(wave) == 0 {
			if len(blocked) > 0 {
				return nil, apperrors.NewValidationError("dependency cycle between steps")
			}
			break
		}

		if r.sequential {
			for _, step := range wave {
				r.execute(ctx, state, step, result.States[step.ID()])
			}
		} else {
			g, gctx := errgroup.WithContext(ctx)
			for _, step := range wave {
				step := step
				g.Go(func() error {
					r.execute(gctx, state, step, result.States[step.ID()])
					return nil
				})
			}
			g.Wait()
		}

		remaining = blocked
	}

	if result.Failed() {
		var failed []string
		for id, st := range result.States {
			if st.GetStatus() == StepStatusFailed {
				failed = append(failed, id)
			}
		}
		sort.Strings(failed)
		return result, fmt.Errorf("%d step(s) failed: %s", len(failed), strings.Join(failed, ", "))
	}
	return result, nil
}

// dependencyStatus reduces a step's dependencies to a single status:
// completed when all deps completed, failed or skipped when any did so, and
// pending otherwise.
func (r *Runner) dependencyStatus(result *Result, step Step) StepStatus {
	status := StepStatusCompleted
	for _, dep := range step.Dependencies() {
		switch result.States[dep].GetStatus() {
		case StepStatusFailed:
			return StepStatusFailed
		case StepStatusSkipped:
			return StepStatusSkipped
		case StepStatusCompleted:
		default:
			status = StepStatusPending
		}
	}
	return status
}

func (r *Runner) execute(ctx context.Context, state *State, step Step, st *StepState) {
	st.Start()
	r.logger.InfoContext(ctx, "step started",
		slog.String("step", step.ID()),
		slog.String("name", step.Name()))

	if err := step.Execute(ctx, state); err != nil {
		st.Fail(err)
		r.logger.ErrorContext(ctx, "step failed",
			slog.String("step", step.ID()),
			slog.String("error", err.Error()))
		return
	}

	st.Complete()
	r.logger.InfoContext(ctx, "step completed",
		slog.String("step", step.ID()),
		slog.Duration("duration", st.Duration()))
}
