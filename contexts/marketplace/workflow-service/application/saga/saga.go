package saga

import (
	"context"
	"fmt"
	"log/slog"
)

// Step pairs one forward mutation with the compensation that undoes it.
// Compensate may be nil when the step needs no undo (e.g. the final step).
type Step struct {
	Name       string
	Forward    func(ctx context.Context) (any, error)
	Compensate func(ctx context.Context) error
}

// StepError wraps the original forward-action error after a mid-saga failure.
// RolledBack reports whether every attempted compensation succeeded; the
// unwind is best-effort, so a false value means partial state may remain and
// requires admin reconciliation.
type StepError struct {
	Step       string
	Err        error
	RolledBack bool
}

func (e *StepError) Error() string {
	outcome := "rolled back"
	if !e.RolledBack {
		outcome = "rollback incomplete"
	}
	return fmt.Sprintf("saga step %q failed (%s): %v", e.Step, outcome, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Run executes forward actions strictly in order. On the first forward
// failure it stops, runs the compensations of every already-succeeded step in
// reverse order, and returns a *StepError wrapping the original error.
// Compensation failures are logged and never interrupt the remaining unwind.
// On success the per-step results are returned in input order.
//
// Run provides ordering within one saga and best-effort compensation only;
// there is no isolation between concurrent sagas touching the same entities.
func Run(ctx context.Context, logger *slog.Logger, steps []Step) ([]any, error) {
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]any, 0, len(steps))
	for i, step := range steps {
		result, err := step.Forward(ctx)
		if err == nil {
			results = append(results, result)
			continue
		}

		logger.Error("saga forward step failed",
			"event", "saga_step_failed",
			"module", "marketplace/workflow-service",
			"layer", "application",
			"step", step.Name,
			"step_index", i,
			"error", err.Error(),
		)

		rolledBack := true
		for j := i - 1; j >= 0; j-- {
			if steps[j].Compensate == nil {
				continue
			}
			if compErr := steps[j].Compensate(ctx); compErr != nil {
				rolledBack = false
				logger.Error("saga compensation failed",
					"event", "saga_compensation_failed",
					"module", "marketplace/workflow-service",
					"layer", "application",
					"step", steps[j].Name,
					"step_index", j,
					"error", compErr.Error(),
				)
			}
		}
		return nil, &StepError{Step: step.Name, Err: err, RolledBack: rolledBack}
	}
	return results, nil
}
