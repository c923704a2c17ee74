package saga

import (
	"context"
	"errors"
	"testing"
)

func TestRunReturnsResultsInOrder(t *testing.T) {
	results, err := Run(context.Background(), nil, []Step{
		{
			Name:    "first",
			Forward: func(context.Context) (any, error) { return "a", nil },
		},
		{
			Name:    "second",
			Forward: func(context.Context) (any, error) { return "b", nil },
		},
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(results) != 2 || results[0] != "a" || results[1] != "b" {
		t.Fatalf("unexpected results: %#v", results)
	}
}

func TestRunCompensatesInReverseOrder(t *testing.T) {
	var compensated []string
	boom := errors.New("boom")

	_, err := Run(context.Background(), nil, []Step{
		{
			Name:    "first",
			Forward: func(context.Context) (any, error) { return nil, nil },
			Compensate: func(context.Context) error {
				compensated = append(compensated, "first")
				return nil
			},
		},
		{
			Name:    "second",
			Forward: func(context.Context) (any, error) { return nil, nil },
			Compensate: func(context.Context) error {
				compensated = append(compensated, "second")
				return nil
			},
		},
		{
			Name:    "third",
			Forward: func(context.Context) (any, error) { return nil, boom },
		},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected original error to surface, got %v", err)
	}

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected *StepError, got %T", err)
	}
	if stepErr.Step != "third" || !stepErr.RolledBack {
		t.Fatalf("unexpected step error: %+v", stepErr)
	}
	if len(compensated) != 2 || compensated[0] != "second" || compensated[1] != "first" {
		t.Fatalf("expected reverse-order compensation, got %v", compensated)
	}
}

func TestRunStopsForwardingAfterFailure(t *testing.T) {
	ran := false
	_, err := Run(context.Background(), nil, []Step{
		{
			Name:    "fails",
			Forward: func(context.Context) (any, error) { return nil, errors.New("nope") },
		},
		{
			Name: "never",
			Forward: func(context.Context) (any, error) {
				ran = true
				return nil, nil
			},
		},
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if ran {
		t.Fatalf("step after failure must not run")
	}
}

func TestRunCompensationFailureDoesNotStopUnwind(t *testing.T) {
	var compensated []string

	_, err := Run(context.Background(), nil, []Step{
		{
			Name:    "first",
			Forward: func(context.Context) (any, error) { return nil, nil },
			Compensate: func(context.Context) error {
				compensated = append(compensated, "first")
				return nil
			},
		},
		{
			Name:    "second",
			Forward: func(context.Context) (any, error) { return nil, nil },
			Compensate: func(context.Context) error {
				compensated = append(compensated, "second")
				return errors.New("compensation broke")
			},
		},
		{
			Name:    "third",
			Forward: func(context.Context) (any, error) { return nil, errors.New("boom") },
		},
	})

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected *StepError, got %v", err)
	}
	if stepErr.RolledBack {
		t.Fatalf("rollback must be reported incomplete when a compensation fails")
	}
	if len(compensated) != 2 {
		t.Fatalf("every compensation must be attempted, got %v", compensated)
	}
}

func TestRunSkipsNilCompensations(t *testing.T) {
	_, err := Run(context.Background(), nil, []Step{
		{
			Name:    "no-undo",
			Forward: func(context.Context) (any, error) { return nil, nil },
		},
		{
			Name:    "fails",
			Forward: func(context.Context) (any, error) { return nil, errors.New("boom") },
		},
	})

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected *StepError, got %v", err)
	}
	if !stepErr.RolledBack {
		t.Fatalf("nil compensations must not count as rollback failures")
	}
}
