package tasks

import (
	"errors"
	"fmt"
)

var ErrEmptyPlan = errors.New("empty task plan")

type Step struct {
	Task      Task
	Condition Condition
}

type Plan []Step

// StepSpec is a plan entry as written in the characters file.
type StepSpec struct {
	Task      string
	Condition string
}

func BuildPlan(registry Registry, specs []StepSpec) (Plan, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyPlan
	}
	plan := make(Plan, 0, len(specs))
	for i, spec := range specs {
		name, err := ParseName(spec.Task)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		task, err := registry.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		cond, err := ParseCondition(spec.Condition)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		plan = append(plan, Step{Task: task, Condition: cond})
	}
	return plan, nil
}
