package pipeline

import "github.com/askiada/go-textcleaner/pkg/pipeline/model"

type StepOption[O any] func(s *model.Step[O])

// StepConcurrency sets the number of workers of a one-to-one step. Values below 1 mean one worker.
func StepConcurrency[O any](concurrent int) StepOption[O] {
	return func(s *model.Step[O]) {
		s.Details.Concurrent = concurrent
	}
}
