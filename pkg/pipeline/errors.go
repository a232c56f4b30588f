package pipeline

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrPipelineMustBeSet = errors.New("pipeline must be set")
	ErrInputMustBeSet    = errors.New("input must be set")
	ErrDuplicateStepName = errors.New("step name already used")
)

// StageError is the error Run returns when a stage fails. Stage is the name the stage was added with, so a line
// cleaner can tell a read failure from a failing step or a write failure.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// stageErrors collects the error channel of every stage added to a pipeline.
type stageErrors struct {
	mu     sync.Mutex
	stages []*stageErr
}

type stageErr struct {
	stage string
	errs  <-chan error
}

func (se *stageErrors) register(stage string, errs <-chan error) {
	se.mu.Lock()
	defer se.mu.Unlock()

	se.stages = append(se.stages, &stageErr{stage: stage, errs: errs})
}

func (se *stageErrors) snapshot() []*stageErr {
	se.mu.Lock()
	defer se.mu.Unlock()

	return append([]*stageErr(nil), se.stages...)
}

// fanIn forwards every stage error as a *StageError on one channel, closed once all stages are done.
// Based on https://blog.golang.org/pipelines.
func fanIn(stages ...*stageErr) <-chan error {
	var wg sync.WaitGroup
	// a stage reports at most one error, so it never blocks once Run stopped reading.
	out := make(chan error, len(stages))

	wg.Add(len(stages))
	for _, s := range stages {
		go func() {
			defer wg.Done()
			if s.errs == nil {
				return
			}
			for err := range s.errs {
				out <- &StageError{Stage: s.stage, Err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
