package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-textcleaner/pkg/pipeline/model"
)

func prepareSink[I any](pipe *Pipeline, name string, input *model.Step[I]) (*model.StepInfo, error) {
	if pipe == nil {
		return nil, ErrPipelineMustBeSet
	}
	if input == nil {
		return nil, ErrInputMustBeSet
	}
	err := pipe.reserve(name)
	if err != nil {
		return nil, err
	}
	if input.Details == nil {
		input.Details = model.StartStep
	}

	details := &model.StepInfo{
		Type:       model.SinkStepType,
		Name:       name,
		Concurrent: 1,
	}
	for _, opt := range pipe.opts {
		err := opt.PrepareSink(input.Details, details)
		if err != nil {
			return nil, errors.Wrap(err, "unable to run prepare sink option")
		}
	}

	return details, nil
}

func runSink[I any](ctx context.Context, pipe *Pipeline, input *model.Step[I], details *model.StepInfo, sinkFn func(ctx context.Context, input I) error) error {
	for {
		startIter := time.Now()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-input.Output:
			if !ok {
				for _, opt := range pipe.opts {
					err := opt.AfterSink(details, time.Since(pipe.startTime))
					if err != nil {
						return errors.Wrap(err, "unable to run after sink option")
					}
				}

				return nil
			}
			endIter := time.Since(startIter)

			startFn := time.Now()
			err := sinkFn(ctx, in)
			if err != nil {
				return err
			}
			endFn := time.Since(startFn)

			for _, opt := range pipe.opts {
				err := opt.OnSinkOutput(input.Details, details, endIter, endFn)
				if err != nil {
					return errors.Wrap(err, "unable to run sink output option")
				}
			}
		}
	}
}

// AddSink adds the last stage of a pipeline, calling sinkFn once per input value in a single goroutine.
func AddSink[I any](pipe *Pipeline, name string, input *model.Step[I], sinkFn func(ctx context.Context, input I) error) error {
	details, err := prepareSink(pipe, name, input)
	if err != nil {
		return err
	}

	errC := make(chan error, 1)
	pipe.errs.register(name, errC)

	go func() {
		defer close(errC)
		err := runSink(pipe.ctx, pipe, input, details, sinkFn)
		if err != nil {
			errC <- err
		}
	}()

	return nil
}
