package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-textcleaner/pkg/pipeline/model"
)

func sequentialOneToOneFn[I any, O any](
	ctx context.Context, opts []model.PipelineOption, goIdx int,
	input *model.Step[I], output *model.Step[O], oneToOneFn func(context.Context, I) (O, error),
) error {
	for {
		start := time.Now()
		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "go routine %d", goIdx)
		case in, ok := <-input.Output:
			if !ok {
				return nil
			}
			endIter := time.Since(start)

			startFn := time.Now()
			out, err := oneToOneFn(ctx, in)
			if err != nil {
				return errors.Wrapf(err, "go routine %d", goIdx)
			}
			endFn := time.Since(startFn)

			// check the context again so running workers stop feeding a cancelled pipeline
			select {
			case <-ctx.Done():
				return errors.Wrapf(ctx.Err(), "go routine %d", goIdx)
			case output.Output <- out:
			}

			for _, opt := range opts {
				err := opt.OnStepOutput(input.Details, output.Details, endIter, endFn)
				if err != nil {
					return errors.Wrap(err, "unable to run step output option")
				}
			}
		}
	}
}

func concurrentOneToOneFn[I any, O any](
	ctx context.Context, opts []model.PipelineOption,
	input *model.Step[I], output *model.Step[O], oneToOneFn func(context.Context, I) (O, error),
) error {
	errGrp, dCtx := errgroup.WithContext(ctx)
	// every worker stops as soon as one of them fails
	for goIdx := 0; goIdx < output.Details.Concurrent; goIdx++ {
		localGoIdx := goIdx
		errGrp.Go(func() error {
			return sequentialOneToOneFn(dCtx, opts, localGoIdx, input, output, oneToOneFn)
		})
	}

	return errGrp.Wait()
}

func runOneToOne[I any, O any](
	ctx context.Context, opts []model.PipelineOption,
	input *model.Step[I], output *model.Step[O], oneToOneFn func(context.Context, I) (O, error),
) error {
	if output.Details.Concurrent < 1 {
		output.Details.Concurrent = 1
	}
	if output.Details.Concurrent == 1 {
		return sequentialOneToOneFn(ctx, opts, 0, input, output, oneToOneFn)
	}

	return concurrentOneToOneFn(ctx, opts, input, output, oneToOneFn)
}

func prepareStep[I, O any](pipe *Pipeline, name string, input *model.Step[I], opts ...StepOption[O]) (*model.Step[O], error) {
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
		// a channel built outside the pipeline is fed from the start
		input.Details = model.StartStep
	}

	step := &model.Step[O]{
		Details: &model.StepInfo{
			Type:       model.NormalStepType,
			Name:       name,
			Concurrent: 1,
		},
		Output: make(chan O),
	}
	for _, opt := range opts {
		opt(step)
	}
	if step.Details.Concurrent < 1 {
		step.Details.Concurrent = 1
	}

	for _, opt := range pipe.opts {
		err := opt.PrepareStep(input.Details, step.Details)
		if err != nil {
			return nil, errors.Wrap(err, "unable to run prepare step option")
		}
	}

	return step, nil
}

// AddStepOneToOne adds a step calling oneToOneFn once per input value and pushing its result to the output.
func AddStepOneToOne[I any, O any](
	pipe *Pipeline, name string, input *model.Step[I], oneToOneFn func(context.Context, I) (O, error), opts ...StepOption[O],
) (*model.Step[O], error) {
	step, err := prepareStep(pipe, name, input, opts...)
	if err != nil {
		return nil, err
	}

	errC := make(chan error, 1)
	pipe.errs.register(name, errC)

	go func() {
		defer func() {
			close(step.Output)
			close(errC)
		}()
		err := runOneToOne(pipe.ctx, pipe.opts, input, step, oneToOneFn)
		if err != nil {
			errC <- err
		}
	}()

	return step, nil
}
