package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-textcleaner/pkg/pipeline/model"
)

// Pipeline is a pipeline of steps.
type Pipeline struct {
	ctx       context.Context
	cancel    context.CancelFunc
	errs      *stageErrors
	opts      []model.PipelineOption
	startTime time.Time

	mu    sync.Mutex
	names map[string]struct{}
}

// New creates a new pipeline bound to ctx. Cancelling ctx stops every stage.
func New(ctx context.Context, opts ...model.PipelineOption) (*Pipeline, error) {
	dCtx, cancel := context.WithCancel(ctx)
	pipe := &Pipeline{
		ctx:       dCtx,
		cancel:    cancel,
		errs:      &stageErrors{},
		startTime: time.Now(),
		opts:      opts,
		names:     make(map[string]struct{}),
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			cancel()
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// reserve records a stage name. Names identify stages in errors, metrics and graphs so they must be unique.
func (p *Pipeline) reserve(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.names[name]; ok {
		return errors.Wrap(ErrDuplicateStepName, name)
	}
	p.names[name] = struct{}{}

	return nil
}

// waitForPipeline waits for every stage to report.
// It returns early on the first error.
func waitForPipeline(stages ...*stageErr) error {
	errc := fanIn(stages...)
	for err := range errc {
		if err != nil {
			return err
		}
	}

	return nil
}

// Run waits for every stage to finish. On the first error the remaining stages are cancelled and the error is
// returned; otherwise every option is finished.
func (p *Pipeline) Run() error {
	defer p.cancel()

	err := waitForPipeline(p.errs.snapshot()...)
	if err != nil {
		return err
	}

	return p.finishRun()
}

func (p *Pipeline) finishRun() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
