package batch

import (
	"github.com/rs/zerolog"

	"github.com/askiada/go-textcleaner/pkg/pipeline/model"
)

type options struct {
	concurrency  int
	maxLineSize  int
	pipelineOpts []model.PipelineOption
	logger       zerolog.Logger
}

func newOptions(opts ...Option) *options {
	o := &options{
		concurrency: 1,
		maxLineSize: DefaultMaxLineSize,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

type Option func(o *options)

// WithConcurrency sets the number of workers of every cleaning stage. Values below 1 are ignored.
func WithConcurrency(concurrency int) Option {
	return func(o *options) {
		if concurrency > 0 {
			o.concurrency = concurrency
		}
	}
}

// WithMaxLineSize sets the longest line accepted, in bytes. Longer lines fail the run.
func WithMaxLineSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.maxLineSize = size
		}
	}
}

// WithPipelineOptions observes the underlying pipeline, see the measure and drawer packages.
func WithPipelineOptions(opts ...model.PipelineOption) Option {
	return func(o *options) {
		o.pipelineOpts = append(o.pipelineOpts, opts...)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
