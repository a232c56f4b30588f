// Package batch cleans a text stream line by line.
//
// Every step of a textcleaner.Sequence becomes one stage of a channel pipeline, so lines flow through the steps
// concurrently and each stage can run several workers. Lines are written back in their input order whatever the
// concurrency. Since the input is split on line breaks, steps never see a newline character; use
// textcleaner.Sequence.Apply directly to clean a document as a whole.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-textcleaner/pkg/pipeline"
	"github.com/askiada/go-textcleaner/pkg/textcleaner"
)

const (
	readStepName  = "read"
	writeStepName = "write"

	DefaultMaxLineSize = 1024 * 1024
)

// Line is a line of input and its 1-based position.
type Line struct {
	Number int
	Text   string
}

// Stats describes a finished run.
type Stats struct {
	Lines    int
	Duration time.Duration
}

// StageName returns the pipeline stage name of the step at position idx (0-based) of a sequence.
func StageName(idx int, key textcleaner.StepKey) string {
	return fmt.Sprintf("%02d_%s", idx+1, key)
}

// Run reads r line by line, applies seq to every line and writes the results to w, one per line.
func Run(ctx context.Context, r io.Reader, w io.Writer, seq textcleaner.Sequence, opts ...Option) (Stats, error) {
	o := newOptions(opts...)
	start := time.Now()

	o.logger.Debug().
		Str("sequence", seq.String()).
		Int("concurrency", o.concurrency).
		Msg("batch started")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pipe, err := pipeline.New(ctx, o.pipelineOpts...)
	if err != nil {
		return Stats{}, errors.Wrap(err, "unable to create pipeline")
	}

	root, err := pipeline.AddRootStep(pipe, readStepName, readLines(r, o.maxLineSize))
	if err != nil {
		return Stats{}, errors.Wrap(err, "unable to add read step")
	}

	prev := root
	for i, step := range seq.Steps() {
		prev, err = pipeline.AddStepOneToOne(pipe, StageName(i, step.Key), prev, applyRule(step.Rule),
			pipeline.StepConcurrency[Line](o.concurrency))
		if err != nil {
			return Stats{}, errors.Wrapf(err, "unable to add step %s", step.Key)
		}
	}

	bw := bufio.NewWriter(w)
	sink := newOrderedWriter(bw)
	err = pipeline.AddSink(pipe, writeStepName, prev, sink.write)
	if err != nil {
		return Stats{}, errors.Wrap(err, "unable to add write step")
	}

	err = pipe.Run()
	if err != nil {
		o.logger.Debug().Err(err).Int("lines", sink.written()).Msg("batch failed")

		return Stats{Lines: sink.written(), Duration: time.Since(start)}, err
	}

	err = bw.Flush()
	if err != nil {
		return Stats{Lines: sink.written(), Duration: time.Since(start)}, errors.Wrap(err, "unable to flush output")
	}

	stats := Stats{Lines: sink.written(), Duration: time.Since(start)}
	o.logger.Debug().
		Int("lines", stats.Lines).
		Dur("duration", stats.Duration).
		Msg("batch finished")

	return stats, nil
}

func readLines(r io.Reader, maxLineSize int) func(ctx context.Context, rootChan chan<- Line) error {
	return func(ctx context.Context, rootChan chan<- Line) error {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, min(64*1024, maxLineSize)), maxLineSize)

		number := 0
		for scanner.Scan() {
			number++
			select {
			case <-ctx.Done():
				return ctx.Err()
			case rootChan <- Line{Number: number, Text: scanner.Text()}:
			}
		}

		err := scanner.Err()
		if err != nil {
			return errors.Wrapf(err, "unable to read line %d", number+1)
		}

		return nil
	}
}

func applyRule(rule textcleaner.Rule) func(context.Context, Line) (Line, error) {
	return func(_ context.Context, line Line) (Line, error) {
		line.Text = rule(line.Text)

		return line, nil
	}
}

// orderedWriter writes lines in input order, holding back lines that overtook an earlier one.
type orderedWriter struct {
	w       io.Writer
	next    int
	pending map[int]string
}

func newOrderedWriter(w io.Writer) *orderedWriter {
	return &orderedWriter{
		w:       w,
		next:    1,
		pending: make(map[int]string),
	}
}

// write is only called from the sink goroutine.
func (ow *orderedWriter) write(_ context.Context, line Line) error {
	ow.pending[line.Number] = line.Text

	for {
		text, ok := ow.pending[ow.next]
		if !ok {
			return nil
		}
		delete(ow.pending, ow.next)

		_, err := io.WriteString(ow.w, text+"\n")
		if err != nil {
			return errors.Wrapf(err, "unable to write line %d", ow.next)
		}
		ow.next++
	}
}

func (ow *orderedWriter) written() int {
	return ow.next - 1
}
