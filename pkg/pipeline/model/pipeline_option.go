package model

import "time"

// PipelineOption is notified of every stage a pipeline builds and of every value crossing a stage.
type PipelineOption interface {
	// New runs when the pipeline is created.
	New() error

	pipelineStepOption
	pipelineSinkOption

	// Finish runs once every stage has returned without error.
	Finish() error
}

type pipelineStepOption interface {
	// PrepareStep runs when a root or one-to-one step is added.
	PrepareStep(parentStep, step *StepInfo) error
	// OnStepOutput runs every time the step pushes a value to its output.
	// iterationDuration is the time spent waiting on the parent, computationDuration the time spent in the step function.
	OnStepOutput(parentStep, step *StepInfo, iterationDuration, computationDuration time.Duration) error
}

type pipelineSinkOption interface {
	// PrepareSink runs when a sink is added.
	PrepareSink(parentStep, step *StepInfo) error
	// OnSinkOutput runs every time the sink consumes a value.
	OnSinkOutput(parentStep, step *StepInfo, iterationDuration, computationDuration time.Duration) error
	// AfterSink runs when the sink input is drained.
	AfterSink(step *StepInfo, totalDuration time.Duration) error
}
