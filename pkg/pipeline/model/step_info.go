package model

// StepType tells how a stage consumes and produces values.
type StepType string

const (
	RootStepType   StepType = "root"
	NormalStepType StepType = "step"
	SinkStepType   StepType = "sink"
)

// StepInfo describes a stage of the pipeline.
type StepInfo struct {
	Type       StepType
	Name       string
	Concurrent int
}

// Virtual stages framing every pipeline. Root steps hang off StartStep and sinks lead to EndStep.
var (
	StartStep = &StepInfo{Type: RootStepType, Name: "start"}
	EndStep   = &StepInfo{Type: SinkStepType, Name: "end"}
)

// Step is a stage together with the channel it writes to.
type Step[O any] struct {
	Output  chan O
	Details *StepInfo
}
