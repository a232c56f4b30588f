// Package pipeline runs values through a chain of stages connected by channels.
//
// A pipeline starts with a root step producing values, continues with any number of one-to-one steps and ends with a
// sink. Each stage runs in its own goroutines; a one-to-one step can run several workers at once with
// StepConcurrency, in which case the order of its output is not guaranteed.
//
// The first error returned by any stage cancels the pipeline context, so every other stage stops, and Run returns
// that error prefixed with the stage name. Context cancellation from the caller is reported the same way.
//
// Options implementing model.PipelineOption observe the construction and the run. The measure package collects
// per-stage timings and the drawer package renders the stages as a Graphviz graph.
package pipeline
