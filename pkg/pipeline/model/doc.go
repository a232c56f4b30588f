// Package model holds the types shared by the pipeline and its options: step descriptors, typed step outputs and the
// hook interface options implement to observe a run.
package model
