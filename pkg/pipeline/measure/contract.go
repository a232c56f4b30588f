package measure

import "time"

// Measure keeps one Metric per stage of a cleaning run: the reader, each NN_KEY step and the writer, plus the
// start and end markers.
type Measure interface {
	AddMetric(name string, concurrent int) Metric
	// GetMetric returns nil for a stage that was never added.
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric is the timing record of one stage.
type Metric interface {
	Recorder
	Report
}

// Recorder is fed by PipelineMeasure while lines flow.
type Recorder interface {
	// AddDuration records the time spent cleaning or writing one line.
	AddDuration(elapsed time.Duration)
	// AddTransportDuration records how long a line waited on the channel from inputStepName.
	AddTransportDuration(inputStepName string, elapsed time.Duration)
	SetTotalDuration(endDuration time.Duration)
}

// Report is read once the run is over, by Summaries and the drawer.
type Report interface {
	Count() int64
	AVGDuration() time.Duration
	AVGTransportDuration() map[string]*TransportInfo
	AllTransports() map[string]*TransportInfo
	GetTotalDuration() time.Duration
}
