package drawer

import (
	"io"
	"time"

	"github.com/askiada/go-textcleaner/pkg/pipeline/measure"
)

// Drawer is an interface that defines the methods for drawing a pipeline.
type Drawer interface {
	// AddStep adds a step to the pipeline drawer.
	AddStep(stepName string, isStage bool) error
	// AddLink adds a link between parent and children steps.
	AddLink(parentStepName, childrenStepName string) error
	// SetTotalTime labels the step with the time elapsed since startTime.
	SetTotalTime(stepName string, startTime time.Time) error
	// AddMeasure labels steps and links with the timings of measure.
	AddMeasure(measure measure.Measure) error
	// Render writes the graph in DOT format.
	Render(w io.Writer) error
	// Draw writes the graph to its destination.
	Draw() error
}
