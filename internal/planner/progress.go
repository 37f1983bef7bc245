// README: Cosmetic time-driven progress stages for the generate action.
package planner

import (
	"context"
	"time"
)

// Stage is one step of the progress indicator.
type Stage struct {
	Label   string
	Percent int
}

// Stages are purely cosmetic. They advance on a fixed timer and are NOT
// synchronized with the actual proxy call, which is atomic; consumers must
// not treat them as a signal of real progress.
var Stages = []Stage{
	{Label: "Analyzing your preferences...", Percent: 10},
	{Label: "Searching top destinations...", Percent: 25},
	{Label: "Generating day-by-day plan...", Percent: 45},
	{Label: "Fetching weather forecast...", Percent: 62},
	{Label: "Calculating smart budget...", Percent: 78},
	{Label: "Finding top places to visit...", Percent: 90},
	{Label: "Finalizing your dream trip", Percent: 98},
}

// DefaultStageInterval matches the original indicator's cadence.
const DefaultStageInterval = 2200 * time.Millisecond

// RunProgress emits each stage in order on the returned channel, holding on
// the last stage until ctx is cancelled. The channel is closed on cancel.
func RunProgress(ctx context.Context, interval time.Duration) <-chan Stage {
	if interval <= 0 {
		interval = DefaultStageInterval
	}
	out := make(chan Stage, len(Stages))

	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		out <- Stages[0]
		i := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if i < len(Stages)-1 {
					i++
					out <- Stages[i]
				}
			}
		}
	}()
	return out
}
