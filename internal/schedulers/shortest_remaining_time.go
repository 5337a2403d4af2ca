package schedulers

import (
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/core"
)

// ShortestRemainingTime re-evaluates the choice every time unit, so a newly
// arrived process with less work left preempts the running one. Every tick
// becomes its own gantt entry.
func ShortestRemainingTime(processes []*core.Process) *core.Timeline {
	timeline := core.NewTimeline()
	currentTime, completed := 0, 0

	for completed < len(processes) {
		readyQueue := admitReady(processes, currentTime)
		if len(readyQueue) == 0 {
			currentTime = nextArrival(processes)
			continue
		}

		shortest := pickShortest(readyQueue, func(p *core.Process) int { return p.RemainingTime })
		shortest.Run(currentTime, 1)
		timeline.Record(shortest.ProcessId, currentTime, currentTime+1)
		currentTime++
		if shortest.Completed() {
			completed++
		}
	}

	timeline.Close(currentTime)
	return timeline
}
