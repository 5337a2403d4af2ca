package schedulers

import (
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/core"
)

// RoundRobin serves a FIFO ready queue, giving each dispatch at most
// timeQuantum units. Processes that arrive while another one runs are queued
// before the preempted process goes back to the tail.
func RoundRobin(processes []*core.Process, timeQuantum int) *core.Timeline {
	timeline := core.NewTimeline()
	pending := sortByArrival(processes)
	roundRobinQueue := make([]*core.Process, 0, len(pending))
	next := 0

	admit := func(currentTime int) {
		for next < len(pending) && pending[next].Arrived(currentTime) {
			roundRobinQueue = append(roundRobinQueue, pending[next])
			next++
		}
	}

	currentTime := 0
	for len(roundRobinQueue) > 0 || next < len(pending) {
		admit(currentTime)
		if len(roundRobinQueue) == 0 {
			currentTime = pending[next].ArrivalTime
			continue
		}

		process := roundRobinQueue[0]
		roundRobinQueue = roundRobinQueue[1:]

		executed := process.Run(currentTime, timeQuantum)
		timeline.Record(process.ProcessId, currentTime, currentTime+executed)
		currentTime += executed

		admit(currentTime)
		if !process.Completed() {
			roundRobinQueue = append(roundRobinQueue, process)
		}
	}

	timeline.Close(currentTime)
	return timeline
}
