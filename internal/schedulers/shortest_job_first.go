package schedulers

import (
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/core"
)

// ShortestJobFirst is non-preemptive: at every decision point it admits the
// arrived, unfinished processes and runs the one with the smallest burst
// to completion.
func ShortestJobFirst(processes []*core.Process) *core.Timeline {
	timeline := core.NewTimeline()
	currentTime, completed := 0, 0

	for completed < len(processes) {
		readyQueue := admitReady(processes, currentTime)
		if len(readyQueue) == 0 {
			currentTime = nextArrival(processes)
			continue
		}

		shortestJob := pickShortest(readyQueue, func(p *core.Process) int { return p.BurstTime })
		executed := shortestJob.Run(currentTime, shortestJob.BurstTime)
		timeline.Record(shortestJob.ProcessId, currentTime, currentTime+executed)
		currentTime += executed
		completed++
	}

	timeline.Close(currentTime)
	return timeline
}

// admitReady collects, in input order, every process that has arrived by
// currentTime and is not completed.
func admitReady(processes []*core.Process, currentTime int) []*core.Process {
	readyQueue := make([]*core.Process, 0, len(processes))
	for _, process := range processes {
		if process.Arrived(currentTime) && !process.Completed() {
			readyQueue = append(readyQueue, process)
		}
	}
	return readyQueue
}

// pickShortest returns the process with the smallest key. Ties go to the
// earliest arrival and then to the earliest position in readyQueue.
func pickShortest(readyQueue []*core.Process, key func(*core.Process) int) *core.Process {
	shortest := readyQueue[0]
	for _, process := range readyQueue[1:] {
		if key(process) < key(shortest) ||
			(key(process) == key(shortest) && process.ArrivalTime < shortest.ArrivalTime) {
			shortest = process
		}
	}
	return shortest
}

// nextArrival is the earliest arrival among unfinished processes. It is only
// asked when none of them is ready, so the idle clock can skip ahead to it.
func nextArrival(processes []*core.Process) int {
	next := -1
	for _, process := range processes {
		if !process.Completed() && (next == -1 || process.ArrivalTime < next) {
			next = process.ArrivalTime
		}
	}
	return next
}
