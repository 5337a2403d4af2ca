package schedulers

import (
	"sort"

	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/core"
)

// FirstComeFirstServe runs every process to completion in arrival order.
// The cpu idles forward when the next process has not arrived yet.
func FirstComeFirstServe(processes []*core.Process) *core.Timeline {
	timeline := core.NewTimeline()
	currentTime := 0

	for _, process := range sortByArrival(processes) {
		if !process.Arrived(currentTime) {
			currentTime = process.ArrivalTime
		}
		executed := process.Run(currentTime, process.BurstTime)
		timeline.Record(process.ProcessId, currentTime, currentTime+executed)
		currentTime += executed
	}

	timeline.Close(currentTime)
	return timeline
}

// sortByArrival returns a copy of processes ordered by arrival time. Equal
// arrivals keep their input order.
func sortByArrival(processes []*core.Process) []*core.Process {
	sorted := make([]*core.Process, len(processes))
	copy(sorted, processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivalTime < sorted[j].ArrivalTime
	})
	return sorted
}
