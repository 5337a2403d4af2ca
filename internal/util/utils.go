package util

import "github.com/Tsn168/Operating-System-CPU-scheduling/internal/core"

// CalculateAverage averages the per-process times of a finished run. The
// caller guarantees at least one process.
func CalculateAverage(processes []*core.Process) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processes {
		waitingTimeSum += float64(process.WaitingTime)
		responseTimeSum += float64(process.ResponseTime)
		turnAroundTimeSum += float64(process.TurnAroundTime)
	}

	processCount := float64(len(processes))

	averageWaitingTime = waitingTimeSum / processCount
	averageResponseTime = responseTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}

// CpuUtilization is the busy fraction of the timeline, 0 for an empty one.
func CpuUtilization(timeline *core.Timeline) float64 {
	if timeline.CompletionTime == 0 {
		return 0
	}
	return float64(timeline.BusyTime()) / float64(timeline.CompletionTime)
}

// CpuThroughput is the number of completed processes per time unit.
func CpuThroughput(processCount int, timeline *core.Timeline) float64 {
	if timeline.CompletionTime == 0 {
		return 0
	}
	return float64(processCount) / float64(timeline.CompletionTime)
}
