package schedulers

import (
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/core"
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/responses"
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/util"
)

func generateResponse(algorithm Algorithm, timeQuantum int, processes []*core.Process, timeline *core.Timeline) responses.ScheduleResponse {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processes)

	proccessDetails := make([]responses.ProcessResponse, 0, len(processes))
	for _, process := range processes {
		proccessDetails = append(proccessDetails, generateProcessDetails(process))
	}

	gantt := make([]responses.GanttEntry, 0, len(timeline.ScheduleTimes))
	for _, s := range timeline.ScheduleTimes {
		gantt = append(gantt, responses.GanttEntry{ProcessId: s.ProcessId, Start: s.Start, End: s.End})
	}

	return responses.ScheduleResponse{
		Algorithm:             algorithm.String(),
		TimeQuantum:           timeQuantum,
		TotalTime:             timeline.CompletionTime,
		IdleTime:              timeline.IdleTime(),
		CpuUtilization:        util.CpuUtilization(timeline),
		CpuThroughput:         util.CpuThroughput(len(processes), timeline),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Gantt:                 gantt,
		Details:               proccessDetails,
	}
}

func generateProcessDetails(process *core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.ProcessId,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		CompletionTime: process.CompletionTime,
		ResponseTime:   process.ResponseTime,
		TurnAroundTime: process.TurnAroundTime,
		WaitingTime:    process.WaitingTime,
	}
}
