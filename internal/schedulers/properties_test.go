package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/core"
)

func TestSchedulingInvariants(t *testing.T) {
	workloads := map[string][]job{
		"contended": {{"P1", 0, 8}, {"P2", 1, 4}, {"P3", 2, 9}, {"P4", 3, 5}},
		"with gaps": {{"P1", 0, 8}, {"P2", 1, 4}, {"P3", 20, 2}, {"P4", 20, 3}, {"P5", 40, 1}},
		"late start": {{"P1", 7, 3}, {"P2", 7, 3}, {"P3", 8, 1}},
	}
	policies := map[string]struct {
		run        func([]*core.Process) *core.Timeline
		preemptive bool
	}{
		"fcfs": {run: FirstComeFirstServe},
		"sjf":  {run: ShortestJobFirst},
		"srt":  {run: ShortestRemainingTime, preemptive: true},
		"rr":   {run: func(p []*core.Process) *core.Timeline { return RoundRobin(p, 3) }, preemptive: true},
	}

	for workloadName, jobs := range workloads {
		for policyName, policy := range policies {
			t.Run(policyName+"/"+workloadName, func(t *testing.T) {
				processes := newTestProcesses(jobs...)
				timeline := policy.run(processes)

				executed := make(map[string]int)
				dispatches := make(map[string]int)
				previousEnd := 0
				for _, s := range timeline.ScheduleTimes {
					assert.GreaterOrEqual(t, s.Start, previousEnd, "segments must not overlap")
					assert.Greater(t, s.End, s.Start)
					executed[s.ProcessId] += s.Duration()
					dispatches[s.ProcessId]++
					previousEnd = s.End
				}
				assert.Equal(t, previousEnd, timeline.CompletionTime)

				maxArrival, totalBurst := 0, 0
				for _, p := range processes {
					assert.True(t, p.Completed(), p.ProcessId)
					assert.Equal(t, 0, p.RemainingTime)
					assert.Equal(t, p.TurnAroundTime, p.WaitingTime+p.BurstTime)
					assert.GreaterOrEqual(t, p.WaitingTime, 0)
					assert.GreaterOrEqual(t, p.TurnAroundTime, p.BurstTime)
					assert.GreaterOrEqual(t, p.ResponseTime, 0)
					assert.LessOrEqual(t, p.ResponseTime, p.WaitingTime)
					assert.Equal(t, p.BurstTime, executed[p.ProcessId])
					if !policy.preemptive {
						assert.Equal(t, 1, dispatches[p.ProcessId])
					}
					maxArrival = max(maxArrival, p.ArrivalTime)
					totalBurst += p.BurstTime
				}
				assert.GreaterOrEqual(t, timeline.CompletionTime, maxArrival)
				assert.GreaterOrEqual(t, timeline.CompletionTime, totalBurst)
				assert.Equal(t, totalBurst, timeline.BusyTime())
			})
		}
	}
}
