package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/core"
)

type job struct {
	id      string
	arrival int
	burst   int
}

type times struct {
	waiting    int
	turnAround int
}

func newTestProcesses(jobs ...job) []*core.Process {
	processes := make([]*core.Process, 0, len(jobs))
	for _, j := range jobs {
		processes = append(processes, core.NewProcess(j.id, j.arrival, j.burst))
	}
	return processes
}

func seg(id string, start, end int) core.ScheduleTime {
	return core.ScheduleTime{Start: start, End: end, ProcessId: id}
}

func assertTimes(t *testing.T, processes []*core.Process, want map[string]times) {
	t.Helper()
	for _, p := range processes {
		w, ok := want[p.ProcessId]
		if !ok {
			continue
		}
		assert.Equal(t, w.waiting, p.WaitingTime, "waiting time of %s", p.ProcessId)
		assert.Equal(t, w.turnAround, p.TurnAroundTime, "turnaround time of %s", p.ProcessId)
	}
}
