package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcess_Run(t *testing.T) {
	ass := assert.New(t)
	p := NewProcess("P1", 2, 5)
	ass.Equal(5, p.RemainingTime)
	ass.False(p.Completed())

	ass.Equal(3, p.Run(4, 3))
	ass.Equal(2, p.RemainingTime)
	ass.Equal(2, p.ResponseTime)
	ass.False(p.Completed())

	// asking for more than what remains only runs the remainder
	ass.Equal(2, p.Run(9, 10))
	ass.Equal(0, p.RemainingTime)
	ass.True(p.Completed())
	ass.Equal(11, p.CompletionTime)
	ass.Equal(9, p.TurnAroundTime)
	ass.Equal(4, p.WaitingTime)
	ass.Equal(2, p.ResponseTime, "response time is fixed on the first dispatch")
}

func TestProcess_Arrived(t *testing.T) {
	p := NewProcess("P1", 3, 1)
	assert.False(t, p.Arrived(2))
	assert.True(t, p.Arrived(3))
	assert.True(t, p.Arrived(4))
}

func TestCloneAll(t *testing.T) {
	processes := []*Process{NewProcess("P1", 0, 2), NewProcess("P2", 1, 3)}
	processes[0].Run(0, 2)

	clones := CloneAll(processes)
	assert.Len(t, clones, 2)
	assert.Equal(t, "P1", clones[0].ProcessId)
	assert.Equal(t, 2, clones[0].RemainingTime)
	assert.False(t, clones[0].Completed())
	assert.NotSame(t, processes[1], clones[1])
}

func TestTimeline(t *testing.T) {
	timeline := NewTimeline()
	timeline.Record("P1", 2, 5)
	timeline.Record("P2", 7, 8)
	timeline.Close(8)

	assert.Equal(t, 3, timeline.ScheduleTimes[0].Duration())
	assert.Equal(t, 4, timeline.BusyTime())
	assert.Equal(t, 4, timeline.IdleTime())
	assert.Equal(t, 8, timeline.CompletionTime)
}
