package core

// ScheduleTime is one dispatch on the gantt chart: ProcessId held the cpu
// from Start until End.
type ScheduleTime struct {
	Start     int
	End       int
	ProcessId string
}

func (s ScheduleTime) Duration() int {
	return s.End - s.Start
}

// Timeline records dispatches in execution order. Consecutive dispatches of
// the same process are kept apart.
type Timeline struct {
	ScheduleTimes  []ScheduleTime
	CompletionTime int
}

func NewTimeline() *Timeline {
	return &Timeline{ScheduleTimes: make([]ScheduleTime, 0)}
}

func (t *Timeline) Record(processId string, start, end int) {
	t.ScheduleTimes = append(t.ScheduleTimes, ScheduleTime{
		Start:     start,
		End:       end,
		ProcessId: processId,
	})
}

// Close stores the final clock value, the sentinel printed after the last
// dispatch.
func (t *Timeline) Close(completionTime int) {
	t.CompletionTime = completionTime
}

// BusyTime is the total time the cpu spent running any process.
func (t *Timeline) BusyTime() int {
	busy := 0
	for _, s := range t.ScheduleTimes {
		busy += s.Duration()
	}
	return busy
}

func (t *Timeline) IdleTime() int {
	return t.CompletionTime - t.BusyTime()
}
