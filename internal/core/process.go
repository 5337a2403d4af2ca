package core

// Process is one simulated job. The first three fields are the caller's
// input; the rest is owned by the scheduler running it.
type Process struct {
	ProcessId   string
	ArrivalTime int
	BurstTime   int

	RemainingTime  int
	WaitingTime    int
	TurnAroundTime int
	ResponseTime   int
	CompletionTime int

	started   bool
	completed bool
}

func NewProcess(processId string, arrivalTime, burstTime int) *Process {
	return &Process{
		ProcessId:     processId,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		RemainingTime: burstTime,
	}
}

// Clone returns a fresh, not yet scheduled copy of p.
func (p *Process) Clone() *Process {
	return NewProcess(p.ProcessId, p.ArrivalTime, p.BurstTime)
}

func (p *Process) Completed() bool {
	return p.completed
}

func (p *Process) Arrived(currentTime int) bool {
	return p.ArrivalTime <= currentTime
}

// Run executes p for at most duration units starting at currentTime and
// returns how long it actually ran. The response time is fixed on the first
// dispatch, and the process is finalized once nothing remains.
func (p *Process) Run(currentTime, duration int) int {
	if duration > p.RemainingTime {
		duration = p.RemainingTime
	}
	if !p.started {
		p.started = true
		p.ResponseTime = currentTime - p.ArrivalTime
	}
	p.RemainingTime -= duration
	if p.RemainingTime == 0 {
		p.complete(currentTime + duration)
	}
	return duration
}

func (p *Process) complete(completionTime int) {
	p.completed = true
	p.CompletionTime = completionTime
	p.TurnAroundTime = completionTime - p.ArrivalTime
	p.WaitingTime = p.TurnAroundTime - p.BurstTime
}

// CloneAll copies every process so that a new run does not observe state
// left behind by a previous one.
func CloneAll(processes []*Process) []*Process {
	clones := make([]*Process, len(processes))
	for i, p := range processes {
		clones[i] = p.Clone()
	}
	return clones
}
